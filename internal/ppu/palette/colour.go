package palette

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// CGBPalette is one of the two colour palette memories of
// the CGB (background or sprite). It holds 8 palettes of 4
// colours, each colour a little-endian 15-bit value
//
//	Bit 0-4   Red
//	Bit 5-9   Green
//	Bit 10-14 Blue
//
// accessed a byte at a time through an index register
// (types.BCPS, types.OCPS) and a data register (types.BCPD,
// types.OCPD).
type CGBPalette struct {
	data         [64]byte
	Index        byte
	Incrementing bool
}

// NewCGBPalette returns a palette memory with every colour
// set to white.
func NewCGBPalette() *CGBPalette {
	p := &CGBPalette{}
	for i := 0; i < len(p.data); i += 2 {
		p.data[i] = 0xFF
		p.data[i+1] = 0x7F
	}
	return p
}

// SetIndex updates the index register.
func (p *CGBPalette) SetIndex(value byte) {
	p.Index = value & 0x3F
	p.Incrementing = value&types.Bit7 != 0
}

// GetIndex returns the index register. Bit 6 is unused and
// reads as set.
func (p *CGBPalette) GetIndex() byte {
	if p.Incrementing {
		return p.Index | types.Bit7 | types.Bit6
	}
	return p.Index | types.Bit6
}

// Read returns the palette byte selected by the index.
func (p *CGBPalette) Read() byte {
	return p.data[p.Index]
}

// Write writes the palette byte selected by the index, and
// advances the index when auto increment is set.
func (p *CGBPalette) Write(value byte) {
	p.data[p.Index] = value
	if p.Incrementing {
		p.Index = (p.Index + 1) & 0x3F
	}
}

// Raw returns the 15-bit colour value of the given palette
// and colour index.
func (p *CGBPalette) Raw(paletteIndex, colourIndex uint8) uint16 {
	i := (paletteIndex&0x07)*8 + (colourIndex&0x03)*2
	return (uint16(p.data[i]) | uint16(p.data[i+1])<<8) & 0x7FFF
}

// GetColour returns the RGB colour for the given palette
// and colour index.
func (p *CGBPalette) GetColour(paletteIndex, colourIndex uint8) [3]uint8 {
	c := p.Raw(paletteIndex, colourIndex)
	return Mix(uint8(c&0x1F), uint8(c>>5&0x1F), uint8(c>>10&0x1F))
}

// Mix converts 5-bit colour channels to 8-bit RGB the way
// the CGB LCD renders them. The channels bleed into each
// other, so a plain bit expansion would look too saturated.
// Every output channel stays below 0xF9.
func Mix(r, g, b uint8) [3]uint8 {
	R, G, B := uint16(r), uint16(g), uint16(b)
	return [3]uint8{
		uint8((R*13 + G*2 + B) >> 1),
		uint8((G*3 + B) << 1),
		uint8((R*3 + G*2 + B*11) >> 1),
	}
}

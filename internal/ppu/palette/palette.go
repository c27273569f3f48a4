package palette

// Palette maps the 4 colour indexes of a tile to RGB values.
type Palette [4][3]uint8

// Greyscale holds the 4 shades of the DMG LCD, from
// lightest (shade 0) to darkest (shade 3).
var Greyscale = Palette{
	{0xFF, 0xFF, 0xFF},
	{0xCC, 0xCC, 0xCC},
	{0x77, 0x77, 0x77},
	{0x00, 0x00, 0x00},
}

// White is the colour the LCD shows when it is turned off.
var White = Greyscale[0]

// ByteToPalette creates a new palette from the value of a
// DMG palette register (types.BGP, types.OBP0, types.OBP1),
// where each 2-bit field selects the shade for one colour
// index.
func ByteToPalette(b byte) Palette {
	var p Palette
	for i := 0; i < 4; i++ {
		p[i] = Greyscale[(b>>(i*2))&0x03]
	}
	return p
}

// GetColour returns the colour for the given colour index.
func (p Palette) GetColour(index uint8) [3]uint8 {
	return p[index&0x03]
}

package ppu

// TileAttributes are the CGB background map attributes,
// stored in VRAM bank 1 at the same offset as the tile
// number they apply to.
type TileAttributes struct {
	// UseBGPriority is the BG-to-OAM Priority bit. When set,
	// the tile is drawn over sprites unless its colour is 0.
	UseBGPriority bool
	YFlip         bool
	XFlip         bool
	// VRAMBank is the bank (0-1) holding the tile data.
	VRAMBank uint8
	// PaletteNumber is the background palette (0-7).
	PaletteNumber uint8
}

// NewTileAttributes decodes a background map attribute byte.
func NewTileAttributes(value uint8) TileAttributes {
	return TileAttributes{
		UseBGPriority: value&0x80 != 0,
		YFlip:         value&0x40 != 0,
		XFlip:         value&0x20 != 0,
		VRAMBank:      (value >> 3) & 0x01,
		PaletteNumber: value & 0x07,
	}
}

// tilePixel returns the 2-bit colour index of pixel x of a
// tile row, given the two bytes of the row. Bit 7 of each
// byte is the leftmost pixel; the first byte holds the low
// bit of the colour index and the second byte the high bit.
func tilePixel(lo, hi uint8, x uint8) uint8 {
	bit := 7 - (x & 7)
	return (lo>>bit)&1 | ((hi>>bit)&1)<<1
}

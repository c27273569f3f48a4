package ppu

// Sprite is a decoded OAM entry.
type Sprite struct {
	Y      uint8 // vertical position + 16
	X      uint8 // horizontal position + 8
	TileID uint8
	SpriteAttributes
}

// SpriteAttributes represents the attribute byte of a sprite.
type SpriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	Priority bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	FlipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	FlipX bool
	// Bit 4 - Palette number  **Non CGB mode Only** (0=OBP0, 1=OBP1)
	UseSecondPalette bool
	// Bit 3 - Tile VRAM-Bank  **CGB mode Only**     (0=Bank 0, 1=Bank 1)
	VRAMBank uint8
	// Bit 0-2 - Palette number  **CGB mode Only**     (OBP0-7)
	CGBPalette uint8
}

// NewSpriteAttributes decodes an attribute byte.
func NewSpriteAttributes(value uint8) SpriteAttributes {
	return SpriteAttributes{
		Priority:         value&0x80 != 0,
		FlipY:            value&0x40 != 0,
		FlipX:            value&0x20 != 0,
		UseSecondPalette: value&0x10 != 0,
		VRAMBank:         (value >> 3) & 0x01,
		CGBPalette:       value & 0x07,
	}
}

// intersects returns true if the sprite covers scanline ly
// for the given sprite height.
func (s *Sprite) intersects(ly uint8, height uint8) bool {
	top := int(s.Y) - 16
	return int(ly) >= top && int(ly) < top+int(height)
}

package ppu

const (
	// SpriteCount is the number of entries in OAM.
	SpriteCount = 40
	// SpritesPerLine is the number of sprites the PPU can
	// draw on a single scanline.
	SpritesPerLine = 10
)

// OAM (Object Attribute Memory) holds the attributes of the 40
// sprites, 4 bytes per sprite, mapped at 0xFE00-0xFE9F:
//
//	Byte 0 - Y Position
//	Byte 1 - X Position
//	Byte 2 - Tile Index
//	Byte 3 - Attributes
type OAM [SpriteCount * 4]uint8

// Read returns the value at the given offset into OAM.
func (o *OAM) Read(offset uint16) uint8 {
	if int(offset) >= len(o) {
		return 0
	}
	return o[offset]
}

// Write writes the given value at the given offset into OAM.
func (o *OAM) Write(offset uint16, value uint8) {
	if int(offset) < len(o) {
		o[offset] = value
	}
}

// Sprite decodes the sprite at index i.
func (o *OAM) Sprite(i uint8) Sprite {
	b := o[int(i)*4 : int(i)*4+4]
	return Sprite{
		Y:                b[0],
		X:                b[1],
		TileID:           b[2],
		SpriteAttributes: NewSpriteAttributes(b[3]),
	}
}

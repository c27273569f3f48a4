package lcd

import (
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Controller is the decomposed LCD Control Register
// (types.LCDC). Each field mirrors one bit of the register:
//
//	Bit 7 - LCD Enable                     (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	Enabled bool
	// WindowTileMapAddress is the start of the window tile
	// map, either 0x9800 or 0x9C00.
	WindowTileMapAddress uint16
	WindowEnabled        bool
	// UnsignedAddressing is set when tile data is addressed
	// from 0x8000 with unsigned tile numbers. Otherwise tile
	// numbers are signed, relative to 0x9000.
	UnsignedAddressing bool
	// BackgroundTileMapAddress is the start of the background
	// tile map, either 0x9800 or 0x9C00.
	BackgroundTileMapAddress uint16
	// SpriteSize is the height of a sprite, 8 or 16.
	SpriteSize        uint8
	SpriteEnabled     bool
	BackgroundEnabled bool
}

// NewController returns a new Controller holding the
// post-boot value 0x91.
func NewController() *Controller {
	c := &Controller{}
	c.Write(0x91)
	return c
}

// Write decomposes value into the Controller fields.
func (c *Controller) Write(value uint8) {
	c.Enabled = bits.Test(value, 7)
	c.WindowTileMapAddress = tileMap(bits.Test(value, 6))
	c.WindowEnabled = bits.Test(value, 5)
	c.UnsignedAddressing = bits.Test(value, 4)
	c.BackgroundTileMapAddress = tileMap(bits.Test(value, 3))
	c.SpriteSize = 8 + bits.Val(value, 2)*8
	c.SpriteEnabled = bits.Test(value, 1)
	c.BackgroundEnabled = bits.Test(value, 0)
}

// Read recomposes the register value.
func (c *Controller) Read() uint8 {
	var value uint8
	value = bits.SetTo(value, 7, c.Enabled)
	value = bits.SetTo(value, 6, c.WindowTileMapAddress == 0x9C00)
	value = bits.SetTo(value, 5, c.WindowEnabled)
	value = bits.SetTo(value, 4, c.UnsignedAddressing)
	value = bits.SetTo(value, 3, c.BackgroundTileMapAddress == 0x9C00)
	value = bits.SetTo(value, 2, c.SpriteSize == 16)
	value = bits.SetTo(value, 1, c.SpriteEnabled)
	value = bits.SetTo(value, 0, c.BackgroundEnabled)
	return value
}

// TileAddress returns the address of the first byte of the
// given tile number, honouring the addressing mode.
func (c *Controller) TileAddress(tile uint8) uint16 {
	if c.UnsignedAddressing {
		return 0x8000 + uint16(tile)*16
	}
	return uint16(int32(0x9000) + int32(int8(tile))*16)
}

func tileMap(high bool) uint16 {
	if high {
		return 0x9C00
	}
	return 0x9800
}

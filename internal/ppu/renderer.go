package ppu

import (
	"github.com/thelolagemann/gbcore/internal/ppu/palette"
	"github.com/thelolagemann/gbcore/internal/types"
)

// bgPixel is what the background and window leave behind for
// sprite composition.
type bgPixel struct {
	priority bool  // CGB BG-to-OAM priority attribute
	colour   uint8 // colour index before palette lookup
}

// renderScanline draws line LY into the frame.
func (p *PPU) renderScanline() {
	var line [ScreenWidth]bgPixel
	p.renderBackground(&line)
	if p.SpriteEnabled {
		p.renderSprites(&line)
	}
}

// renderBackground draws the background and window for the
// current line, recording the colour index and priority of
// each pixel in line.
func (p *PPU) renderBackground(line *[ScreenWidth]bgPixel) {
	cgb := p.model == types.CGB
	row := &p.frame[p.ly]

	if !cgb && !p.BackgroundEnabled {
		// on the DMG, LCDC.0 blanks both background and window
		for x := range row {
			row[x] = palette.Greyscale[0]
		}
		return
	}

	bgp := palette.ByteToPalette(p.bgp)
	windowVisible := p.WindowEnabled && p.ly >= p.wy && p.wx <= 166
	for x := 0; x < ScreenWidth; x++ {
		var mapBase uint16
		var px, py uint8
		if windowVisible && x+7 >= int(p.wx) {
			mapBase = p.WindowTileMapAddress
			px = uint8(x + 7 - int(p.wx))
			py = p.windowLine
		} else {
			mapBase = p.BackgroundTileMapAddress
			px = uint8(x) + p.scx
			py = p.ly + p.scy
		}

		mapOffset := mapBase - 0x8000 + uint16(py/8)*32 + uint16(px/8)
		tileID := p.vRAM[0][mapOffset]

		var attr TileAttributes
		if cgb {
			attr = NewTileAttributes(p.vRAM[1][mapOffset])
		}

		tileRow := py & 7
		if attr.YFlip {
			tileRow = 7 - tileRow
		}
		tileX := px & 7
		if attr.XFlip {
			tileX = 7 - tileX
		}

		addr := p.TileAddress(tileID) - 0x8000 + uint16(tileRow)*2
		bank := &p.vRAM[attr.VRAMBank]
		colour := tilePixel(bank[addr], bank[addr+1], tileX)

		line[x] = bgPixel{priority: attr.UseBGPriority, colour: colour}
		if cgb {
			row[x] = p.bgPalette.GetColour(attr.PaletteNumber, colour)
		} else {
			row[x] = bgp.GetColour(colour)
		}
	}

	if windowVisible {
		p.windowLine++
	}
}

// renderSprites draws the sprites on the current line over the
// background in line.
func (p *PPU) renderSprites(line *[ScreenWidth]bgPixel) {
	cgb := p.model == types.CGB
	row := &p.frame[p.ly]
	height := p.SpriteSize

	// OAM search, the first 10 sprites in OAM order
	var sprites [SpritesPerLine]Sprite
	n := 0
	for i := uint8(0); i < SpriteCount && n < SpritesPerLine; i++ {
		s := p.oam.Sprite(i)
		if !s.intersects(p.ly, height) {
			continue
		}
		// on the DMG the sprite with the lower X wins, falling
		// back to OAM order; the CGB only uses OAM order
		j := n
		for !cgb && j > 0 && sprites[j-1].X > s.X {
			sprites[j] = sprites[j-1]
			j--
		}
		sprites[j] = s
		n++
	}

	obp0, obp1 := palette.ByteToPalette(p.obp[0]), palette.ByteToPalette(p.obp[1])
	var drawn [ScreenWidth]bool
	for _, s := range sprites[:n] {
		tileRow := p.ly - (s.Y - 16)
		if s.FlipY {
			tileRow = height - 1 - tileRow
		}
		tileID := s.TileID
		if height == 16 {
			tileID &= 0xFE
		}

		var bank uint8
		if cgb {
			bank = s.VRAMBank
		}
		addr := uint16(tileID)*16 + uint16(tileRow)*2
		lo, hi := p.vRAM[bank][addr], p.vRAM[bank][addr+1]

		for px := uint8(0); px < 8; px++ {
			x := int(s.X) - 8 + int(px)
			if x < 0 || x >= ScreenWidth || drawn[x] {
				continue
			}

			tileX := px
			if s.FlipX {
				tileX = 7 - px
			}
			colour := tilePixel(lo, hi, tileX)
			if colour == 0 {
				continue // transparent, lower priority sprites may show
			}
			drawn[x] = true

			if p.backgroundWins(line[x], s) {
				continue
			}

			if cgb {
				row[x] = p.objPalette.GetColour(s.CGBPalette, colour)
			} else {
				obp := obp0
				if s.UseSecondPalette {
					obp = obp1
				}
				row[x] = obp.GetColour(colour)
			}
		}
	}
}

// backgroundWins decides whether the background pixel bg hides
// an opaque pixel of sprite s.
func (p *PPU) backgroundWins(bg bgPixel, s Sprite) bool {
	// on the CGB, LCDC.0 clear puts every sprite on top
	if p.model == types.CGB && !p.BackgroundEnabled {
		return false
	}
	return (bg.priority || s.Priority) && bg.colour != 0
}

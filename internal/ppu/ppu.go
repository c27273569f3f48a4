package ppu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu/lcd"
	"github.com/thelolagemann/gbcore/internal/ppu/palette"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144

	// DotsPerLine is the length of a scanline, in dots.
	DotsPerLine = 456
	// LinesPerFrame is the number of scanlines in a frame,
	// including the 10 lines of VBlank.
	LinesPerFrame = 154
	// DotsPerFrame is the length of a frame, in dots.
	DotsPerFrame = DotsPerLine * LinesPerFrame

	// dots at which each mode of a visible line ends
	oamEnd  = 80
	vramEnd = oamEnd + 172
)

// Frame is one screen of RGB pixels, indexed [y][x][channel].
type Frame [ScreenHeight][ScreenWidth][3]uint8

// PPU implements the Game Boy's (P)ixel (P)rocessing (U)nit. It
// owns VRAM, OAM and the LCD registers, and advances its mode
// state machine by the number of cycles it is ticked with.
//
// Each scanline lasts 456 dots, split into
//
//	Mode 2 (OAM search)      dots   0 -  79
//	Mode 3 (pixel transfer)  dots  80 - 251
//	Mode 0 (HBlank)          dots 252 - 455
//
// for LY 0-143, followed by 10 lines of Mode 1 (VBlank) for LY
// 144-153. A scanline is rendered into the frame every time
// Mode 0 is entered.
type PPU struct {
	*lcd.Controller
	*lcd.Status

	vRAM     [2][0x2000]uint8
	vRAMBank uint8
	oam      OAM

	scy, scx uint8
	wy, wx   uint8
	ly, lyc  uint8
	bgp      uint8
	obp      [2]uint8

	bgPalette  *palette.CGBPalette
	objPalette *palette.CGBPalette

	dots       uint16
	windowLine uint8
	hBlank     bool // set on every HBlank entry, cleared by TakeHBlank
	frames     uint64

	frame Frame

	irq   *interrupts.Service
	model types.Model
	log   log.Logger
}

// New returns a PPU in the post-boot state, with the LCD
// enabled and LY at 0.
func New(irq *interrupts.Service, model types.Model, l log.Logger) *PPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	p := &PPU{
		Controller: lcd.NewController(),
		Status:     lcd.NewStatus(),
		bgp:        0xFC,
		obp:        [2]uint8{0xFF, 0xFF},
		bgPalette:  palette.NewCGBPalette(),
		objPalette: palette.NewCGBPalette(),
		irq:        irq,
		model:      model,
		log:        l,
	}
	p.Mode = lcd.OAM
	p.clearFrame()
	p.checkCoincidence()
	return p
}

// Attach registers the PPU's hardware registers with h. The
// CGB-only registers are only attached when emulating a CGB.
func (p *PPU) Attach(h *types.HardwareRegisters) {
	h.Register(types.LCDC, p.writeLCDC, p.Controller.Read)
	h.Register(types.STAT, p.Status.Write, p.Status.Read, types.Unused(0x80), types.ReadOnlyBits(0x07))
	h.Register(types.SCY, func(v uint8) { p.scy = v }, func() uint8 { return p.scy })
	h.Register(types.SCX, func(v uint8) { p.scx = v }, func() uint8 { return p.scx })
	h.Register(types.LY, nil, func() uint8 { return p.ly })
	h.Register(types.LYC, p.writeLYC, func() uint8 { return p.lyc })
	h.Register(types.BGP, func(v uint8) { p.bgp = v }, func() uint8 { return p.bgp })
	h.Register(types.OBP0, func(v uint8) { p.obp[0] = v }, func() uint8 { return p.obp[0] })
	h.Register(types.OBP1, func(v uint8) { p.obp[1] = v }, func() uint8 { return p.obp[1] })
	h.Register(types.WY, func(v uint8) { p.wy = v }, func() uint8 { return p.wy })
	h.Register(types.WX, func(v uint8) { p.wx = v }, func() uint8 { return p.wx })

	if p.model != types.CGB {
		return
	}
	h.Register(types.VBK, func(v uint8) { p.vRAMBank = v & 0x01 }, func() uint8 { return p.vRAMBank }, types.Unused(0xFE))
	h.Register(types.BCPS, p.bgPalette.SetIndex, p.bgPalette.GetIndex)
	h.Register(types.BCPD, p.bgPalette.Write, p.bgPalette.Read)
	h.Register(types.OCPS, p.objPalette.SetIndex, p.objPalette.GetIndex)
	h.Register(types.OCPD, p.objPalette.Write, p.objPalette.Read)
}

// Read returns the byte at address from VRAM (0x8000-0x9FFF,
// through the selected bank) or OAM (0xFE00-0xFE9F).
func (p *PPU) Read(address uint16) uint8 {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		return p.vRAM[p.vRAMBank][address-0x8000]
	case address >= 0xFE00 && address <= 0xFE9F:
		return p.oam.Read(address - 0xFE00)
	}
	return 0
}

// Write writes value to VRAM or OAM.
func (p *PPU) Write(address uint16, value uint8) {
	switch {
	case address >= 0x8000 && address <= 0x9FFF:
		p.vRAM[p.vRAMBank][address-0x8000] = value
	case address >= 0xFE00 && address <= 0xFE9F:
		p.oam.Write(address-0xFE00, value)
	}
}

// WriteOAM writes value at offset into OAM, bypassing the bus.
// Used by OAM DMA.
func (p *PPU) WriteOAM(offset uint16, value uint8) {
	p.oam.Write(offset, value)
}

// Tick advances the PPU by the given number of cycles. The
// dot counter is advanced at most to the next mode boundary
// at a time, so no mode transition or interrupt is skipped
// however many cycles are passed in.
func (p *PPU) Tick(cycles uint32) {
	if !p.Enabled {
		return
	}
	for cycles > 0 {
		step := uint32(p.nextBoundary() - p.dots)
		if step > cycles {
			step = cycles
		}
		p.dots += uint16(step)
		cycles -= step
		p.update()
	}
}

// nextBoundary returns the dot of the next mode transition
// on the current line.
func (p *PPU) nextBoundary() uint16 {
	if p.ly < ScreenHeight {
		switch {
		case p.dots < oamEnd:
			return oamEnd
		case p.dots < vramEnd:
			return vramEnd
		}
	}
	return DotsPerLine
}

// update performs the transition for the current dot, if the
// dot counter has just reached a boundary.
func (p *PPU) update() {
	switch {
	case p.dots == DotsPerLine:
		p.dots = 0
		p.ly++
		if p.ly == LinesPerFrame {
			p.ly = 0
		}
		p.checkCoincidence()

		switch {
		case p.ly == ScreenHeight:
			p.setMode(lcd.VBlank)
		case p.ly < ScreenHeight:
			if p.ly == 0 {
				p.windowLine = 0
			}
			p.setMode(lcd.OAM)
		}
	case p.ly >= ScreenHeight:
		// VBlank lines have no internal transitions
	case p.dots == oamEnd:
		p.setMode(lcd.VRAM)
	case p.dots == vramEnd:
		p.renderScanline()
		p.hBlank = true
		p.setMode(lcd.HBlank)
	}
}

// setMode enters mode, posting the interrupts associated with
// entering it.
func (p *PPU) setMode(mode lcd.Mode) {
	p.Mode = mode
	if mode == lcd.VBlank {
		p.frames++
		p.irq.Request(interrupts.VBlankFlag)
	}
	if p.Status.InterruptEnabled(mode) {
		p.irq.Request(interrupts.LCDFlag)
	}
}

// checkCoincidence compares LY against LYC, posting a STAT
// interrupt when they become equal and the LYC interrupt is
// enabled.
func (p *PPU) checkCoincidence() {
	equal := p.ly == p.lyc
	if equal && !p.Coincidence && p.CoincidenceInterrupt {
		p.irq.Request(interrupts.LCDFlag)
	}
	p.Coincidence = equal
}

func (p *PPU) writeLYC(v uint8) {
	p.lyc = v
	if p.Enabled {
		p.checkCoincidence()
	}
}

// writeLCDC handles writes to types.LCDC. Turning the LCD off
// resets the scanline state and blanks the frame; turning it
// back on restarts from the top of line 0.
func (p *PPU) writeLCDC(v uint8) {
	wasEnabled := p.Enabled
	p.Controller.Write(v)

	switch {
	case wasEnabled && !p.Enabled:
		p.log.Debugf("ppu: LCD disabled at LY=%d dot=%d", p.ly, p.dots)
		p.dots = 0
		p.ly = 0
		p.windowLine = 0
		p.Mode = lcd.HBlank
		p.Coincidence = false
		p.clearFrame()
	case !wasEnabled && p.Enabled:
		p.log.Debugf("ppu: LCD enabled")
		p.Mode = lcd.OAM
		p.checkCoincidence()
	}
}

func (p *PPU) clearFrame() {
	for y := range p.frame {
		for x := range p.frame[y] {
			p.frame[y][x] = palette.White
		}
	}
}

// Frame returns the frame being drawn. It holds a complete
// image once VBlank has been entered.
func (p *PPU) Frame() *Frame {
	return &p.frame
}

// Frames returns the number of times VBlank has been entered.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// LY returns the current scanline.
func (p *PPU) LY() uint8 {
	return p.ly
}

// Dots returns the position within the current scanline.
func (p *PPU) Dots() uint16 {
	return p.dots
}

// TakeHBlank reports whether HBlank has been entered since
// the last call.
func (p *PPU) TakeHBlank() bool {
	h := p.hBlank
	p.hBlank = false
	return h
}

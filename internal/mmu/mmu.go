// Package mmu provides the memory management unit for the Game
// Boy. The MMU routes every CPU access to the device mapped at
// the address, and owns the devices that sit behind the I/O
// register window.
package mmu

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// IOBus is the interface that the CPU uses to access memory.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// region handles the accesses to one 256 byte page of the
// address space.
type region struct {
	read  func(address uint16) uint8
	write func(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. The
// address space is laid out as follows:
//
//	0x0000 - 0x7FFF  cartridge ROM
//	0x8000 - 0x9FFF  video RAM
//	0xA000 - 0xBFFF  cartridge RAM
//	0xC000 - 0xDFFF  work RAM
//	0xE000 - 0xFDFF  echo of work RAM
//	0xFE00 - 0xFE9F  OAM
//	0xFEA0 - 0xFEFF  unusable, reads 0
//	0xFF00 - 0xFF7F  I/O registers
//	0xFF80 - 0xFFFE  high RAM
//	0xFFFF           interrupt enable
type MMU struct {
	pages [0x100]*region

	Cart  cartridge.Cartridge
	Video *ppu.PPU
	wRAM  *WRAM
	hRAM  [0x7F]uint8

	registers types.HardwareRegisters

	IRQ    *interrupts.Service
	HDMA   *ppu.VRAMDMA
	Timer  *timer.Controller
	Serial *serial.Controller

	dma uint8 // last value written to types.DMA
	p1  uint8 // joypad select bits

	model types.Model
	Log   log.Logger
}

// NewMMU returns a new MMU routing to cart, along with the
// video, timer and serial devices it owns.
func NewMMU(cart cartridge.Cartridge, irq *interrupts.Service, model types.Model, l log.Logger) *MMU {
	if l == nil {
		l = log.NewNullLogger()
	}
	m := &MMU{
		Cart:   cart,
		Video:  ppu.New(irq, model, log.WithComponent(l, "ppu")),
		wRAM:   NewWRAM(),
		IRQ:    irq,
		HDMA:   ppu.NewVRAMDMA(log.WithComponent(l, "hdma")),
		Timer:  timer.NewController(irq),
		Serial: serial.NewController(irq),
		p1:     0x30,
		model:  model,
		Log:    log.WithComponent(l, "mmu"),
	}
	m.init()
	return m
}

func (m *MMU) init() {
	// setup registers
	m.registers.Register(types.P1, func(v uint8) {
		m.p1 = v & 0x30
	}, func() uint8 {
		// no keys are ever pressed
		return m.p1 | 0x0F
	}, types.Unused(0xC0))
	m.registers.Register(types.IF, m.IRQ.WriteFlag, m.IRQ.ReadFlag)
	m.registers.Register(types.DMA, m.startDMA, func() uint8 {
		return m.dma
	})
	m.Video.Attach(&m.registers)
	m.Timer.Attach(&m.registers)
	m.Serial.AttachRegisters(&m.registers)
	if m.IsGBC() {
		m.HDMA.Attach(&m.registers)
		m.wRAM.Attach(&m.registers)
	}

	// setup pages
	cart := &region{read: m.Cart.Read, write: m.Cart.Write}
	video := &region{read: m.Video.Read, write: m.Video.Write}
	wram := &region{read: m.wRAM.Read, write: m.wRAM.Write}
	oam := &region{read: m.readOAM, write: m.writeOAM}
	high := &region{read: m.readHigh, write: m.writeHigh}

	for page := 0x00; page < 0x100; page++ {
		switch {
		case page < 0x80:
			m.pages[page] = cart
		case page < 0xA0:
			m.pages[page] = video
		case page < 0xC0:
			m.pages[page] = cart
		case page < 0xFE:
			m.pages[page] = wram
		case page == 0xFE:
			m.pages[page] = oam
		default:
			m.pages[page] = high
		}
	}
}

// IsGBC returns true if the MMU is emulating a CGB.
func (m *MMU) IsGBC() bool {
	return m.model == types.CGB
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) uint8 {
	return m.pages[address>>8].read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.pages[address>>8].write(address, value)
}

// Read16 returns the little-endian 16-bit value at the given
// address. The two halves are routed independently, so the
// access may straddle two regions.
func (m *MMU) Read16(address uint16) uint16 {
	return uint16(m.Read(address)) | uint16(m.Read(address+1))<<8
}

// Write16 writes the little-endian 16-bit value to the given
// address.
func (m *MMU) Write16(address uint16, value uint16) {
	m.Write(address, uint8(value))
	m.Write(address+1, uint8(value>>8))
}

func (m *MMU) readOAM(address uint16) uint8 {
	if address >= 0xFEA0 {
		return 0
	}
	return m.Video.Read(address)
}

func (m *MMU) writeOAM(address uint16, value uint8) {
	if address < 0xFEA0 {
		m.Video.Write(address, value)
	}
}

// readHigh handles the I/O registers, high RAM and IE.
func (m *MMU) readHigh(address uint16) uint8 {
	switch {
	case address == types.IE:
		return m.IRQ.ReadEnable()
	case address >= 0xFF80:
		return m.hRAM[address-0xFF80]
	}
	return m.registers.Read(address)
}

func (m *MMU) writeHigh(address uint16, value uint8) {
	switch {
	case address == types.IE:
		m.IRQ.WriteEnable(value)
	case address >= 0xFF80:
		m.hRAM[address-0xFF80] = value
	default:
		m.registers.Write(address, value)
	}
}

// startDMA copies 160 bytes from XX00 - XX9F into OAM. The
// copy completes immediately and does not stall the CPU.
func (m *MMU) startDMA(value uint8) {
	m.dma = value
	source := uint16(value) << 8
	// sources past the echo RAM read from work RAM
	if source >= 0xE000 {
		source &^= 0x2000
	}
	for i := uint16(0); i < 0xA0; i++ {
		m.Video.WriteOAM(i, m.Read(source+i))
	}
}

// Tick advances the devices behind the bus by the given number
// of cycles, after running any VRAM DMA that is due. The cycles
// the DMA stalled the CPU for are added to the returned total,
// which is how far the devices were advanced.
func (m *MMU) Tick(cycles uint16) uint16 {
	hBlank := m.Video.TakeHBlank()
	if m.IsGBC() {
		cycles += m.HDMA.Run(m, m.Video, hBlank)
	}
	m.Video.Tick(uint32(cycles))
	m.Timer.Tick(cycles)
	m.Serial.Tick(cycles)
	return cycles
}

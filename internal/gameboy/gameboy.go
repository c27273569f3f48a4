// Package gameboy provides an emulation of the processing core of
// a Nintendo Game Boy, with the CPU and PPU wired together over
// the memory bus.
package gameboy

import (
	"io"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/serial"
	"github.com/thelolagemann/gbcore/internal/timer"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
	// CyclesPerFrame is the number of clock cycles per frame.
	CyclesPerFrame = ppu.DotsPerFrame
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	ppu *ppu.PPU

	Interrupts *interrupts.Service
	Timer      *timer.Controller
	Serial     *serial.Controller

	log.Logger

	model     types.Model
	debug     bool
	serialOut io.Writer

	cycles uint64 // cycles executed since power on
}

// New returns a new GameBoy running the given cartridge. An
// error is returned if rom cannot be mapped by a cartridge.
func New(rom []byte, opts ...Opt) (*GameBoy, error) {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Logger == nil {
		g.Logger = log.NewNullLogger()
	}

	cart, err := cartridge.NewROM(rom)
	if err != nil {
		return nil, err
	}

	irq := interrupts.NewService()
	memBus := mmu.NewMMU(cart, irq, g.model, g.Logger)

	g.MMU = memBus
	g.ppu = memBus.Video
	g.Interrupts = irq
	g.Timer = memBus.Timer
	g.Serial = memBus.Serial
	g.CPU = cpu.NewCPU(memBus, irq, log.WithComponent(g.Logger, "cpu"))
	g.CPU.Debug = g.debug
	g.CPU.Reset(g.model)

	if g.serialOut != nil {
		g.Serial.SetOutput(g.serialOut)
	}

	g.Logger.Infof("loaded %d byte ROM as %s", len(rom), g.model)
	return g, nil
}

// Model returns the model being emulated.
func (g *GameBoy) Model() types.Model {
	return g.model
}

// Cycles returns the number of cycles executed since power on.
func (g *GameBoy) Cycles() uint64 {
	return g.cycles
}

// Step executes a single CPU instruction, then advances the rest
// of the system by the cycles it took. Interrupts requested
// while advancing are seen by the next Step. It returns the
// number of cycles the system was advanced by.
func (g *GameBoy) Step() uint16 {
	cycles := g.MMU.Tick(g.CPU.Step())
	g.cycles += uint64(cycles)
	return cycles
}

// Frame will step the emulation until the PPU has finished
// rendering the current frame, and return it. With the LCD
// disabled no frame is ever finished, so at most one frame's
// worth of cycles is run before the blank frame is returned.
func (g *GameBoy) Frame() *ppu.Frame {
	frames := g.ppu.Frames()
	var cycles uint32
	for g.ppu.Frames() == frames && cycles < CyclesPerFrame {
		cycles += uint32(g.Step())
	}
	return g.ppu.Frame()
}

// Pixels returns the most recently rendered frame, without
// stepping the emulation.
func (g *GameBoy) Pixels() *ppu.Frame {
	return g.ppu.Frame()
}

// Frames returns the number of frames rendered since power on.
func (g *GameBoy) Frames() uint64 {
	return g.ppu.Frames()
}

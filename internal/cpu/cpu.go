package cpu

import (
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT, and left once an interrupt
	// is pending, whether or not IME is set.
	ModeHalt
	// ModeStop is entered by STOP, and left the same way as
	// ModeHalt.
	ModeStop
)

// Bus is the memory the CPU fetches from, reads and writes.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Debug logs every executed instruction along with the
	// register file.
	Debug bool

	bus Bus
	irq *interrupts.Service
	log log.Logger

	mode      mode
	eiPending bool // EI executed, IME is set before the next instruction
	haltBug   bool // the next fetch does not increment PC

	cycles uint16 // cycles consumed by the current step
}

// NewCPU creates a new CPU that executes against bus, and
// services the interrupts requested through irq.
func NewCPU(bus Bus, irq *interrupts.Service, l log.Logger) *CPU {
	if l == nil {
		l = log.NewNullLogger()
	}
	c := &CPU{
		bus: bus,
		irq: irq,
		log: l,
	}
	// create register pairs
	c.BC = types.NewRegisterPair(&c.B, &c.C)
	c.DE = types.NewRegisterPair(&c.D, &c.E)
	c.HL = types.NewRegisterPair(&c.H, &c.L)
	c.AF = types.NewRegisterPair(&c.A, &c.F)

	return c
}

// Reset sets the registers to the values the boot ROM leaves
// behind on the given model, with execution starting at the
// cartridge entry point.
func (c *CPU) Reset(model types.Model) {
	if model == types.CGB {
		c.AF.SetUint16(0x1180)
	} else {
		c.AF.SetUint16(0x01B0)
	}
	c.BC.SetUint16(0x0013)
	c.DE.SetUint16(0x00D8)
	c.HL.SetUint16(0x014D)
	c.SP = 0xFFFE
	c.PC = 0x0100

	c.mode = ModeNormal
	c.eiPending = false
	c.haltBug = false
	c.irq.IME = false
}

// Halted returns true while the CPU is waiting in HALT or
// STOP for an interrupt.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Step executes a single instruction, or services a single
// interrupt, and returns the number of cycles consumed.
func (c *CPU) Step() uint16 {
	// reset cycle counter
	c.cycles = 0

	if c.mode != ModeNormal {
		// in halt and stop mode the IME is ignored, so that the
		// CPU can be woken up by any pending interrupt
		if !c.irq.HasInterrupts() {
			c.tick()
			return c.cycles
		}
		c.mode = ModeNormal
	}

	if c.irq.IME && c.irq.HasInterrupts() {
		c.executeInterrupt()
		return c.cycles
	}

	// EI takes effect once the instruction after it starts
	if c.eiPending {
		c.eiPending = false
		c.irq.IME = true
	}

	c.runInstruction(c.readInstruction())
	return c.cycles
}

// readInstruction reads the next opcode from memory.
func (c *CPU) readInstruction() uint8 {
	c.tick()
	value := c.bus.Read(c.PC)
	if c.haltBug {
		// the byte after HALT is read twice
		c.haltBug = false
	} else {
		c.pcIncrement(1)
	}
	return value
}

// readOperand reads the next immediate byte from memory.
func (c *CPU) readOperand() uint8 {
	c.tick()
	value := c.bus.Read(c.PC)
	c.pcIncrement(1)
	return value
}

// readOperand16 reads the next two immediate bytes from memory
// as a little-endian value.
func (c *CPU) readOperand16() uint16 {
	low := c.readOperand()
	return uint16(c.readOperand())<<8 | uint16(low)
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) uint8 {
	c.tick()
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.tick()
	c.bus.Write(addr, val)
}

func (c *CPU) runInstruction(opcode uint8) {
	var instruction Instruction
	if opcode == 0xCB {
		instruction = InstructionSetCB[c.readOperand()]
	} else {
		instruction = InstructionSet[opcode]
	}

	instruction.fn(c)

	if c.Debug {
		c.log.Debugf("%-14s A:%02X F:%02X B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X (%d cycles)",
			instruction.name, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP, c.PC, c.cycles)
	}
}

// executeInterrupt pushes PC and jumps to the vector of the
// highest priority pending interrupt, taking 20 cycles.
func (c *CPU) executeInterrupt() {
	c.irq.IME = false
	c.tick()
	c.tick()

	// save the high byte of the PC
	c.SP--
	c.writeByte(c.SP, uint8(c.PC>>8))

	// the push of the high byte may have written IE, so
	// the vector is only resolved after it
	vector := c.irq.Vector()

	// save the low byte of the PC
	c.SP--
	c.writeByte(c.SP, uint8(c.PC&0xFF))

	c.PC = vector
	c.tick()
}

// tick accounts for one machine cycle.
func (c *CPU) tick() {
	c.cycles += 4
}

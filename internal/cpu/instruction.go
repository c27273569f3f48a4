package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// Instruction represents a single instruction of the
// CPU.
type Instruction struct {
	name string     // name of the instruction
	fn   func(*CPU) // fn called when executing the instruction
}

// Name returns the mnemonic of the instruction.
func (i Instruction) Name() string {
	return i.name
}

// InstructionSet holds the first 256 instructions.
var InstructionSet [256]Instruction

// InstructionSetCB holds the 256 instructions prefixed by 0xCB.
var InstructionSetCB [256]Instruction

// DefineInstruction defines the instruction in the
// InstructionSet, with the provided opcode.
func DefineInstruction(opcode uint8, name string, fn func(*CPU)) {
	InstructionSet[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// DefineInstructionCB defines the instruction in the
// InstructionSetCB, with the provided opcode.
func DefineInstructionCB(opcode uint8, name string, fn func(*CPU)) {
	InstructionSetCB[opcode] = Instruction{
		name: name,
		fn:   fn,
	}
}

// disallowedOpcodes have no defined behaviour on the hardware.
var disallowedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

// disallowedOpcode is executed for the opcodes in disallowedOpcodes,
// and does nothing past the fetch.
func disallowedOpcode(c *CPU) {
	c.log.Debugf("disallowed opcode 0x%02X at 0x%04X", c.bus.Read(c.PC-1), c.PC-1)
}

func init() {
	DefineInstruction(0x00, "NOP", func(c *CPU) {})
	DefineInstruction(0x10, "STOP", func(c *CPU) {
		// STOP is followed by a padding byte
		c.pcIncrement(1)
		// writing any value to DIV resets the system counter
		c.bus.Write(types.DIV, 0)
		c.mode = ModeStop
	})
	DefineInstruction(0x27, "DAA", func(c *CPU) {
		c.daa()
	})
	DefineInstruction(0x2F, "CPL", func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.F |= flagSubtract | flagHalfCarry
	})
	DefineInstruction(0x37, "SCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(flagZero), false, false, true)
	})
	DefineInstruction(0x3F, "CCF", func(c *CPU) {
		c.setFlags(c.isFlagSet(flagZero), false, false, !c.isFlagSet(flagCarry))
	})
	DefineInstruction(0x76, "HALT", func(c *CPU) {
		if !c.irq.IME && c.irq.HasInterrupts() {
			// with an interrupt already pending and IME
			// disabled, HALT exits immediately and the next
			// byte is fetched twice
			c.haltBug = true
			return
		}
		c.mode = ModeHalt
	})
	DefineInstruction(0xF3, "DI", func(c *CPU) {
		c.irq.IME = false
		c.eiPending = false
	})
	DefineInstruction(0xFB, "EI", func(c *CPU) {
		if !c.irq.IME {
			c.eiPending = true
		}
	})

	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, fmt.Sprintf("disallowed opcode %X", opcode), disallowedOpcode)
	}
}

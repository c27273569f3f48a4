package cpu

import "fmt"

// pushStack pushes a 16 bit value onto the stack, high byte
// first. SP is decremented before each write.
func (c *CPU) pushStack(value uint16) {
	c.tick()
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16 bit value off the stack. SP is
// incremented after each read.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.readByte(c.SP))
	c.SP++
	upper := uint16(c.readByte(c.SP))
	c.SP++
	return upper<<8 | lower
}

// call pushes the address of the next instruction onto the stack and jumps to
// the given address.
//
//	CALL nn
//	nn = 16-bit immediate value
func (c *CPU) call(address uint16) {
	c.pushStack(c.PC)
	c.PC = address
}

// jumpRelative adds the signed offset to PC, which already
// points past the offset byte.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(offset uint8) {
	c.pcIncrement(int16(int8(offset)))
	c.tick()
}

// jumpAbsolute jumps to the given address.
//
//	JP nn
//	nn = 16-bit immediate value
func (c *CPU) jumpAbsolute(address uint16) {
	c.PC = address
	c.tick()
}

// ret pops the return address off the stack into PC.
//
//	RET
func (c *CPU) ret() {
	c.PC = c.popStack()
	c.tick()
}

// conditions are the branch conditions selected by bits 3-4
// of the conditional jump, call and return opcodes.
var conditions = [4]struct {
	name string
	fn   func(c *CPU) bool
}{
	{"NZ", func(c *CPU) bool { return !c.isFlagSet(flagZero) }},
	{"Z", func(c *CPU) bool { return c.isFlagSet(flagZero) }},
	{"NC", func(c *CPU) bool { return !c.isFlagSet(flagCarry) }},
	{"C", func(c *CPU) bool { return c.isFlagSet(flagCarry) }},
}

func init() {
	DefineInstruction(0xC3, "JP a16", func(c *CPU) {
		c.jumpAbsolute(c.readOperand16())
	})
	DefineInstruction(0xE9, "JP HL", func(c *CPU) {
		c.PC = c.HL.Uint16()
	})
	DefineInstruction(0x18, "JR r8", func(c *CPU) {
		c.jumpRelative(c.readOperand())
	})
	DefineInstruction(0xCD, "CALL a16", func(c *CPU) {
		c.call(c.readOperand16())
	})
	DefineInstruction(0xC9, "RET", func(c *CPU) {
		c.ret()
	})
	DefineInstruction(0xD9, "RETI", func(c *CPU) {
		c.ret()
		c.irq.IME = true
	})

	for i := uint8(0); i < 4; i++ {
		cond := conditions[i]

		// 0x20, 0x28, 0x30, 0x38 - JR cc, r8
		DefineInstruction(0x20|i<<3, fmt.Sprintf("JR %s, r8", cond.name), func(c *CPU) {
			offset := c.readOperand()
			if cond.fn(c) {
				c.jumpRelative(offset)
			}
		})
		// 0xC2, 0xCA, 0xD2, 0xDA - JP cc, a16
		DefineInstruction(0xC2|i<<3, fmt.Sprintf("JP %s, a16", cond.name), func(c *CPU) {
			address := c.readOperand16()
			if cond.fn(c) {
				c.jumpAbsolute(address)
			}
		})
		// 0xC4, 0xCC, 0xD4, 0xDC - CALL cc, a16
		DefineInstruction(0xC4|i<<3, fmt.Sprintf("CALL %s, a16", cond.name), func(c *CPU) {
			address := c.readOperand16()
			if cond.fn(c) {
				c.call(address)
			}
		})
		// 0xC0, 0xC8, 0xD0, 0xD8 - RET cc
		DefineInstruction(0xC0|i<<3, fmt.Sprintf("RET %s", cond.name), func(c *CPU) {
			c.tick()
			if cond.fn(c) {
				c.ret()
			}
		})
	}

	// 0xC7, 0xCF, ... 0xFF - RST n
	for i := uint8(0); i < 8; i++ {
		vector := uint16(i) * 8
		DefineInstruction(0xC7|i<<3, fmt.Sprintf("RST %02XH", vector), func(c *CPU) {
			c.call(vector)
		})
	}

	// stack
	pairs := [4]struct {
		name string
		pair func(c *CPU) *RegisterPair
	}{
		{"BC", func(c *CPU) *RegisterPair { return c.BC }},
		{"DE", func(c *CPU) *RegisterPair { return c.DE }},
		{"HL", func(c *CPU) *RegisterPair { return c.HL }},
		{"AF", func(c *CPU) *RegisterPair { return c.AF }},
	}
	for i := uint8(0); i < 4; i++ {
		p := pairs[i]
		DefineInstruction(0xC5|i<<4, "PUSH "+p.name, func(c *CPU) {
			c.pushStack(p.pair(c).Uint16())
		})
		DefineInstruction(0xC1|i<<4, "POP "+p.name, func(c *CPU) {
			p.pair(c).SetUint16(c.popStack())
		})
	}
	// the lower nibble of F always reads 0
	DefineInstruction(0xF1, "POP AF", func(c *CPU) {
		c.AF.SetUint16(c.popStack() & 0xFFF0)
	})
}

package cpu

import "fmt"

// aluOperations are the 8-bit operations of 0x80 - 0xBF and
// their immediate forms, in opcode order.
var aluOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8)
}{
	{"ADD A,", func(c *CPU, n uint8) { c.add(n, false) }},
	{"ADC A,", func(c *CPU, n uint8) { c.add(n, true) }},
	{"SUB", func(c *CPU, n uint8) { c.sub(n, false) }},
	{"SBC A,", func(c *CPU, n uint8) { c.sub(n, true) }},
	{"AND", (*CPU).and},
	{"XOR", (*CPU).xor},
	{"OR", (*CPU).or},
	{"CP", (*CPU).compare},
}

func init() {
	for op := uint8(0); op < 8; op++ {
		alu := aluOperations[op]

		// 0x80 - 0xBF - OP A, r
		for src := uint8(0); src < 8; src++ {
			src := src
			name := fmt.Sprintf("%s %s", alu.name, registerNames[src])
			if src == 6 {
				DefineInstruction(0x80|op<<3|src, name, func(c *CPU) {
					alu.fn(c, c.readByte(c.HL.Uint16()))
				})
				continue
			}
			DefineInstruction(0x80|op<<3|src, name, func(c *CPU) {
				alu.fn(c, *c.registerIndex(src))
			})
		}

		// 0xC6, 0xCE, ... 0xFE - OP A, d8
		DefineInstruction(0xC6|op<<3, alu.name+" d8", func(c *CPU) {
			alu.fn(c, c.readOperand())
		})
	}

	// 0x04, 0x0C, ... 0x3C - INC r
	// 0x05, 0x0D, ... 0x3D - DEC r
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg
		if reg == 6 {
			DefineInstruction(0x34, "INC (HL)", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.increment(c.readByte(c.HL.Uint16())))
			})
			DefineInstruction(0x35, "DEC (HL)", func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.decrement(c.readByte(c.HL.Uint16())))
			})
			continue
		}
		DefineInstruction(0x04|reg<<3, "INC "+registerNames[reg], func(c *CPU) {
			r := c.registerIndex(reg)
			*r = c.increment(*r)
		})
		DefineInstruction(0x05|reg<<3, "DEC "+registerNames[reg], func(c *CPU) {
			r := c.registerIndex(reg)
			*r = c.decrement(*r)
		})
	}

	// 16-bit
	DefineInstruction(0x03, "INC BC", func(c *CPU) { c.incrementNN(c.BC) })
	DefineInstruction(0x13, "INC DE", func(c *CPU) { c.incrementNN(c.DE) })
	DefineInstruction(0x23, "INC HL", func(c *CPU) { c.incrementNN(c.HL) })
	DefineInstruction(0x33, "INC SP", func(c *CPU) {
		c.SP++
		c.tick()
	})
	DefineInstruction(0x0B, "DEC BC", func(c *CPU) { c.decrementNN(c.BC) })
	DefineInstruction(0x1B, "DEC DE", func(c *CPU) { c.decrementNN(c.DE) })
	DefineInstruction(0x2B, "DEC HL", func(c *CPU) { c.decrementNN(c.HL) })
	DefineInstruction(0x3B, "DEC SP", func(c *CPU) {
		c.SP--
		c.tick()
	})
	DefineInstruction(0x09, "ADD HL, BC", func(c *CPU) { c.addHL(c.BC.Uint16()) })
	DefineInstruction(0x19, "ADD HL, DE", func(c *CPU) { c.addHL(c.DE.Uint16()) })
	DefineInstruction(0x29, "ADD HL, HL", func(c *CPU) { c.addHL(c.HL.Uint16()) })
	DefineInstruction(0x39, "ADD HL, SP", func(c *CPU) { c.addHL(c.SP) })

	// accumulator rotates
	DefineInstruction(0x07, "RLCA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftCarry) })
	DefineInstruction(0x0F, "RRCA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightCarry) })
	DefineInstruction(0x17, "RLA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateLeftThroughCarry) })
	DefineInstruction(0x1F, "RRA", func(c *CPU) { c.rotateAccumulator((*CPU).rotateRightThroughCarry) })
}

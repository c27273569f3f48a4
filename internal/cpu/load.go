package cpu

import "fmt"

// loadRegisterToMemory loads the given register into memory at the given address.
//
//	LD (nn), n
//	nn = BC, DE, HL, a16
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) {
	c.writeByte(address, reg)
}

// loadMemoryToRegister loads the value at the given address into the given register.
//
//	LD n, (nn)
//	n = A, B, C, D, E, H, L
//	nn = BC, DE, HL, a16
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) {
	*reg = c.readByte(address)
}

// loadRegister16 loads the next two bytes into the given RegisterPair.
//
//	LD nn, d16
//	nn = BC, DE, HL
func (c *CPU) loadRegister16(reg *RegisterPair) {
	reg.SetUint16(c.readOperand16())
}

func init() {
	// 0x40 - 0x7F - LD r, r
	// 0x76 would be LD (HL), (HL) and is HALT instead
	for dst := uint8(0); dst < 8; dst++ {
		for src := uint8(0); src < 8; src++ {
			opcode := 0x40 | dst<<3 | src
			if opcode == 0x76 {
				continue
			}
			dst, src := dst, src
			name := fmt.Sprintf("LD %s, %s", registerNames[dst], registerNames[src])
			switch {
			case dst == 6:
				DefineInstruction(opcode, name, func(c *CPU) {
					c.loadRegisterToMemory(*c.registerIndex(src), c.HL.Uint16())
				})
			case src == 6:
				DefineInstruction(opcode, name, func(c *CPU) {
					c.loadMemoryToRegister(c.registerIndex(dst), c.HL.Uint16())
				})
			default:
				DefineInstruction(opcode, name, func(c *CPU) {
					*c.registerIndex(dst) = *c.registerIndex(src)
				})
			}
		}
	}

	// 0x06, 0x0E, ... 0x3E - LD r, d8
	for dst := uint8(0); dst < 8; dst++ {
		dst := dst
		opcode := 0x06 | dst<<3
		name := fmt.Sprintf("LD %s, d8", registerNames[dst])
		if dst == 6 {
			DefineInstruction(opcode, name, func(c *CPU) {
				c.writeByte(c.HL.Uint16(), c.readOperand())
			})
			continue
		}
		DefineInstruction(opcode, name, func(c *CPU) {
			*c.registerIndex(dst) = c.readOperand()
		})
	}

	// 16-bit immediate loads
	DefineInstruction(0x01, "LD BC, d16", func(c *CPU) { c.loadRegister16(c.BC) })
	DefineInstruction(0x11, "LD DE, d16", func(c *CPU) { c.loadRegister16(c.DE) })
	DefineInstruction(0x21, "LD HL, d16", func(c *CPU) { c.loadRegister16(c.HL) })
	DefineInstruction(0x31, "LD SP, d16", func(c *CPU) { c.SP = c.readOperand16() })

	// register indirect
	DefineInstruction(0x02, "LD (BC), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x12, "LD (DE), A", func(c *CPU) { c.loadRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x0A, "LD A, (BC)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.BC.Uint16()) })
	DefineInstruction(0x1A, "LD A, (DE)", func(c *CPU) { c.loadMemoryToRegister(&c.A, c.DE.Uint16()) })
	DefineInstruction(0x22, "LD (HL+), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x32, "LD (HL-), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})
	DefineInstruction(0x2A, "LD A, (HL+)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() + 1)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.HL.Uint16())
		c.HL.SetUint16(c.HL.Uint16() - 1)
	})

	// high page
	DefineInstruction(0xE0, "LDH (a8), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, 0xFF00|uint16(c.readOperand()))
	})
	DefineInstruction(0xF0, "LDH A, (a8)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00|uint16(c.readOperand()))
	})
	DefineInstruction(0xE2, "LD (C), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, 0xFF00|uint16(c.C))
	})
	DefineInstruction(0xF2, "LD A, (C)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, 0xFF00|uint16(c.C))
	})

	// absolute
	DefineInstruction(0xEA, "LD (a16), A", func(c *CPU) {
		c.loadRegisterToMemory(c.A, c.readOperand16())
	})
	DefineInstruction(0xFA, "LD A, (a16)", func(c *CPU) {
		c.loadMemoryToRegister(&c.A, c.readOperand16())
	})
	DefineInstruction(0x08, "LD (a16), SP", func(c *CPU) {
		address := c.readOperand16()
		c.writeByte(address, uint8(c.SP))
		c.writeByte(address+1, uint8(c.SP>>8))
	})

	// stack pointer
	DefineInstruction(0xF9, "LD SP, HL", func(c *CPU) {
		c.SP = c.HL.Uint16()
		c.tick()
	})
	DefineInstruction(0xF8, "LD HL, SP+r8", func(c *CPU) {
		c.HL.SetUint16(c.addSPSigned())
	})
	DefineInstruction(0xE8, "ADD SP, r8", func(c *CPU) {
		c.SP = c.addSPSigned()
		c.tick()
	})
}

package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
)

// cbOperations are the rotate and shift operations of
// 0xCB00 - 0xCB3F, in opcode order.
var cbOperations = [8]struct {
	name string
	fn   func(c *CPU, n uint8) uint8
}{
	{"RLC", (*CPU).rotateLeftCarry},
	{"RRC", (*CPU).rotateRightCarry},
	{"RL", (*CPU).rotateLeftThroughCarry},
	{"RR", (*CPU).rotateRightThroughCarry},
	{"SLA", (*CPU).shiftLeftArithmetic},
	{"SRA", (*CPU).shiftRightArithmetic},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).shiftRightLogical},
}

// defineCB defines the CB instruction at opcode for every
// register, applying fn to the operand and storing the result.
// The (HL) form reads and writes memory.
func defineCB(opcode uint8, name string, reg uint8, fn func(c *CPU, n uint8) uint8) {
	if reg == 6 {
		DefineInstructionCB(opcode, name, func(c *CPU) {
			c.writeByte(c.HL.Uint16(), fn(c, c.readByte(c.HL.Uint16())))
		})
		return
	}
	DefineInstructionCB(opcode, name, func(c *CPU) {
		r := c.registerIndex(reg)
		*r = fn(c, *r)
	})
}

func init() {
	// loop through each register (B, C, D, E, H, L, (HL), A)
	for reg := uint8(0); reg < 8; reg++ {
		reg := reg

		// 0x00 - 0x3F - rotates and shifts
		for op := uint8(0); op < 8; op++ {
			cb := cbOperations[op]
			defineCB(op<<3|reg, fmt.Sprintf("%s %s", cb.name, registerNames[reg]), reg, cb.fn)
		}

		for b := uint8(0); b < 8; b++ {
			bit := types.Bits[b]

			// 0x40 - 0x7F - BIT b, r
			name := fmt.Sprintf("BIT %d, %s", b, registerNames[reg])
			if reg == 6 {
				DefineInstructionCB(0x40|b<<3|reg, name, func(c *CPU) {
					c.testBit(c.readByte(c.HL.Uint16()), bit)
				})
			} else {
				DefineInstructionCB(0x40|b<<3|reg, name, func(c *CPU) {
					c.testBit(*c.registerIndex(reg), bit)
				})
			}

			// 0x80 - 0xBF - RES b, r
			defineCB(0x80|b<<3|reg, fmt.Sprintf("RES %d, %s", b, registerNames[reg]), reg, func(c *CPU, n uint8) uint8 {
				return n &^ bit
			})
			// 0xC0 - 0xFF - SET b, r
			defineCB(0xC0|b<<3|reg, fmt.Sprintf("SET %d, %s", b, registerNames[reg]), reg, func(c *CPU, n uint8) uint8 {
				return n | bit
			})
		}
	}
}

package cpu

import "github.com/thelolagemann/gbcore/internal/types"

// Register is a single 8-bit CPU register.
type Register = types.Register

// RegisterPair is a 16-bit view over two 8-bit registers.
type RegisterPair = types.RegisterPair

// Registers holds the 8-bit registers of the CPU, along with
// the 16-bit pairs built over them.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// registerNames is indexed by the 3-bit register field of an
// opcode.
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// registerIndex returns the register selected by the 3-bit
// register field of an opcode. Index 6 selects (HL), which is
// not a register, and must be handled by the caller.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	}
	return &c.A
}

// pcIncrement advances PC by delta, wrapping at 0x10000. The
// delta is either the unsigned width of an immediate or a
// sign extended relative displacement.
func (c *CPU) pcIncrement(delta int16) {
	c.PC += uint16(delta)
}

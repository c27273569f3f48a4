package cpu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// The flag effects of each operation are listed in Z N H C
// order: 0 reset, 1 set, - unchanged, or the flag's name when
// it depends on the result.

// and sets A to A & n.
//
//	AND n     Z 0 1 0
func (c *CPU) and(n uint8) {
	c.A &= n
	c.setFlags(c.A == 0, false, true, false)
}

// or sets A to A | n.
//
//	OR n      Z 0 0 0
func (c *CPU) or(n uint8) {
	c.A |= n
	c.setFlags(c.A == 0, false, false, false)
}

// xor sets A to A ^ n.
//
//	XOR n     Z 0 0 0
func (c *CPU) xor(n uint8) {
	c.A ^= n
	c.setFlags(c.A == 0, false, false, false)
}

// compare sets the flags as A - n would, leaving A untouched.
//
//	CP n      Z 1 H C
func (c *CPU) compare(n uint8) {
	c.setFlags(c.A == n, true, n&0x0F > c.A&0x0F, n > c.A)
}

// add sets A to A + n, plus the carry flag for ADC. H and C
// report carries out of bit 3 and bit 7.
//
//	ADD A, n  Z 0 H C
//	ADC A, n  Z 0 H C
func (c *CPU) add(n uint8, withCarry bool) {
	var carry uint16
	if withCarry && c.isFlagSet(flagCarry) {
		carry = 1
	}
	wide := uint16(c.A) + uint16(n) + carry
	low := uint16(c.A&0x0F) + uint16(n&0x0F) + carry
	c.setFlags(uint8(wide) == 0, false, low > 0x0F, wide > 0xFF)
	c.A = uint8(wide)
}

// sub sets A to A - n, minus the carry flag for SBC. H and C
// report borrows from bit 4 and from beyond bit 7.
//
//	SUB n     Z 1 H C
//	SBC A, n  Z 1 H C
func (c *CPU) sub(n uint8, withCarry bool) {
	var borrow int16
	if withCarry && c.isFlagSet(flagCarry) {
		borrow = 1
	}
	wide := int16(c.A) - int16(n) - borrow
	low := int16(c.A&0x0F) - int16(n&0x0F) - borrow
	c.setFlags(uint8(wide) == 0, true, low < 0, wide < 0)
	c.A = uint8(wide)
}

//	INC n     Z 0 H -
func (c *CPU) increment(n uint8) uint8 {
	result := n + 1
	c.setFlags(result == 0, false, n&0x0F == 0x0F, c.isFlagSet(flagCarry))
	return result
}

//	DEC n     Z 1 H -
func (c *CPU) decrement(n uint8) uint8 {
	result := n - 1
	c.setFlags(result == 0, true, n&0x0F == 0, c.isFlagSet(flagCarry))
	return result
}

// incrementNN and decrementNN take an extra cycle for the
// 16-bit adder, and leave the flags alone.
func (c *CPU) incrementNN(pair *RegisterPair) {
	pair.SetUint16(pair.Uint16() + 1)
	c.tick()
}

func (c *CPU) decrementNN(pair *RegisterPair) {
	pair.SetUint16(pair.Uint16() - 1)
	c.tick()
}

// addHL adds n to HL. H and C report carries out of bit 11
// and bit 15.
//
//	ADD HL, nn  - 0 H C
func (c *CPU) addHL(n uint16) {
	hl := c.HL.Uint16()
	wide := uint32(hl) + uint32(n)
	c.setFlags(c.isFlagSet(flagZero), false, hl&0x0FFF+n&0x0FFF > 0x0FFF, wide > 0xFFFF)
	c.HL.SetUint16(uint16(wide))
	c.tick()
}

// addSPSigned reads a signed displacement and returns SP plus
// it. H and C come from the unsigned addition of the low byte
// of SP and the displacement byte, not from the 16-bit sum.
//
//	ADD SP, e    0 0 H C
//	LD HL, SP+e  0 0 H C
func (c *CPU) addSPSigned() uint16 {
	e := c.readOperand()
	c.setFlags(
		false,
		false,
		c.SP&0x0F+uint16(e&0x0F) > 0x0F,
		c.SP&0xFF+uint16(e) > 0xFF,
	)
	c.tick()
	return c.SP + uint16(int8(e))
}

// daa corrects A to packed BCD after an addition or
// subtraction, using N, H and C to tell which happened.
//
//	DAA       Z - 0 C
func (c *CPU) daa() {
	carry := c.isFlagSet(flagCarry)
	if c.isFlagSet(flagSubtract) {
		if carry {
			c.A -= 0x60
		}
		if c.isFlagSet(flagHalfCarry) {
			c.A -= 0x06
		}
	} else {
		if carry || c.A > 0x99 {
			c.A += 0x60
			carry = true
		}
		if c.isFlagSet(flagHalfCarry) || c.A&0x0F > 0x09 {
			c.A += 0x06
		}
	}
	c.setFlags(c.A == 0, c.isFlagSet(flagSubtract), false, carry)
}

//	SWAP n    Z 0 0 0
func (c *CPU) swap(n uint8) uint8 {
	c.setFlags(n == 0, false, false, false)
	return n<<4 | n>>4
}

// testBit sets Z if bit b of n is clear.
//
//	BIT b, n  Z 0 1 -
func (c *CPU) testBit(n uint8, b types.Bit) {
	c.setFlags(n&b == 0, false, true, c.isFlagSet(flagCarry))
}

// shifted stores the outcome of every rotate and shift, which
// share their flags: Z from the result, C from the bit that
// fell off the end.
//
//	Z 0 0 C
func (c *CPU) shifted(result uint8, out bool) uint8 {
	c.setFlags(result == 0, false, false, out)
	return result
}

// carryBit returns the carry flag as a 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.isFlagSet(flagCarry) {
		return 1
	}
	return 0
}

// rotateLeftCarry (RLC) copies bit 7 into both C and bit 0.
func (c *CPU) rotateLeftCarry(n uint8) uint8 {
	return c.shifted(n<<1|n>>7, n&types.Bit7 != 0)
}

// rotateRightCarry (RRC) copies bit 0 into both C and bit 7.
func (c *CPU) rotateRightCarry(n uint8) uint8 {
	return c.shifted(n>>1|n<<7, n&types.Bit0 != 0)
}

// rotateLeftThroughCarry (RL) rotates the 9 bits formed by C
// and n.
func (c *CPU) rotateLeftThroughCarry(n uint8) uint8 {
	return c.shifted(n<<1|c.carryBit(), n&types.Bit7 != 0)
}

// rotateRightThroughCarry (RR) rotates the 9 bits formed by n
// and C.
func (c *CPU) rotateRightThroughCarry(n uint8) uint8 {
	return c.shifted(n>>1|c.carryBit()<<7, n&types.Bit0 != 0)
}

// rotateAccumulator applies rotate to A and then resets Z.
// RLCA, RLA, RRCA and RRA never set Z, unlike their CB
// prefixed counterparts.
//
//	0 0 0 C
func (c *CPU) rotateAccumulator(rotate func(*CPU, uint8) uint8) {
	c.A = rotate(c, c.A)
	c.F &^= flagZero
}

// shiftLeftArithmetic (SLA) shifts a 0 into bit 0.
func (c *CPU) shiftLeftArithmetic(n uint8) uint8 {
	return c.shifted(n<<1, n&types.Bit7 != 0)
}

// shiftRightArithmetic (SRA) keeps bit 7, preserving the sign.
func (c *CPU) shiftRightArithmetic(n uint8) uint8 {
	return c.shifted(uint8(int8(n)>>1), n&types.Bit0 != 0)
}

// shiftRightLogical (SRL) shifts a 0 into bit 7.
func (c *CPU) shiftRightLogical(n uint8) uint8 {
	return c.shifted(n>>1, n&types.Bit0 != 0)
}

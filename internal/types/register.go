package types

// Register represents a GB Register which is used to hold an 8-bit value.
type Register = uint8

// RegisterPair is a 16-bit view over two 8-bit Registers. It holds no
// storage of its own, so reads always reflect the current value of both
// halves, and writes update both halves together.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// NewRegisterPair returns a view over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}

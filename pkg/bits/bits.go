// Package bits provides helpers for working with the
// individual bits of a byte, addressed by index 0-7.
package bits

// Val returns bit i of b as 0 or 1.
func Val(b, i uint8) uint8 {
	return b >> i & 1
}

// Test reports whether bit i of b is set.
func Test(b, i uint8) bool {
	return Val(b, i) == 1
}

// SetTo returns b with bit i set when on is true, and cleared
// otherwise.
func SetTo(b, i uint8, on bool) uint8 {
	if on {
		return b | 1<<i
	}
	return b &^ (1 << i)
}

package serial

// Device is a peripheral on the other end of the link cable.
// Bits are exchanged most significant first.
type Device interface {
	Receive(bool)
	Send() bool
}

// nullDevice acts as if no cable is plugged in: the line
// floats high, so every received bit is 1.
type nullDevice struct{}

// Receive does nothing.
func (n nullDevice) Receive(bool) {}

// Send always returns true.
func (n nullDevice) Send() bool { return true }

package types

// HardwareRegisters is a table of memory-mapped hardware
// registers, indexed by the address of the register ANDed
// with 0x007F. Each bus owns its own table, so several
// instances of the emulator never share register state.
type HardwareRegisters [0x80]*HardwareRegister

// Read returns the value of the hardware register for the
// given address. Addresses without a registered hardware
// register, or without a read function, read as 0.
func (h *HardwareRegisters) Read(address uint16) uint8 {
	// the IE register lives at 0xFFFF, and shares index 0x7F
	// with 0xFF7F which is unused on every model
	if address == 0xFF7F {
		return 0
	}
	r := h[address&0x007F]
	if r == nil || r.read == nil {
		return 0
	}
	return r.read() | r.readMask
}

// Write writes the given value to the hardware register for
// the given address. Writes to unregistered or read-only
// registers are ignored.
func (h *HardwareRegisters) Write(address uint16, value uint8) {
	if address == 0xFF7F {
		return
	}
	r := h[address&0x007F]
	if r == nil || r.write == nil {
		return
	}
	r.write(value &^ r.writeMask)
}

// Has returns true if a hardware register is registered at
// the given address.
func (h *HardwareRegisters) Has(address uint16) bool {
	return address != 0xFF7F && h[address&0x007F] != nil
}

// Register registers a hardware register at the given
// address. Either of write or read may be nil, in which case
// the register is read-only or write-only respectively.
func (h *HardwareRegisters) Register(address HardwareAddress, write func(v uint8), read func() uint8, opts ...HardwareOpt) {
	r := &HardwareRegister{
		address: address,
		write:   write,
		read:    read,
	}
	for _, opt := range opts {
		opt(r)
	}
	h[address&0x007F] = r
}

// HardwareRegister represents a hardware register of the
// Game Boy, backed by the read and write functions of the
// component that owns it.
type HardwareRegister struct {
	address   HardwareAddress
	write     func(v uint8)
	read      func() uint8
	readMask  uint8
	writeMask uint8
}

// Address returns the address the register is mapped at.
func (r *HardwareRegister) Address() HardwareAddress {
	return r.address
}

// HardwareOpt configures a HardwareRegister.
type HardwareOpt func(*HardwareRegister)

// Unused marks bits that always read as 1, regardless of the
// value held by the owning component.
func Unused(mask uint8) HardwareOpt {
	return func(r *HardwareRegister) {
		r.readMask = mask
	}
}

// ReadOnlyBits marks bits that are cleared before the value
// is handed to the write function.
func ReadOnlyBits(mask uint8) HardwareOpt {
	return func(r *HardwareRegister) {
		r.writeMask = mask
	}
}

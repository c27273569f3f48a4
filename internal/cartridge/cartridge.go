// Package cartridge provides the Cartridge device contract
// consumed by the bus, along with the flat ROM-only device.
// Bank-switching controllers plug in behind the same
// interface.
package cartridge

import "errors"

var (
	// ErrEmptyROM is returned when constructing a cartridge
	// from an empty ROM image.
	ErrEmptyROM = errors.New("cartridge: empty ROM")
	// ErrROMTooLarge is returned when a ROM image does not fit
	// the device it was handed to.
	ErrROMTooLarge = errors.New("cartridge: ROM too large")
)

// Cartridge is a device mapped at 0x0000 - 0x7FFF and
// 0xA000 - 0xBFFF. Implementations must accept any address
// in those windows without panicking.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

package cartridge

import "fmt"

const (
	// MaxROMSize is the largest image a ROM-only cartridge
	// can map without a bank controller.
	MaxROMSize = 0x8000
	// RAMSize is the size of the external RAM window.
	RAMSize = 0x2000
)

// ROM is the simplest cartridge type: up to 32 KiB of ROM
// mapped flat at 0x0000 - 0x7FFF, and an 8 KiB external RAM
// at 0xA000 - 0xBFFF. Writes to the ROM window are ignored.
type ROM struct {
	rom [MaxROMSize]byte
	ram [RAMSize]byte

	size int
}

// NewROM returns a ROM cartridge holding a copy of rom.
func NewROM(rom []byte) (*ROM, error) {
	if len(rom) == 0 {
		return nil, ErrEmptyROM
	}
	if len(rom) > MaxROMSize {
		return nil, fmt.Errorf("%w: %d bytes, at most %d", ErrROMTooLarge, len(rom), MaxROMSize)
	}
	r := &ROM{size: len(rom)}
	copy(r.rom[:], rom)
	return r, nil
}

// Read returns the value at the given address. Offsets past
// the end of the loaded image read as 0xFF, as an unpopulated
// ROM chip would.
func (r *ROM) Read(address uint16) uint8 {
	switch {
	case address < MaxROMSize:
		if int(address) >= r.size {
			return 0xFF
		}
		return r.rom[address]
	case address >= 0xA000 && address < 0xC000:
		return r.ram[address-0xA000]
	}
	return 0xFF
}

// Write writes the value to the given address.
func (r *ROM) Write(address uint16, value uint8) {
	if address >= 0xA000 && address < 0xC000 {
		r.ram[address-0xA000] = value
	}
}

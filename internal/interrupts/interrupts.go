package interrupts

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

const (
	// VBlankFlag (bit 0) is requested every time the PPU
	// enters mode 1 (lcd.VBlank).
	VBlankFlag = types.Bit0
	// LCDFlag (bit 1) is requested by the sources selected
	// in the LCD STAT register (types.STAT).
	LCDFlag = types.Bit1
	// TimerFlag (bit 2) is requested when TIMA overflows.
	TimerFlag = types.Bit2
	// SerialFlag (bit 3) is requested when a serial
	// transfer completes.
	SerialFlag = types.Bit3
	// JoypadFlag (bit 4) is requested when a selected
	// joypad line goes low.
	JoypadFlag = types.Bit4
)

// vectors holds the handler address for each interrupt
// source, indexed by bit position in IF/IE.
var vectors = [5]uint16{
	0x0040, // VBlank
	0x0048, // LCD STAT
	0x0050, // Timer
	0x0058, // Serial
	0x0060, // Joypad
}

// Service is the interrupt controller. Components post
// requests by setting bits in Flag; the CPU services the
// requests that are also set in Enable.
//
// IME is the master enable latch, owned by the CPU and
// toggled by the DI, EI and RETI instructions.
type Service struct {
	Flag   uint8 // interrupt Flag (types.IF)
	Enable uint8 // interrupt Enable (types.IE)
	IME    bool
}

// NewService returns a new Service.
func NewService() *Service {
	return &Service{}
}

// Request requests the specified interrupt, by setting
// the corresponding bit in the Flag register.
func (s *Service) Request(flag uint8) {
	s.Flag |= flag & 0x1F
}

// Pending returns the interrupts that are both requested
// and enabled.
func (s *Service) Pending() uint8 {
	return s.Flag & s.Enable & 0x1F
}

// HasInterrupts returns true if there are any interrupts
// that are requested and enabled.
func (s *Service) HasInterrupts() bool {
	return s.Pending() != 0
}

// Vector returns the handler address of the highest
// priority pending interrupt, clearing its request bit.
// VBlank has the highest priority, Joypad the lowest.
// It returns 0 if nothing is pending.
func (s *Service) Vector() uint16 {
	pending := s.Pending()
	for i := uint8(0); i < 5; i++ {
		if pending&types.Bits[i] != 0 {
			s.Flag &^= types.Bits[i]
			return vectors[i]
		}
	}
	return 0
}

// ReadFlag returns IF as seen on the bus; the upper 3 bits
// always read as set.
func (s *Service) ReadFlag() uint8 {
	return s.Flag | 0xE0
}

// WriteFlag sets IF from the bus.
func (s *Service) WriteFlag(v uint8) {
	s.Flag = v & 0x1F
}

// ReadEnable returns IE as seen on the bus.
func (s *Service) ReadEnable() uint8 {
	return s.Enable
}

// WriteEnable sets IE from the bus. All 8 bits are stored,
// only the lower 5 take part in dispatch.
func (s *Service) WriteEnable(v uint8) {
	s.Enable = v
}

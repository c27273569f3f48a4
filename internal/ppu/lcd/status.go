package lcd

import (
	"github.com/thelolagemann/gbcore/pkg/bits"
)

// Status is the decomposed LCD Status Register (types.STAT):
//
//	Bit 6 - LYC=LY Coincidence Interrupt (1=Enable) (Read/Write)
//	Bit 5 - Mode 2 OAM Interrupt         (1=Enable) (Read/Write)
//	Bit 4 - Mode 1 V-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 3 - Mode 0 H-Blank Interrupt     (1=Enable) (Read/Write)
//	Bit 2 - Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
//	Bit 1-0 - Mode Flag                             (Read Only)
type Status struct {
	CoincidenceInterrupt bool
	OAMInterrupt         bool
	VBlankInterrupt      bool
	HBlankInterrupt      bool
	Coincidence          bool
	Mode                 Mode
}

// NewStatus returns a new Status.
func NewStatus() *Status {
	return &Status{}
}

// Write updates the interrupt enable bits. The coincidence
// flag and the mode are owned by the PPU and are not
// affected.
func (s *Status) Write(value uint8) {
	s.CoincidenceInterrupt = bits.Test(value, 6)
	s.OAMInterrupt = bits.Test(value, 5)
	s.VBlankInterrupt = bits.Test(value, 4)
	s.HBlankInterrupt = bits.Test(value, 3)
}

// Read returns the value of the status register.
func (s *Status) Read() uint8 {
	value := bits.SetTo(0, 6, s.CoincidenceInterrupt)
	value = bits.SetTo(value, 5, s.OAMInterrupt)
	value = bits.SetTo(value, 4, s.VBlankInterrupt)
	value = bits.SetTo(value, 3, s.HBlankInterrupt)
	value = bits.SetTo(value, 2, s.Coincidence)
	return value | uint8(s.Mode)&0x03
}

// InterruptEnabled reports whether entering mode raises an
// LCD STAT interrupt. Mode 3 never does.
func (s *Status) InterruptEnabled(mode Mode) bool {
	switch mode {
	case HBlank:
		return s.HBlankInterrupt
	case VBlank:
		return s.VBlankInterrupt
	case OAM:
		return s.OAMInterrupt
	}
	return false
}

package lcd

// Mode represents a mode of the LCD, as reported in bits
// 1-0 of types.STAT.
type Mode uint8

const (
	// HBlank is the horizontal blanking mode (mode 0).
	HBlank Mode = iota
	// VBlank is the vertical blanking mode (mode 1).
	VBlank
	// OAM is the OAM search mode (mode 2).
	OAM
	// VRAM is the pixel transfer mode (mode 3).
	VRAM
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAM:
		return "OAM"
	case VRAM:
		return "VRAM"
	}
	return "Invalid"
}

package types

// HardwareAddress is the address of a memory-mapped
// hardware register, in the range 0xFF00 - 0xFF7F, or
// the interrupt enable register at 0xFFFF.
type HardwareAddress = uint16

const (
	// P1 selects the joypad key group and reports the
	// state of the selected keys.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte being shifted through the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//  Bit 7: Transfer start/in progress (1=Transfer)
	//  Bit 0: Shift clock (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is the upper byte of the 16-bit system counter. Any
	// write resets the whole counter to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the frequency selected by TAC.
	// On overflow it is reloaded from TMA and a timer
	// interrupt is requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is the value loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2: Timer enable
	//  Bit 1-0: Input clock select (00=4096Hz, 01=262144Hz, 10=65536Hz, 11=16384Hz)
	TAC HardwareAddress = 0xFF07
	// IF holds the interrupt requests.
	//
	//  Bit 0: V-Blank  (INT 40h)
	//  Bit 1: LCD STAT (INT 48h)
	//  Bit 2: Timer    (INT 50h)
	//  Bit 3: Serial   (INT 58h)
	//  Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC controls the LCD.
	//
	//  Bit 7: LCD Enable                     (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display / CGB master priority (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT reports the LCD mode and selects the LCD STAT
	// interrupt sources.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable)
	//  Bit 5: Mode 2 OAM Interrupt         (1=Enable)
	//  Bit 4: Mode 1 V-Blank Interrupt     (1=Enable)
	//  Bit 3: Mode 0 H-Blank Interrupt     (1=Enable)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0: Mode Flag                             (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being drawn, 0-153. Read only.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY on every line change.
	LYC HardwareAddress = 0xFF45
	// DMA starts a copy of 160 bytes from XX00 to OAM.
	DMA HardwareAddress = 0xFF46
	// BGP assigns shades to the background colour indexes.
	//
	//  Bit 7-6: Shade for colour 3
	//  Bit 5-4: Shade for colour 2
	//  Bit 3-2: Shade for colour 1
	//  Bit 1-0: Shade for colour 0
	BGP HardwareAddress = 0xFF47
	// OBP0 assigns shades to sprite palette 0. Colour 0 is transparent.
	OBP0 HardwareAddress = 0xFF48
	// OBP1 assigns shades to sprite palette 1. Colour 0 is transparent.
	OBP1 HardwareAddress = 0xFF49
	// WY is the top edge of the window.
	WY HardwareAddress = 0xFF4A
	// WX is the left edge of the window, plus 7.
	WX HardwareAddress = 0xFF4B
	// KEY1 is the CGB speed switch register.
	KEY1 HardwareAddress = 0xFF4D
	// VBK selects the VRAM bank on the CGB. Reads as 0xFE | bank.
	VBK HardwareAddress = 0xFF4F
	// HDMA1 is the high byte of the HDMA source address.
	HDMA1 HardwareAddress = 0xFF51
	// HDMA2 is the low byte of the HDMA source address. The
	// lower 4 bits are ignored.
	HDMA2 HardwareAddress = 0xFF52
	// HDMA3 is the high byte of the HDMA destination address,
	// which always lies in VRAM.
	HDMA3 HardwareAddress = 0xFF53
	// HDMA4 is the low byte of the HDMA destination address. The
	// lower 4 bits are ignored.
	HDMA4 HardwareAddress = 0xFF54
	// HDMA5 starts, reports and cancels a VRAM DMA transfer.
	//
	//  Bit 7: Mode (0=General Purpose DMA, 1=H-Blank DMA)
	//  Bit 6-0: Transfer length / 0x10 - 1
	HDMA5 HardwareAddress = 0xFF55
	// BCPS selects the background palette byte accessed through
	// BCPD.
	//
	//  Bit 7: Auto increment after writing BCPD
	//  Bit 5-0: Index (0-0x3F)
	BCPS HardwareAddress = 0xFF68
	// BCPD reads and writes the background palette byte selected
	// by BCPS.
	BCPD HardwareAddress = 0xFF69
	// OCPS selects the sprite palette byte accessed through OCPD.
	OCPS HardwareAddress = 0xFF6A
	// OCPD reads and writes the sprite palette byte selected by OCPS.
	OCPD HardwareAddress = 0xFF6B
	// SVBK selects the WRAM bank mapped at 0xD000 on the CGB.
	SVBK HardwareAddress = 0xFF70
	// IE holds the interrupt enable bits, laid out as IF.
	IE HardwareAddress = 0xFFFF
)

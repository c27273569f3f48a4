package mmu

import "github.com/thelolagemann/gbcore/internal/types"

// WRAM is the work RAM mapped at 0xC000 - 0xDFFF and mirrored
// at 0xE000 - 0xFDFF. The first 4 KiB are fixed to bank 0; the
// second 4 KiB are bank 1 on the DMG and bank 1-7 on the CGB,
// selected through types.SVBK.
type WRAM struct {
	bank uint8
	raw  [8][0x1000]uint8
}

// NewWRAM returns a WRAM with bank 1 selected.
func NewWRAM() *WRAM {
	return &WRAM{
		bank: 1, // bank 1 is the default as the first bank is fixed
	}
}

// Attach registers types.SVBK with h.
func (w *WRAM) Attach(h *types.HardwareRegisters) {
	h.Register(types.SVBK, func(v uint8) {
		v &= 0x07 // only 3 bits are used
		if v == 0 {
			v = 1
		}
		w.bank = v
	}, func() uint8 {
		return w.bank
	}, types.Unused(0xF8))
}

// Read returns the byte at addr, which may fall in either
// the work RAM or its echo.
func (w *WRAM) Read(addr uint16) uint8 {
	return w.raw[w.bankFor(addr)][addr&0x0FFF]
}

// Write writes the byte at addr, which may fall in either the
// work RAM or its echo.
func (w *WRAM) Write(addr uint16, v uint8) {
	w.raw[w.bankFor(addr)][addr&0x0FFF] = v
}

// bankFor returns the bank addr maps to. Bit 12 of the address
// selects between the fixed and the switchable half for both
// 0xC000 - 0xDFFF and its echo.
func (w *WRAM) bankFor(addr uint16) uint8 {
	if addr&0x1000 == 0 {
		return 0
	}
	return w.bank
}

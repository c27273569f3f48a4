package mmu

import (
	"testing"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/types"
)

func newTestMMU(t *testing.T, model types.Model) *MMU {
	t.Helper()
	rom := make([]byte, 0x8000)
	for i := range rom {
		rom[i] = uint8(i)
	}
	cart, err := cartridge.NewROM(rom)
	if err != nil {
		t.Fatal(err)
	}
	return NewMMU(cart, interrupts.NewService(), model, nil)
}

func TestMMU_Routing(t *testing.T) {
	m := newTestMMU(t, types.DMG)

	tests := []struct {
		name    string
		address uint16
		value   uint8
		want    uint8
	}{
		{"rom ignores writes", 0x1234, 0x99, 0x34},
		{"vram", 0x8000, 0x11, 0x11},
		{"cart ram", 0xA000, 0x22, 0x22},
		{"wram bank 0", 0xC000, 0x33, 0x33},
		{"wram bank 1", 0xD000, 0x44, 0x44},
		{"oam", 0xFE00, 0x55, 0x55},
		{"unusable", 0xFEA0, 0x66, 0x00},
		{"hram", 0xFF80, 0x77, 0x77},
		{"hram end", 0xFFFE, 0x88, 0x88},
		{"unmapped io", 0xFF4C, 0x99, 0x00},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Write(tt.address, tt.value)
			if got := m.Read(tt.address); got != tt.want {
				t.Errorf("expected 0x%02X at 0x%04X, got 0x%02X", tt.want, tt.address, got)
			}
		})
	}
}

func TestMMU_Echo(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	m.Write(0xC123, 0xAB)
	if got := m.Read(0xE123); got != 0xAB {
		t.Errorf("expected echo of 0xC123, got 0x%02X", got)
	}
	m.Write(0xFDFF, 0xCD)
	if got := m.Read(0xDDFF); got != 0xCD {
		t.Errorf("expected write through echo to reach 0xDDFF, got 0x%02X", got)
	}
}

func TestMMU_16Bit(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	m.Write16(0xC000, 0xBEEF)
	if m.Read(0xC000) != 0xEF || m.Read(0xC001) != 0xBE {
		t.Errorf("expected little-endian layout")
	}
	if got := m.Read16(0xC000); got != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", got)
	}
	// the last two bytes of ROM bank 0
	if got := m.Read16(0x7FFE); got != 0xFFFE {
		t.Errorf("expected 0xFFFE, got 0x%04X", got)
	}
}

func TestMMU_Interrupts(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	m.Write(types.IF, 0xFF)
	if m.IRQ.Flag != 0x1F {
		t.Errorf("expected IF to keep 5 bits, got 0x%02X", m.IRQ.Flag)
	}
	if got := m.Read(types.IF); got != 0xFF {
		t.Errorf("expected IF to read 0xFF, got 0x%02X", got)
	}
	m.Write(types.IE, 0x05)
	if m.IRQ.Enable != 0x05 || m.Read(types.IE) != 0x05 {
		t.Errorf("expected IE 0x05, got 0x%02X", m.Read(types.IE))
	}
}

func TestMMU_Joypad(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	m.Write(types.P1, 0x20)
	if got := m.Read(types.P1); got != 0xEF {
		t.Errorf("expected 0xEF, got 0x%02X", got)
	}
}

func TestMMU_OAMDMA(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	for i := uint16(0); i < 0xA0; i++ {
		m.Write(0xC100+i, uint8(i)^0xFF)
	}
	m.Write(types.DMA, 0xC1)

	if got := m.Read(types.DMA); got != 0xC1 {
		t.Errorf("expected DMA to read back 0xC1, got 0x%02X", got)
	}
	for i := uint16(0); i < 0xA0; i++ {
		if got := m.Read(0xFE00 + i); got != uint8(i)^0xFF {
			t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", uint8(i)^0xFF, 0xFE00+i, got)
		}
	}

	// from ROM
	m.Write(types.DMA, 0x12)
	if got := m.Read(0xFE05); got != 0x05 {
		t.Errorf("expected 0x05 copied from ROM, got 0x%02X", got)
	}
}

func TestMMU_WRAMBanks(t *testing.T) {
	t.Run("dmg", func(t *testing.T) {
		m := newTestMMU(t, types.DMG)
		m.Write(0xD000, 0x01)
		m.Write(types.SVBK, 0x02)
		if got := m.Read(0xD000); got != 0x01 {
			t.Errorf("expected SVBK to be ignored on the DMG, got 0x%02X", got)
		}
	})
	t.Run("cgb", func(t *testing.T) {
		m := newTestMMU(t, types.CGB)
		m.Write(0xD000, 0x01)
		m.Write(types.SVBK, 0x02)
		if got := m.Read(0xD000); got != 0x00 {
			t.Errorf("expected bank 2 to be empty, got 0x%02X", got)
		}
		if got := m.Read(types.SVBK); got != 0xFA {
			t.Errorf("expected SVBK 0xFA, got 0x%02X", got)
		}
		m.Write(0xD000, 0x02)
		m.Write(types.SVBK, 0x00) // selects bank 1
		if got := m.Read(0xD000); got != 0x01 {
			t.Errorf("expected bank 1 value 0x01, got 0x%02X", got)
		}
		if got := m.Read(0xC000); got != 0x00 {
			t.Errorf("expected bank 0 to be untouched, got 0x%02X", got)
		}
	})
}

func TestMMU_Tick(t *testing.T) {
	m := newTestMMU(t, types.DMG)
	if got := m.Tick(ppu.DotsPerLine); got != ppu.DotsPerLine {
		t.Errorf("expected %d cycles, got %d", ppu.DotsPerLine, got)
	}
	if m.Video.LY() != 1 {
		t.Errorf("expected LY 1, got %d", m.Video.LY())
	}
	if got := m.Read(types.LY); got != 1 {
		t.Errorf("expected LY register 1, got %d", got)
	}
}

func TestMMU_GDMA(t *testing.T) {
	m := newTestMMU(t, types.CGB)
	for i := uint16(0); i < 0x20; i++ {
		m.Write(0xC000+i, uint8(i+1))
	}
	m.Write(types.HDMA1, 0xC0)
	m.Write(types.HDMA2, 0x00)
	m.Write(types.HDMA3, 0x00)
	m.Write(types.HDMA4, 0x40)
	m.Write(types.HDMA5, 0x01)

	if got := m.Tick(4); got != 4+16 {
		t.Errorf("expected 20 cycles including the stall, got %d", got)
	}
	for i := uint16(0); i < 0x20; i++ {
		if got := m.Read(0x8040 + i); got != uint8(i+1) {
			t.Fatalf("expected 0x%02X at 0x%04X, got 0x%02X", uint8(i+1), 0x8040+i, got)
		}
	}
	if got := m.Read(types.HDMA5); got != 0xFF {
		t.Errorf("expected HDMA5 0xFF, got 0x%02X", got)
	}
}

func TestMMU_HDMA(t *testing.T) {
	m := newTestMMU(t, types.CGB)
	m.Write(0xC000, 0xAA)
	m.Write(0xC010, 0xBB)
	m.Write(types.HDMA1, 0xC0)
	m.Write(types.HDMA2, 0x00)
	m.Write(types.HDMA3, 0x00)
	m.Write(types.HDMA4, 0x00)
	m.Write(types.HDMA5, 0x81)

	// the HBlank of line 0 begins at dot 252
	m.Tick(252)
	if m.Read(0x8000) != 0 {
		t.Errorf("expected no copy before HBlank was observed")
	}
	if got := m.Tick(4); got != 12 {
		t.Errorf("expected 12 cycles including a block, got %d", got)
	}
	if m.Read(0x8000) != 0xAA || m.Read(0x8010) != 0 {
		t.Errorf("expected a single block copied")
	}
	m.Tick(ppu.DotsPerLine)
	m.Tick(4)
	if m.Read(0x8010) != 0xBB {
		t.Errorf("expected the second block after the next HBlank")
	}
	if m.HDMA.Active() {
		t.Errorf("expected transfer to be complete")
	}
}

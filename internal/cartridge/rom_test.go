package cartridge

import (
	"errors"
	"testing"
)

func TestNewROM(t *testing.T) {
	if _, err := NewROM(nil); !errors.Is(err, ErrEmptyROM) {
		t.Errorf("expected ErrEmptyROM, got %v", err)
	}
	if _, err := NewROM(make([]byte, MaxROMSize+1)); !errors.Is(err, ErrROMTooLarge) {
		t.Errorf("expected ErrROMTooLarge, got %v", err)
	}

	image := []byte{0x3E, 0x05}
	r, err := NewROM(image)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	image[0] = 0x00
	if r.Read(0x0000) != 0x3E {
		t.Errorf("expected ROM to hold its own copy of the image")
	}
}

func TestROM_ReadWrite(t *testing.T) {
	r, _ := NewROM([]byte{0x01, 0x02})

	if got := r.Read(0x0001); got != 0x02 {
		t.Errorf("expected 0x02 at 0x0001, got 0x%02X", got)
	}
	if got := r.Read(0x7FFF); got != 0xFF {
		t.Errorf("expected unpopulated ROM to read 0xFF, got 0x%02X", got)
	}

	r.Write(0x0000, 0x99)
	if got := r.Read(0x0000); got != 0x01 {
		t.Errorf("expected ROM writes to be ignored, got 0x%02X", got)
	}

	r.Write(0xA123, 0x42)
	if got := r.Read(0xA123); got != 0x42 {
		t.Errorf("expected 0x42 in external RAM, got 0x%02X", got)
	}

	// outside either window
	r.Write(0xC000, 0x42)
	if got := r.Read(0xC000); got != 0xFF {
		t.Errorf("expected 0xFF outside the cartridge windows, got 0x%02X", got)
	}
}

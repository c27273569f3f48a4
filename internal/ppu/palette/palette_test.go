package palette

import "testing"

func TestByteToPalette(t *testing.T) {
	// post-boot BGP
	p := ByteToPalette(0xFC)
	want := Palette{Greyscale[0], Greyscale[3], Greyscale[3], Greyscale[3]}
	if p != want {
		t.Errorf("expected %v, got %v", want, p)
	}

	p = ByteToPalette(0b00_01_10_11)
	for i := uint8(0); i < 4; i++ {
		if p.GetColour(i) != Greyscale[3-i] {
			t.Errorf("expected colour %d to be shade %d", i, 3-i)
		}
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    [3]uint8
	}{
		{0, 0, 0, [3]uint8{0, 0, 0}},
		{31, 31, 31, [3]uint8{248, 248, 248}},
		{31, 0, 0, [3]uint8{201, 0, 46}},
		{0, 31, 0, [3]uint8{31, 186, 31}},
		{0, 0, 31, [3]uint8{15, 62, 170}},
	}
	for _, tt := range tests {
		if got := Mix(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Mix(%d, %d, %d): expected %v, got %v", tt.r, tt.g, tt.b, tt.want, got)
		}
	}
}

func TestCGBPalette_AutoIncrement(t *testing.T) {
	p := NewCGBPalette()
	if p.GetColour(7, 3) != Mix(31, 31, 31) {
		t.Errorf("expected palettes to start white")
	}

	// palette 1, colour 2 = pure red, written with auto increment
	p.SetIndex(0x80 | 0x0C)
	if p.GetIndex() != 0xCC {
		t.Errorf("expected index register 0xCC, got 0x%02X", p.GetIndex())
	}
	p.Write(0x1F)
	p.Write(0x00)
	if p.Index != 0x0E {
		t.Errorf("expected index to advance to 0x0E, got 0x%02X", p.Index)
	}
	if p.Raw(1, 2) != 0x001F {
		t.Errorf("expected raw colour 0x001F, got 0x%04X", p.Raw(1, 2))
	}
	if p.GetColour(1, 2) != Mix(31, 0, 0) {
		t.Errorf("expected mixed red, got %v", p.GetColour(1, 2))
	}

	// reading never advances the index
	p.SetIndex(0x8C)
	if p.Read() != 0x1F || p.Read() != 0x1F {
		t.Errorf("expected reads to leave the index alone")
	}

	// wraps at 0x3F
	p.SetIndex(0xBF)
	p.Write(0x00)
	if p.Index != 0x00 {
		t.Errorf("expected index to wrap to 0, got 0x%02X", p.Index)
	}

	// without auto increment the index stays put
	p.SetIndex(0x10)
	p.Write(0x12)
	p.Write(0x34)
	if p.Index != 0x10 || p.Read() != 0x34 {
		t.Errorf("expected index to stay at 0x10 holding 0x34")
	}
}

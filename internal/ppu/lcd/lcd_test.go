package lcd

import "testing"

func TestController_ReadWrite(t *testing.T) {
	c := NewController()
	if c.Read() != 0x91 {
		t.Errorf("expected post-boot LCDC 0x91, got 0x%02X", c.Read())
	}
	for v := 0; v < 256; v++ {
		c.Write(uint8(v))
		if got := c.Read(); got != uint8(v) {
			t.Fatalf("expected LCDC to read back 0x%02X, got 0x%02X", v, got)
		}
	}

	c.Write(0b0100_1100)
	if c.WindowTileMapAddress != 0x9C00 || c.BackgroundTileMapAddress != 0x9C00 {
		t.Errorf("expected both tile maps at 0x9C00")
	}
	if c.SpriteSize != 16 {
		t.Errorf("expected 8x16 sprites, got height %d", c.SpriteSize)
	}
}

func TestController_TileAddress(t *testing.T) {
	c := NewController()
	c.Write(0x91)
	if got := c.TileAddress(0x80); got != 0x8800 {
		t.Errorf("expected unsigned tile 0x80 at 0x8800, got 0x%04X", got)
	}
	c.Write(0x81)
	tests := map[uint8]uint16{0x00: 0x9000, 0x7F: 0x97F0, 0x80: 0x8800, 0xFF: 0x8FF0}
	for tile, want := range tests {
		if got := c.TileAddress(tile); got != want {
			t.Errorf("expected signed tile 0x%02X at 0x%04X, got 0x%04X", tile, want, got)
		}
	}
}

func TestStatus_ReadWrite(t *testing.T) {
	s := NewStatus()
	s.Mode = VRAM
	s.Coincidence = true
	s.Write(0xFF)
	if got := s.Read(); got != 0x7F {
		t.Errorf("expected STAT 0x7F, got 0x%02X", got)
	}

	// mode and coincidence are read only
	s.Write(0x00)
	if got := s.Read(); got != 0x07 {
		t.Errorf("expected STAT 0x07, got 0x%02X", got)
	}

	s.Write(0x28)
	if !s.InterruptEnabled(HBlank) || !s.InterruptEnabled(OAM) || s.InterruptEnabled(VBlank) || s.InterruptEnabled(VRAM) {
		t.Errorf("unexpected interrupt sources for STAT 0x28")
	}
}

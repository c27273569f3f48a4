package gameboy

import (
	"bytes"
	"errors"
	"testing"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/interrupts"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/ppu/palette"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// newROM returns a 32 KiB ROM image with program at the entry
// point (0x0100).
func newROM(program ...uint8) []byte {
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], program)
	return rom
}

// spin is JR -2, an infinite loop.
var spin = []uint8{0x18, 0xFE}

func newTestGameBoy(t *testing.T, program []uint8, opts ...Opt) *GameBoy {
	t.Helper()
	g, err := New(newROM(program...), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNew_EmptyROM(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, cartridge.ErrEmptyROM) {
		t.Errorf("expected ErrEmptyROM, got %v", err)
	}
	if _, err := New(make([]byte, 0x10000)); !errors.Is(err, cartridge.ErrROMTooLarge) {
		t.Errorf("expected ErrROMTooLarge, got %v", err)
	}
}

func TestNew_Model(t *testing.T) {
	for _, model := range []types.Model{types.DMG, types.CGB} {
		g := newTestGameBoy(t, spin, AsModel(model))
		if g.Model() != model {
			t.Errorf("expected model %s, got %s", model, g.Model())
		}
		if g.CPU.PC != 0x0100 || g.CPU.SP != 0xFFFE {
			t.Errorf("%s: expected PC 0x0100 SP 0xFFFE, got PC 0x%04X SP 0x%04X", model, g.CPU.PC, g.CPU.SP)
		}
		if g.MMU.IsGBC() != (model == types.CGB) {
			t.Errorf("%s: unexpected IsGBC %v", model, g.MMU.IsGBC())
		}
	}
}

func TestNew_NilLogger(t *testing.T) {
	g := newTestGameBoy(t, spin, WithLogger(nil))
	if g.Logger == nil {
		t.Fatal("expected a nil Logger to be replaced")
	}
	g.Step()
}

func TestGameBoy_Step(t *testing.T) {
	g := newTestGameBoy(t, spin)

	if cycles := g.Step(); cycles != 12 {
		t.Errorf("expected JR to take 12 cycles, got %d", cycles)
	}
	if g.CPU.PC != 0x0100 {
		t.Errorf("expected PC 0x0100, got 0x%04X", g.CPU.PC)
	}
	if g.Cycles() != 12 || g.MMU.Video.Dots() != 12 {
		t.Errorf("expected the PPU to follow the CPU, got %d cycles %d dots", g.Cycles(), g.MMU.Video.Dots())
	}
}

func TestGameBoy_Frame(t *testing.T) {
	g := newTestGameBoy(t, spin)

	g.Frame()
	if g.Frames() != 1 {
		t.Fatalf("expected 1 frame, got %d", g.Frames())
	}
	if g.Interrupts.Flag&interrupts.VBlankFlag == 0 {
		t.Errorf("expected VBlank to be requested")
	}
	if ly := g.MMU.Read(types.LY); ly != ppu.ScreenHeight {
		t.Errorf("expected the frame to finish on entering VBlank (LY %d), got LY %d", ppu.ScreenHeight, ly)
	}

	// a full frame later the PPU is back to the same point
	cycles := g.Cycles()
	g.Frame()
	if g.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", g.Frames())
	}
	if elapsed := g.Cycles() - cycles; elapsed+12 <= CyclesPerFrame || elapsed >= CyclesPerFrame+12 {
		t.Errorf("expected a frame to take %d cycles, took %d", CyclesPerFrame, elapsed)
	}
}

func TestGameBoy_FrameLCDOff(t *testing.T) {
	g := newTestGameBoy(t, append([]uint8{
		0x3E, 0x11, // LD A, 0x11
		0xE0, 0x40, // LDH (LCDC), A
	}, spin...))

	frame := g.Frame()
	if g.Frames() != 0 {
		t.Errorf("expected no frames with the LCD off, got %d", g.Frames())
	}
	if g.Cycles() > CyclesPerFrame+12 {
		t.Errorf("expected Frame to return after a frame's worth of cycles, ran %d", g.Cycles())
	}
	if ly := g.MMU.Read(types.LY); ly != 0 {
		t.Errorf("expected LY 0, got %d", ly)
	}
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] != palette.White {
				t.Fatalf("expected a blank frame, got %v at %d,%d", frame[y][x], x, y)
			}
		}
	}
}

// stripes fills tile 0 with alternating colour 3 and colour 0
// pixels. The background map is all tile 0.
var stripes = []uint8{
	0x21, 0x00, 0x80, // LD HL, 0x8000
	0x06, 0x10, // LD B, 0x10
	0x3E, 0xAA, // LD A, 0xAA
	0x22,       // LD (HL+), A
	0x05,       // DEC B
	0x20, 0xFC, // JR NZ, -4
	0x18, 0xFE, // JR -2
}

func TestGameBoy_Render(t *testing.T) {
	g := newTestGameBoy(t, stripes)
	g.Frame()
	frame := g.Frame()

	for x := 0; x < ppu.ScreenWidth; x++ {
		want := palette.Greyscale[3]
		if x%2 == 1 {
			want = palette.Greyscale[0]
		}
		if frame[ppu.ScreenHeight-1][x] != want {
			t.Fatalf("pixel %d: expected %v, got %v", x, want, frame[ppu.ScreenHeight-1][x])
		}
	}
}

func TestGameBoy_Deterministic(t *testing.T) {
	var hashes [2]uint64
	for i := range hashes {
		g := newTestGameBoy(t, stripes)
		for f := 0; f < 3; f++ {
			g.Frame()
		}
		hashes[i] = utils.FrameHash(g.Pixels())
	}
	if hashes[0] != hashes[1] {
		t.Errorf("expected identical frames, got 0x%016X and 0x%016X", hashes[0], hashes[1])
	}

	blank := newTestGameBoy(t, spin)
	blank.Frame()
	if utils.FrameHash(blank.Pixels()) == hashes[0] {
		t.Errorf("expected a different hash for a different frame")
	}
}

func TestGameBoy_SerialDebugger(t *testing.T) {
	var out bytes.Buffer
	g := newTestGameBoy(t, append([]uint8{
		0x3E, 'O', // LD A, 'O'
		0xE0, 0x01, // LDH (SB), A
		0x3E, 0x81, // LD A, 0x81
		0xE0, 0x02, // LDH (SC), A
		0x3E, 'K', // LD A, 'K'
		0xE0, 0x01, // LDH (SB), A
		0x3E, 0x81, // LD A, 0x81
		0xE0, 0x02, // LDH (SC), A
	}, spin...), SerialDebugger(&out))

	for i := 0; i < 16; i++ {
		g.Step()
	}
	if out.String() != "OK" {
		t.Errorf("expected serial output %q, got %q", "OK", out.String())
	}
}

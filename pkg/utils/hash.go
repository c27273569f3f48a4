package utils

import (
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/ppu"
)

// FrameHash returns a 64-bit hash of the frame's pixels, for
// comparing frames against known good output.
func FrameHash(frame *ppu.Frame) uint64 {
	d := xxhash.New()
	for y := range frame {
		for x := range frame[y] {
			_, _ = d.Write(frame[y][x][:])
		}
	}
	return d.Sum64()
}

package utils

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/thelolagemann/gbcore/internal/ppu"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// MaxScale is the largest factor ScaleImage will enlarge by.
const MaxScale = 8

// FrameImage converts a frame into an image.RGBA.
func FrameImage(frame *ppu.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := range frame {
		for x, px := range frame[y] {
			img.SetRGBA(x, y, color.RGBA{R: px[0], G: px[1], B: px[2], A: 0xFF})
		}
	}
	return img
}

// ScaleImage enlarges img by factor using nearest neighbour
// sampling, keeping pixel edges sharp. The factor is clamped to
// [1, MaxScale].
func ScaleImage(img image.Image, factor int) *image.RGBA {
	factor = Clamp(1, factor, MaxScale)
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SaveImage encodes img to filename, choosing the format from
// its extension (.png or .bmp).
func SaveImage(img image.Image, filename string) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("utils: unsupported image format %q", ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

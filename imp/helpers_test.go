package imp

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// newGray builds a w x h image whose pixels are given by fn.
func newGray(w, h int, fn func(x, y int) uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{fn(x, y)})
		}
	}
	return img
}

func flat(w, h int, v uint8) *image.Gray {
	return newGray(w, h, func(int, int) uint8 { return v })
}

// requireBinary checks every pixel of img is black or white.
func requireBinary(t *testing.T, img *image.Gray) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			require.Truef(t, v == 0 || v == 255, "pixel (%d, %d) = %d", x, y, v)
		}
	}
}

func imgsequal(img1, img2 *image.Gray) bool {
	b := img1.Bounds()
	if !b.Eq(img2.Bounds()) {
		return false
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img1.GrayAt(x, y) != img2.GrayAt(x, y) {
				return false
			}
		}
	}
	return true
}

package imp

import (
	"image"
	"image/color"
)

var (
	Black = color.Gray{0}
	White = color.Gray{255}
)

// Threshold performs simple binarization of a grayscale image: pixels darker
// than level become black, all others white.
func Threshold(src, dst *image.Gray, level uint8) error {
	if src.Bounds() != dst.Bounds() {
		return ErrBoundsMismatch
	}

	b := src.Bounds()
	bands(b, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if src.GrayAt(x, y).Y < level {
					dst.SetGray(x, y, Black)
				} else {
					dst.SetGray(x, y, White)
				}
			}
		}
	})
	return nil
}

// Binarize returns a new binary image thresholded at level.
func Binarize(src *image.Gray, level uint8) (*image.Gray, error) {
	if src.Bounds().Empty() {
		return nil, ErrEmptyInput
	}
	dst := image.NewGray(src.Bounds())
	if err := Threshold(src, dst, level); err != nil {
		return nil, err
	}
	return dst, nil
}

// Invert swaps black and white in a binary image. src and dst may be the
// same image.
func Invert(src, dst *image.Gray) error {
	if src.Bounds() != dst.Bounds() {
		return ErrBoundsMismatch
	}

	b := src.Bounds()
	bands(b, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if src.GrayAt(x, y).Y < White.Y {
					dst.SetGray(x, y, White)
				} else {
					dst.SetGray(x, y, Black)
				}
			}
		}
	})
	return nil
}

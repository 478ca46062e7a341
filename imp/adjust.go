package imp

import (
	"image"
)

// Normalize adjusts a grayscale image so it spans the whole colorspace.
// Flat images are copied as is.
func Normalize(src, dst *image.Gray) error {
	if src.Bounds() != dst.Bounds() {
		return ErrBoundsMismatch
	}

	var min uint8 = 255
	var max uint8 = 0

	rect := src.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			val := src.GrayAt(x, y).Y
			if val < min {
				min = val
			}
			if val > max {
				max = val
			}
		}
	}

	alpha := float32(max - min)
	bands(rect, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				c := src.GrayAt(x, y)
				if alpha > 0 {
					c.Y = uint8((float32(c.Y-min) / alpha) * 255)
				}
				dst.SetGray(x, y, c)
			}
		}
	})
	return nil
}

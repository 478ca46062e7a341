package imp

import (
	"image"
	"strings"
)

// Background is the nominal background of a page. It decides how pixels
// in low-contrast windows are classified by Bernsen.
type Background int

const (
	// Bright backgrounds (dark ink on light paper) turn flat regions white.
	Bright Background = iota
	// Dark backgrounds turn flat regions black.
	Dark
)

// ParseBackground parses "bright" or "dark".
func ParseBackground(s string) (Background, error) {
	switch strings.ToLower(s) {
	case "bright":
		return Bright, nil
	case "dark":
		return Dark, nil
	}
	return Bright, ErrUnknownBackground
}

func (bg Background) String() string {
	if bg == Dark {
		return "dark"
	}
	return "bright"
}

// Sentinel returns the threshold applied to pixels of low-contrast windows.
func (bg Background) Sentinel() float64 {
	if bg == Dark {
		return 255
	}
	return 0
}

// window returns the extremes of the size x size neighbourhood whose top
// left corner is one pixel up and left of (x, y). Samples outside the image
// are skipped. ok is false if no sample fell inside.
func window(img *image.Gray, x, y, size int) (min, max uint8, ok bool) {
	b := img.Bounds()
	min, max = 255, 0
	for a := 0; a < size; a++ {
		yi := y - 1 + a
		if yi < b.Min.Y || yi >= b.Max.Y {
			continue
		}
		for c := 0; c < size; c++ {
			xi := x - 1 + c
			if xi < b.Min.X || xi >= b.Max.X {
				continue
			}
			v := img.GrayAt(xi, yi).Y
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
			ok = true
		}
	}
	return min, max, ok
}

// Bernsen implements Bernsen's local thresholding. Each pixel is compared
// to the midrange of its size x size window; when the window contrast is
// below contrast, the background sentinel is used instead.
func Bernsen(img *image.Gray, size, contrast int, bg Background) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyInput
	}

	k := bg.Sentinel()
	dst := image.NewGray(b)
	errs := make([]error, b.Dy())

	bands(b, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				min, max, ok := window(img, x, y, size)
				if !ok {
					errs[y-b.Min.Y] = &DegenerateWindowError{X: x, Y: y, Size: size}
					return
				}

				th := (float64(max) + float64(min)) / 2
				if int(max)-int(min) < contrast {
					th = k
				}
				if float64(img.GrayAt(x, y).Y) < th {
					dst.SetGray(x, y, Black)
				} else {
					dst.SetGray(x, y, White)
				}
			}
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

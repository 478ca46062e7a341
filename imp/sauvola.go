package imp

import (
	"image"
	"math"
)

// sauvolaLevel is the threshold of Sauvola's method for a window of mean m
// and deviation dev.
func sauvolaLevel(m, dev, k float64) float64 {
	return m * (1 + k*((dev/128)-1))
}

// surrounding gets the pixel values of the size x size window centred on
// (x, y), clipped to the image.
func surrounding(img *image.Gray, x, y, size int) []int {
	b := img.Bounds()
	step := size / 2

	var s []int
	for yi := y - step; yi <= y+step; yi++ {
		if yi < b.Min.Y || yi >= b.Max.Y {
			continue
		}
		for xi := x - step; xi <= x+step; xi++ {
			if xi < b.Min.X || xi >= b.Max.X {
				continue
			}
			s = append(s, int(img.GrayAt(xi, yi).Y))
		}
	}
	return s
}

func meanstddev(i []int) (float64, float64) {
	sum := 0
	for _, n := range i {
		sum += n
	}
	m := float64(sum) / float64(len(i))

	var sq float64
	for _, n := range i {
		sq += (float64(n) - m) * (float64(n) - m)
	}
	return m, math.Sqrt(sq / float64(len(i)))
}

func oddSize(size int) int {
	if size < 1 {
		return 1
	}
	if size%2 == 0 {
		return size + 1
	}
	return size
}

// Sauvola implements Sauvola's algorithm for text binarization, see paper
// "Adaptive document image binarization" (2000)
func Sauvola(img *image.Gray, k float64, size int) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyInput
	}
	size = oddSize(size)
	dst := image.NewGray(b)

	bands(b, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				m, dev := meanstddev(surrounding(img, x, y, size))
				if float64(img.GrayAt(x, y).Y) < sauvolaLevel(m, dev, k) {
					dst.SetGray(x, y, Black)
				} else {
					dst.SetGray(x, y, White)
				}
			}
		}
	})
	return dst, nil
}

// IntegralSauvola implements Sauvola's algorithm using Integral Images, see
// paper "Efficient Implementation of Local Adaptive Thresholding Techniques
// Using Integral Images"
func IntegralSauvola(img *image.Gray, k float64, size int) (*image.Gray, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyInput
	}
	size = oddSize(size)
	dst := image.NewGray(b)
	integral := NewIntegral(img)

	bands(b, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				m, dev := integral.MeanStdDevWindow(x-b.Min.X, y-b.Min.Y, size)
				if float64(img.GrayAt(x, y).Y) < sauvolaLevel(m, dev, k) {
					dst.SetGray(x, y, Black)
				} else {
					dst.SetGray(x, y, White)
				}
			}
		}
	})
	return dst, nil
}

package imp

import (
	"image"
	"math"
)

// Integral is a summed-area table of an image and of its square, used to
// get the mean and deviation of any window in constant time.
type Integral struct {
	sum, sq [][]uint64
}

// NewIntegral builds the summed-area tables of img.
func NewIntegral(img *image.Gray) Integral {
	b := img.Bounds()
	var in Integral
	for y := 0; y < b.Dy(); y++ {
		row := make([]uint64, b.Dx())
		rowsq := make([]uint64, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			p := uint64(img.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			row[x], rowsq[x] = p, p*p
			if x > 0 {
				row[x] += row[x-1]
				rowsq[x] += rowsq[x-1]
			}
			if y > 0 {
				row[x] += in.sum[y-1][x]
				rowsq[x] += in.sq[y-1][x]
			}
			if x > 0 && y > 0 {
				row[x] -= in.sum[y-1][x-1]
				rowsq[x] -= in.sq[y-1][x-1]
			}
		}
		in.sum = append(in.sum, row)
		in.sq = append(in.sq, rowsq)
	}
	return in
}

// area returns the inclusive corners of the size x size window centred on
// (x, y), clipped to the table. Coordinates are relative to the image
// origin.
func (in Integral) area(x, y, size int) (x0, y0, x1, y1 int) {
	step := size / 2
	x0, y0 = x-step, y-step
	x1, y1 = x+step, y+step
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if y1 > len(in.sum)-1 {
		y1 = len(in.sum) - 1
	}
	if x1 > len(in.sum[0])-1 {
		x1 = len(in.sum[0]) - 1
	}
	return
}

func rect(t [][]uint64, x0, y0, x1, y1 int) uint64 {
	s := t[y1][x1]
	if x0 > 0 {
		s -= t[y1][x0-1]
	}
	if y0 > 0 {
		s -= t[y0-1][x1]
	}
	if x0 > 0 && y0 > 0 {
		s += t[y0-1][x0-1]
	}
	return s
}

// MeanWindow returns the mean of the size x size window centred on (x, y).
func (in Integral) MeanWindow(x, y, size int) float64 {
	x0, y0, x1, y1 := in.area(x, y, size)
	n := float64((x1 - x0 + 1) * (y1 - y0 + 1))
	return float64(rect(in.sum, x0, y0, x1, y1)) / n
}

// MeanStdDevWindow returns the mean and standard deviation of the size x
// size window centred on (x, y).
func (in Integral) MeanStdDevWindow(x, y, size int) (float64, float64) {
	x0, y0, x1, y1 := in.area(x, y, size)
	n := float64((x1 - x0 + 1) * (y1 - y0 + 1))
	m := float64(rect(in.sum, x0, y0, x1, y1)) / n
	variance := float64(rect(in.sq, x0, y0, x1, y1))/n - m*m
	if variance < 0 {
		variance = 0
	}
	return m, math.Sqrt(variance)
}

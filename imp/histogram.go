package imp

import (
	"image"
)

// Bins is the number of equal-width histogram bins used for Otsu.
const Bins = 255

// Histogram is an intensity distribution over Bins equal-width bins
// spanning the observed range of an image. Counts and Edges both hold
// Bins+1 entries: Edges are the left edges of each bin (the last one being
// the upper bound of the range) and the last count is a zero sentinel, so
// a split can be placed past the brightest bin.
type Histogram struct {
	Counts []int
	Edges  []float64
}

// NewHistogram computes the histogram of a grayscale image.
func NewHistogram(img *image.Gray) (Histogram, error) {
	b := img.Bounds()
	if b.Empty() {
		return Histogram{}, ErrEmptyInput
	}

	var min, max uint8 = 255, 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := img.GrayAt(x, y).Y
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	lo, hi := float64(min), float64(max)
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	h := Histogram{
		Counts: make([]int, Bins+1),
		Edges:  make([]float64, Bins+1),
	}
	step := (hi - lo) / Bins
	for k := range h.Edges {
		h.Edges[k] = lo + float64(k)*step
	}
	h.Edges[Bins] = hi

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			h.Counts[h.bin(float64(img.GrayAt(x, y).Y))]++
		}
	}
	return h, nil
}

// bin returns the index of the bin holding v. The last bin is closed on
// both sides.
func (h Histogram) bin(v float64) int {
	lo, hi := h.Edges[0], h.Edges[Bins]
	k := int((v - lo) * Bins / (hi - lo))
	if k >= Bins {
		k = Bins - 1
	}
	if k < 0 {
		k = 0
	}
	// Rounding can put v one bin off its edges.
	if v < h.Edges[k] && k > 0 {
		k--
	} else if k+1 < Bins && v >= h.Edges[k+1] {
		k++
	}
	return k
}

// Total returns the number of pixels counted.
func (h Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

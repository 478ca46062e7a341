package imp

import (
	"image"
	"math"
)

// Split is a threshold over a histogram: pixels in bins below Index are the
// dark class. Value is the left edge of that bin.
type Split struct {
	Index int
	Value float64
}

// Level returns the 8-bit level to binarize with, such that an integer
// pixel v is below Level() exactly when it is below Value.
func (t Split) Level() uint8 {
	l := math.Ceil(t.Value)
	if l < 0 {
		return 0
	}
	if l > 255 {
		return 255
	}
	return uint8(l)
}

// OtsuResult holds the selected threshold along with the between-class
// variance of every candidate.
type OtsuResult struct {
	Threshold Split
	Variances []float64
	Histogram Histogram
}

// Variances computes the between-class variance for each candidate split
// i in [0, Bins]. Both class sums are recomputed for every candidate.
func Variances(h Histogram) []float64 {
	counts, bins := h.Counts, h.Edges
	n := len(counts)

	total := 0
	for _, c := range counts {
		total += c
	}

	variances := make([]float64, n)
	if total == 0 {
		return variances
	}

	for i := 0; i < n; i++ {
		var n0, n1 int
		var s0, s1 float64
		for j := 0; j < i; j++ {
			n0 += counts[j]
			s0 += float64(counts[j]) * bins[j]
		}
		for k := 0; k < n-i; k++ {
			n1 += counts[i+k]
			s1 += float64(counts[i+k]) * bins[i+k]
		}

		p0 := float64(n0) / float64(total)
		p1 := float64(n1) / float64(total)
		var u0, u1 float64
		if n0 != 0 {
			u0 = s0 / float64(n0)
		}
		if n1 != 0 {
			u1 = s1 / float64(n1)
		}
		variances[i] = p0 * p1 * (u0 - u1) * (u0 - u1)
	}
	return variances
}

// Otsu selects the split maximizing the between-class variance of h. Ties
// go to the smallest index.
func Otsu(h Histogram) (OtsuResult, error) {
	if len(h.Counts) == 0 || h.Total() == 0 {
		return OtsuResult{}, ErrEmptyInput
	}

	variances := Variances(h)
	best := 0
	for i, v := range variances {
		if v > variances[best] {
			best = i
		}
	}

	return OtsuResult{
		Threshold: Split{Index: best, Value: h.Edges[best]},
		Variances: variances,
		Histogram: h,
	}, nil
}

// OtsuThreshold binarizes img at the threshold selected by Otsu's method.
func OtsuThreshold(img *image.Gray) (*image.Gray, OtsuResult, error) {
	h, err := NewHistogram(img)
	if err != nil {
		return nil, OtsuResult{}, err
	}
	res, err := Otsu(h)
	if err != nil {
		return nil, res, err
	}
	bin, err := Binarize(img, res.Threshold.Level())
	return bin, res, err
}

package imp

import (
	"image"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandsCoverRows(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 4, 1),
		image.Rect(0, 0, 4, 97),
		image.Rect(3, -5, 9, 40),
	} {
		var mu sync.Mutex
		seen := map[int]int{}
		bands(r, func(y0, y1 int) {
			mu.Lock()
			defer mu.Unlock()
			for y := y0; y < y1; y++ {
				seen[y]++
			}
		})
		assert.Len(t, seen, r.Dy())
		for y := r.Min.Y; y < r.Max.Y; y++ {
			assert.Equalf(t, 1, seen[y], "row %d of %v", y, r)
		}
	}
}

package imp

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegralMatchesWindows(t *testing.T) {
	img := newGray(13, 9, func(x, y int) uint8 { return uint8((x*x + 3*y) % 256) })
	integral := NewIntegral(img)

	for _, size := range []int{1, 3, 5, 9} {
		t.Run(fmt.Sprintf("w%d", size), func(t *testing.T) {
			for y := 0; y < 9; y++ {
				for x := 0; x < 13; x++ {
					m, dev := meanstddev(surrounding(img, x, y, size))
					im, idev := integral.MeanStdDevWindow(x, y, size)
					assert.InDeltaf(t, m, im, 1e-9, "mean at (%d, %d)", x, y)
					assert.InDeltaf(t, dev, idev, 1e-4, "deviation at (%d, %d)", x, y)
					assert.InDelta(t, m, integral.MeanWindow(x, y, size), 1e-9)
				}
			}
		})
	}
}

func TestMeanStdDev(t *testing.T) {
	m, dev := meanstddev([]int{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 5.0, m)
	assert.Equal(t, 2.0, dev)

	_, dev = meanstddev([]int{3})
	assert.False(t, math.IsNaN(dev))
}

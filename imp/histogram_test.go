package imp

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	cases := []struct {
		name string
		img  *image.Gray
	}{
		{"full range", newGray(256, 4, func(x, y int) uint8 { return uint8(x) })},
		{"narrow range", newGray(20, 20, func(x, y int) uint8 { return uint8(100 + (x+y)%7) })},
		{"flat", flat(8, 8, 42)},
		{"bimodal", newGray(40, 50, func(x, y int) uint8 {
			if x < 20 {
				return 10
			}
			return 200
		})},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, err := NewHistogram(c.img)
			require.NoError(t, err)
			require.Len(t, h.Counts, Bins+1)
			require.Len(t, h.Edges, Bins+1)

			b := c.img.Bounds()
			assert.Equal(t, b.Dx()*b.Dy(), h.Total())
			assert.Equal(t, 0, h.Counts[Bins], "sentinel bin must be empty")
			for k := 1; k < len(h.Edges); k++ {
				assert.Greaterf(t, h.Edges[k], h.Edges[k-1], "edge %d", k)
			}
		})
	}
}

func TestHistogramFullRangeEdges(t *testing.T) {
	h, err := NewHistogram(newGray(256, 1, func(x, y int) uint8 { return uint8(x) }))
	require.NoError(t, err)
	for k, e := range h.Edges {
		assert.Equal(t, float64(k), e)
	}
	for k := 0; k < Bins-1; k++ {
		assert.Equalf(t, 1, h.Counts[k], "bin %d", k)
	}
	// 254 and 255 share the last, closed bin.
	assert.Equal(t, 2, h.Counts[Bins-1])
}

func TestHistogramFlat(t *testing.T) {
	h, err := NewHistogram(flat(3, 3, 42))
	require.NoError(t, err)
	assert.Equal(t, 41.5, h.Edges[0])
	assert.Equal(t, 42.5, h.Edges[Bins])
	assert.Equal(t, 9, h.Counts[127])
}

func TestHistogramEmpty(t *testing.T) {
	_, err := NewHistogram(image.NewGray(image.Rect(0, 0, 0, 5)))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

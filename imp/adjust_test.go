package imp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	src := newGray(4, 1, func(x, y int) uint8 { return uint8(100 + x*10) })
	dst := flat(4, 1, 0)
	require.NoError(t, Normalize(src, dst))
	assert.Equal(t, uint8(0), dst.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(85), dst.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(255), dst.GrayAt(3, 0).Y)
}

func TestNormalizeFlat(t *testing.T) {
	src := flat(3, 3, 77)
	dst := flat(3, 3, 0)
	require.NoError(t, Normalize(src, dst))
	assert.True(t, imgsequal(src, dst))

	assert.ErrorIs(t, Normalize(src, flat(1, 1, 0)), ErrBoundsMismatch)
}

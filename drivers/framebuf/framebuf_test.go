package framebuf

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestSetPixelClipsToRaster(t *testing.T) {
	b := New(4, 3)
	b.SetPixel(1, 2, red)
	b.SetPixel(-1, 0, red)
	b.SetPixel(4, 0, red)
	b.SetPixel(0, 3, red)

	assert.Equal(t, red, b.At(1, 2))
	n := 0
	for _, p := range b.Snapshot() {
		if p == red {
			n++
		}
	}
	assert.Equal(t, 1, n)
}

func TestFillRectangle(t *testing.T) {
	b := New(8, 8)
	require.NoError(t, b.FillRectangle(2, 3, 3, 2, red))

	for y := int16(0); y < 8; y++ {
		for x := int16(0); x < 8; x++ {
			in := x >= 2 && x < 5 && y >= 3 && y < 5
			assert.Equal(t, in, b.At(x, y) == red, "pixel (%d,%d)", x, y)
		}
	}
}

func TestFillRectangleBounds(t *testing.T) {
	b := New(8, 8)
	assert.Error(t, b.FillRectangle(6, 0, 3, 1, red))
	assert.Error(t, b.FillRectangle(0, 0, 0, 1, red))
	assert.NoError(t, b.FillRectangle(0, 0, 8, 8, red))
}

func TestDisplayCountsFrames(t *testing.T) {
	b := New(1, 1)
	require.NoError(t, b.Display())
	require.NoError(t, b.Display())
	assert.Equal(t, 2, b.Frames())
}

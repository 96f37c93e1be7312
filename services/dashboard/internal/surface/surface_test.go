package surface

import (
	"image/color"
	"testing"

	"cluedash-go/drivers/framebuf"
	"cluedash-go/errcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	green = color.RGBA{G: 255, A: 255}
	noise = color.RGBA{R: 9, G: 99, B: 199, A: 255}
)

func newSurface(t *testing.T) (*Surface, *framebuf.Buffer) {
	t.Helper()
	fb := framebuf.New(240, 240)
	s := New(fb, Config{})
	require.NoError(t, s.Init())
	return s, fb
}

// paint fills every pixel with a position-dependent colour so any change
// outside a region is visible.
func paint(fb *framebuf.Buffer) {
	w, h := fb.Size()
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			fb.SetPixel(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
}

func TestInitClearsToBackground(t *testing.T) {
	s, fb := newSurface(t)
	for _, p := range fb.Snapshot() {
		require.Equal(t, Black, p)
	}
	assert.Equal(t, White, s.Foreground())
	assert.Equal(t, 1, fb.Frames())
}

func TestRedrawNeverBleedsOutsideRegion(t *testing.T) {
	s, fb := newSurface(t)
	paint(fb)
	before := fb.Snapshot()

	r := Region{Name: "gyro", X: 0, Y: 220, W: 240, H: 20}
	err := s.Redraw(r, func(c *Canvas) error {
		// Scribble across the whole screen; only r may change.
		w, h := c.Size()
		for y := int16(-5); y < h+5; y++ {
			for x := int16(-5); x < w+5; x++ {
				c.SetPixel(x, y, green)
			}
		}
		return c.FillRectangle(-10, 0, 300, 240, green)
	})
	require.NoError(t, err)

	after := fb.Snapshot()
	for y := int16(0); y < 240; y++ {
		for x := int16(0); x < 240; x++ {
			i := int(y)*240 + int(x)
			if r.Contains(x, y) {
				require.Equal(t, green, after[i], "inside (%d,%d)", x, y)
			} else {
				require.Equal(t, before[i], after[i], "outside (%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, uint32(1), s.Redraws())
}

func TestRedrawIsIdempotent(t *testing.T) {
	s, fb := newSurface(t)
	r := Region{Name: "rgb", X: 0, Y: 200, W: 240, H: 20}
	draw := func(c *Canvas) error {
		for x := int16(10); x < 60; x += 3 {
			c.SetPixel(x, 205, noise)
		}
		return nil
	}

	require.NoError(t, s.Redraw(r, draw))
	once := fb.Snapshot()
	require.NoError(t, s.Redraw(r, draw))
	assert.Equal(t, once, fb.Snapshot())
}

func TestRedrawErasesStaleContent(t *testing.T) {
	s, fb := newSurface(t)
	r := Region{Name: "temp", X: 0, Y: 180, W: 240, H: 20}
	bar := func(n int16) func(*Canvas) error {
		return func(c *Canvas) error { return c.FillRectangle(10, 185, n, 8, White) }
	}

	require.NoError(t, s.Redraw(r, bar(120)))
	require.NoError(t, s.Redraw(r, bar(20)))

	assert.Equal(t, White, fb.At(29, 188))
	for x := int16(30); x < 130; x++ {
		require.Equal(t, Black, fb.At(x, 188), "stale pixel at x=%d", x)
	}
}

func TestRedrawRejectsRegionOffScreen(t *testing.T) {
	s, _ := newSurface(t)
	err := s.Redraw(Region{Name: "bad", X: 0, Y: 230, W: 240, H: 20}, nil)
	assert.ErrorIs(t, err, errcode.OutOfBounds)
	assert.Zero(t, s.Redraws())
}

func TestRedrawPropagatesDrawError(t *testing.T) {
	s, _ := newSurface(t)
	err := s.Redraw(Region{X: 0, Y: 0, W: 10, H: 10}, func(*Canvas) error { return errcode.Capacity })
	assert.ErrorIs(t, err, errcode.Capacity)
}

func TestLayoutValidate(t *testing.T) {
	ok := Layout{
		{Name: "a", X: 0, Y: 0, W: 240, H: 20},
		{Name: "b", X: 0, Y: 20, W: 240, H: 20},
	}
	assert.NoError(t, ok.Validate(240, 240))

	overlap := Layout{
		{Name: "a", X: 0, Y: 0, W: 240, H: 20},
		{Name: "b", X: 0, Y: 19, W: 240, H: 20},
	}
	assert.ErrorIs(t, overlap.Validate(240, 240), errcode.Overlap)

	off := Layout{{Name: "a", X: 0, Y: 230, W: 240, H: 20}}
	assert.ErrorIs(t, off.Validate(240, 240), errcode.OutOfBounds)
}

func TestRegionGeometry(t *testing.T) {
	r := Region{X: 10, Y: 20, W: 5, H: 5}
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(14, 24))
	assert.False(t, r.Contains(15, 24))
	assert.False(t, r.Contains(9, 20))

	assert.True(t, r.Overlaps(Region{X: 14, Y: 24, W: 10, H: 10}))
	assert.False(t, r.Overlaps(Region{X: 15, Y: 20, W: 10, H: 10}))
}

package surface

import "image/color"

// Canvas is a view of the device clipped to one region. It has the shape of
// drivers.Displayer so font and shape helpers draw straight into it.
type Canvas struct {
	dev Device
	r   Region
}

// Size reports the full device size; clipping happens per pixel.
func (c *Canvas) Size() (x, y int16) { return c.dev.Size() }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.r.Contains(x, y) {
		c.dev.SetPixel(x, y, col)
	}
}

// Display is a no-op; the surface flushes once per redraw.
func (c *Canvas) Display() error { return nil }

// Region returns the clip rectangle.
func (c *Canvas) Region() Region { return c.r }

// FillRectangle fills the part of the rectangle inside the region.
func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	ix, iy, iw, ih, ok := c.r.intersect(x, y, width, height)
	if !ok {
		return nil
	}
	return c.dev.FillRectangle(ix, iy, iw, ih, col)
}

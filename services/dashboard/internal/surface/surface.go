// Package surface owns the TFT and redraws fixed rectangular regions.
//
// The surface keeps no dirty state. Every Redraw paints the region in the
// background colour and then draws the new content through a Canvas that
// drops pixels outside the region, so one field never touches another.
package surface

import (
	"image/color"

	"cluedash-go/errcode"
)

// Device is the raster the surface drives (ST7789 on the CLUE, an in-memory
// framebuffer on host).
type Device interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	Display() error
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

var (
	Black = color.RGBA{A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Config is applied once by Init. Zero colours mean black background and
// white foreground.
type Config struct {
	Background color.RGBA
	Foreground color.RGBA
}

// Surface is the display owner.
type Surface struct {
	dev  Device
	cfg  Config
	w, h int16

	redraws uint32
}

// New wraps dev. It does not touch the device.
func New(dev Device, cfg Config) *Surface {
	if cfg.Background == (color.RGBA{}) {
		cfg.Background = Black
	}
	if cfg.Foreground == (color.RGBA{}) {
		cfg.Foreground = White
	}
	w, h := dev.Size()
	return &Surface{dev: dev, cfg: cfg, w: w, h: h}
}

// Init clears the whole frame to the background colour.
func (s *Surface) Init() error {
	if err := s.dev.FillRectangle(0, 0, s.w, s.h, s.cfg.Background); err != nil {
		return errcode.Wrap(errcode.IOError, "surface.init", err)
	}
	return s.dev.Display()
}

func (s *Surface) Size() (w, h int16)     { return s.w, s.h }
func (s *Surface) Background() color.RGBA { return s.cfg.Background }
func (s *Surface) Foreground() color.RGBA { return s.cfg.Foreground }

// Redraws returns the number of completed region redraws.
func (s *Surface) Redraws() uint32 { return s.redraws }

// Redraw clears r to the background and runs draw on a canvas clipped to r.
// The transfer is synchronous; there is no double buffering.
func (s *Surface) Redraw(r Region, draw func(c *Canvas) error) error {
	if !r.Within(s.w, s.h) {
		return &errcode.E{C: errcode.OutOfBounds, Op: "surface.redraw", Msg: r.Name}
	}
	if err := s.dev.FillRectangle(r.X, r.Y, r.W, r.H, s.cfg.Background); err != nil {
		return errcode.Wrap(errcode.IOError, "surface.clear", err)
	}
	if draw != nil {
		if err := draw(&Canvas{dev: s.dev, r: r}); err != nil {
			return err
		}
	}
	if err := s.dev.Display(); err != nil {
		return errcode.Wrap(errcode.IOError, "surface.display", err)
	}
	s.redraws++
	return nil
}

// Package framebuf is an in-memory RGBA display with the same drawing surface
// as the TFT drivers. Host builds and tests render into it.
package framebuf

import (
	"image/color"
	"sync"

	"cluedash-go/errcode"
)

// Buffer is a width x height RGBA raster.
type Buffer struct {
	mu     sync.RWMutex
	w, h   int16
	pix    []color.RGBA
	frames int
}

// New returns a buffer cleared to transparent black.
func New(w, h int16) *Buffer {
	return &Buffer{w: w, h: h, pix: make([]color.RGBA, int(w)*int(h))}
}

func (b *Buffer) Size() (x, y int16) { return b.w, b.h }

// SetPixel ignores coordinates outside the raster, like the TFT drivers.
func (b *Buffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.mu.Lock()
	b.pix[int(y)*int(b.w)+int(x)] = c
	b.mu.Unlock()
}

// Display counts flushes; the buffer has nothing to push.
func (b *Buffer) Display() error {
	b.mu.Lock()
	b.frames++
	b.mu.Unlock()
	return nil
}

func (b *Buffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if x < 0 || y < 0 || width <= 0 || height <= 0 || x+width > b.w || y+height > b.h {
		return errcode.OutOfBounds
	}
	b.mu.Lock()
	for j := y; j < y+height; j++ {
		row := b.pix[int(j)*int(b.w):]
		for i := x; i < x+width; i++ {
			row[i] = c
		}
	}
	b.mu.Unlock()
	return nil
}

// At returns the pixel at (x, y); out-of-range reads are zero.
func (b *Buffer) At(x, y int16) color.RGBA {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return color.RGBA{}
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.pix[int(y)*int(b.w)+int(x)]
}

// Snapshot copies the raster.
func (b *Buffer) Snapshot() []color.RGBA {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]color.RGBA(nil), b.pix...)
}

// Frames returns how many times Display was called.
func (b *Buffer) Frames() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.frames
}

// Package board owns the physical peripherals of the dashboard.
//
// Normal code obtains the single handle set with Take. The fault path, which
// may run after the owner is gone (panic unwinding), uses Steal instead.
package board

import (
	"image/color"
	"sync"
	"time"

	"cluedash-go/errcode"

	"tinygo.org/x/drivers"
)

// Display is the raster output the board exposes.
type Display interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	Display() error
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Indicator is a single on/off output (an LED).
type Indicator interface {
	High()
	Low()
}

// Delay blocks for a fixed duration. One instance is shared by every user on
// the board; there is only one thread of control.
type Delay interface {
	Sleep(d time.Duration)
}

// Board is one handle set over the peripherals.
type Board struct {
	Name    string
	Display Display
	LED     Indicator
	Delay   Delay

	mu       sync.Mutex
	bus      drivers.I2C
	busOwner string
}

var (
	takeMu sync.Mutex
	taken  bool
)

// Take returns the board. It succeeds once per process.
func Take() (*Board, error) {
	takeMu.Lock()
	defer takeMu.Unlock()
	if taken {
		return nil, errcode.BoardTaken
	}
	b, err := open()
	if err != nil {
		return nil, err
	}
	taken = true
	return b, nil
}

// Steal re-derives the LED and a delay without the ownership check. It never
// touches the sensor bus or the display and never returns nil.
//
// Only the fault handler may call this, once every other code path has
// stopped: the returned LED aliases the one given out by Take.
func Steal() *Board {
	return openIndicator()
}

// ClaimSensorBus grants the physical sensor bus to owner. Any further claim,
// by any owner, is refused until the holder releases it.
func (b *Board) ClaimSensorBus(owner string) (drivers.I2C, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bus == nil {
		return nil, errcode.Unsupported
	}
	if b.busOwner != "" {
		return nil, &errcode.E{C: errcode.BusInUse, Op: "claim_i2c", Msg: "held by " + b.busOwner}
	}
	b.busOwner = owner
	return b.bus, nil
}

// ReleaseSensorBus drops owner's claim, if it holds one.
func (b *Board) ReleaseSensorBus(owner string) {
	b.mu.Lock()
	if b.busOwner == owner {
		b.busOwner = ""
	}
	b.mu.Unlock()
}

type sleeper struct{}

func (sleeper) Sleep(d time.Duration) { time.Sleep(d) }

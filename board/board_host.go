//go:build !clue_alpha

package board

import (
	"sync"

	"cluedash-go/drivers/framebuf"
)

const (
	screenW = 240
	screenH = 240
)

// Emulator is the hardware behind a host board.
type Emulator struct {
	Bus     *SimBus
	Display *framebuf.Buffer
	LED     *HostLED
}

// NewEmulator returns fresh emulated hardware: all five sensors present, a
// cleared 240x240 framebuffer and the LED off.
func NewEmulator() *Emulator {
	return &Emulator{
		Bus:     NewSimBus(),
		Display: framebuf.New(screenW, screenH),
		LED:     &HostLED{},
	}
}

// Board returns a board handle over e. Tests use it for isolated rigs; Take
// and Steal go through Host.
func (e *Emulator) Board() *Board {
	return &Board{
		Name:    "host",
		Display: e.Display,
		LED:     e.LED,
		Delay:   sleeper{},
		bus:     e.Bus,
	}
}

// Host is the process-wide emulated hardware shared by Take and Steal, like
// the real peripherals.
var Host = NewEmulator()

func open() (*Board, error) {
	return Host.Board(), nil
}

func openIndicator() *Board {
	return &Board{Name: "host", LED: Host.LED, Delay: sleeper{}}
}

// HostLED records the indicator level.
type HostLED struct {
	mu      sync.Mutex
	on      bool
	toggles int
}

func (l *HostLED) High() { l.set(true) }
func (l *HostLED) Low()  { l.set(false) }

func (l *HostLED) set(v bool) {
	l.mu.Lock()
	if l.on != v {
		l.toggles++
	}
	l.on = v
	l.mu.Unlock()
}

// State returns the current level and how many times it changed.
func (l *HostLED) State() (on bool, toggles int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on, l.toggles
}

// Package dashboard runs the poll-and-render loop: every tick, each sensor is
// read over its bus lease and its fields are redrawn.
//
// There is no local recovery. Any error in Init or in a cycle stops the loop
// and is returned to the caller, which hands it to the fault handler.
package dashboard

import (
	"time"

	"cluedash-go/board"
	"cluedash-go/errcode"
	"cluedash-go/services/dashboard/internal/arbiter"
	"cluedash-go/services/dashboard/internal/render"
	"cluedash-go/services/dashboard/internal/sensors"
	"cluedash-go/services/dashboard/internal/surface"
)

// State is the loop's position in Init -> Polling -> Faulted.
type State uint8

const (
	StateInit State = iota
	StatePolling
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePolling:
		return "polling"
	case StateFaulted:
		return "faulted"
	}
	return "unknown"
}

// Loop owns the sessions, the surface and the render pipeline.
type Loop struct {
	cfg      Config
	delay    board.Delay
	arb      *arbiter.Arbiter
	sessions []sensors.Session
	surf     *surface.Surface
	pipe     *render.Pipeline

	state  State
	cycles uint64
	err    error
}

// New claims the sensor bus, issues one lease per sensor and builds the
// sessions and the display surface. Nothing is configured until Init. A
// board's bus can back only one loop; the claim is dropped again if New
// fails.
func New(b *board.Board, cfg Config) (l *Loop, err error) {
	cfg = cfg.withDefaults()
	bus, err := b.ClaimSensorBus(cfg.Owner)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			b.ReleaseSensorBus(cfg.Owner)
		}
	}()
	arb := arbiter.New(bus, len(pollOrder))
	leases, err := arb.AcquireN(pollOrder...)
	if err != nil {
		return nil, err
	}
	ss := []sensors.Session{
		sensors.NewGyroAccel(leases[0]),
		sensors.NewLight(leases[1]),
		sensors.NewBarometer(leases[2], b.Delay),
		sensors.NewMagnetometer(leases[3]),
		sensors.NewHygrometer(leases[4], b.Delay),
	}
	if b.Display == nil {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "dashboard.new", Msg: "no display"}
	}
	l, err = newLoop(cfg, ss, surface.New(b.Display, surface.Config{}), b.Delay)
	if err != nil {
		return nil, err
	}
	l.arb = arb
	return l, nil
}

func newLoop(cfg Config, ss []sensors.Session, surf *surface.Surface, delay board.Delay) (*Loop, error) {
	pipe, err := render.New(surf, render.Fields())
	if err != nil {
		return nil, err
	}
	return &Loop{
		cfg:      cfg.withDefaults(),
		delay:    delay,
		sessions: ss,
		surf:     surf,
		pipe:     pipe,
	}, nil
}

func (l *Loop) State() State   { return l.state }
func (l *Loop) Cycles() uint64 { return l.cycles }

// Cadence is the pause Run takes between cycles.
func (l *Loop) Cadence() time.Duration { return l.cfg.Cadence }

// Err returns the error that moved the loop to StateFaulted.
func (l *Loop) Err() error { return l.err }

// Line returns the text currently shown in the named region.
func (l *Loop) Line(region string) string { return l.pipe.Line(region) }

// Regions lists the screen regions, top to bottom.
func (l *Loop) Regions() []string {
	rs := l.pipe.Regions()
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// BusStats returns per-lease transaction counters (nil without a real bus).
func (l *Loop) BusStats() []arbiter.Stat {
	if l.arb == nil {
		return nil
	}
	return l.arb.Stats()
}

// Init configures every sensor in poll order, then clears the screen.
func (l *Loop) Init() error {
	if l.state != StateInit {
		return l.err
	}
	for _, s := range l.sessions {
		if err := s.Init(); err != nil {
			return l.fail(err)
		}
		println("Info: sensor", s.Name(), "live")
	}
	if err := l.surf.Init(); err != nil {
		return l.fail(err)
	}
	l.state = StatePolling
	return nil
}

// Cycle reads every sensor once, in order, rendering each reading as soon as
// it arrives.
func (l *Loop) Cycle() error {
	if l.state != StatePolling {
		return &errcode.E{C: errcode.Error, Op: "cycle", Msg: "state " + l.state.String()}
	}
	for _, s := range l.sessions {
		r, err := s.Read()
		if err != nil {
			return l.fail(err)
		}
		if err := l.pipe.Render(r); err != nil {
			return l.fail(err)
		}
	}
	l.cycles++
	return nil
}

// Run initialises if needed and polls forever at the configured cadence. It
// returns only with the error that stopped it.
func (l *Loop) Run() error {
	if l.state == StateInit {
		if err := l.Init(); err != nil {
			return err
		}
	}
	for {
		if err := l.Cycle(); err != nil {
			return err
		}
		l.delay.Sleep(l.cfg.Cadence)
	}
}

func (l *Loop) fail(err error) error {
	l.state = StateFaulted
	l.err = err
	return err
}

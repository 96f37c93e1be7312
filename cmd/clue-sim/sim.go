//go:build !clue_alpha

package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"cluedash-go/board"
	"cluedash-go/services/dashboard"
	"cluedash-go/services/fault"
	"cluedash-go/x/mathx"
)

const panelGap = 2

// sim drives the loop one cycle per tick on the UI goroutine, so the
// framebuffer and the rendered lines are never read mid-cycle.
type sim struct {
	screen tcell.Screen
	loop   *dashboard.Loop
	scale  int

	faulted bool
	resync  bool
}

func newSim(s tcell.Screen, l *dashboard.Loop, scale int) *sim {
	return &sim{screen: s, loop: l, scale: mathx.Clamp(scale, 1, 8)}
}

func (s *sim) run() {
	ticker := time.NewTicker(s.loop.Cadence())
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go pump(s.screen, events, quit)

	s.tick()
	s.draw()
	for {
		select {
		case ev := <-events:
			if !s.handle(ev) {
				return
			}
		case <-ticker.C:
			s.tick()
			s.draw()
		}
	}
}

// pump forwards screen events until the screen is finalised, which makes
// PollEvent return nil, or until quit closes.
func pump(scr tcell.Screen, events chan<- tcell.Event, quit <-chan struct{}) {
	for {
		ev := scr.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-quit:
			return
		}
	}
}

func (s *sim) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'f':
				board.Host.Bus.FailAfter(0)
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// tick advances the emulated signals and runs one cycle. The first error
// hands the board to the fault handler, which blinks the host LED from then on.
func (s *sim) tick() {
	if s.faulted {
		return
	}
	var err error
	switch s.loop.State() {
	case dashboard.StateInit:
		err = s.loop.Init()
	case dashboard.StatePolling:
		board.Host.Bus.Step()
		err = s.loop.Cycle()
	}
	if err != nil {
		s.faulted = true
		s.resync = true
		go fault.Halt(err)
	}
}

func (s *sim) draw() {
	s.screen.Clear()
	s.drawPanel(s.drawFrame()+panelGap, 0)
	if s.resync {
		// fault.Halt writes to the console under the screen.
		s.resync = false
		s.screen.Sync()
		return
	}
	s.screen.Show()
}

// drawFrame samples the framebuffer every scale pixels and packs two rows per
// cell with an upper half block. It returns the width used, in cells.
func (s *sim) drawFrame() (cols int) {
	fb := board.Host.Display
	fw, fh := fb.Size()
	step := int16(s.scale)
	rows := 0
	for y := int16(0); y+step < fh; y += 2 * step {
		col := 0
		for x := int16(0); x < fw; x += step {
			top, bot := fb.At(x, y), fb.At(x, y+step)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			s.screen.SetContent(col, rows, '▀', nil, st)
			col++
		}
		cols = col
		rows++
	}
	return cols
}

func (s *sim) drawPanel(x, y int) {
	plain := tcell.StyleDefault
	bold := plain.Bold(true)

	state := s.loop.State().String()
	stStyle := plain.Foreground(tcell.ColorGreen)
	if s.loop.State() == dashboard.StateFaulted {
		stStyle = plain.Foreground(tcell.ColorRed)
	}
	y = s.text(x, y, bold, "CLUE sensor dashboard")
	y = s.text(x, y, stStyle, fmt.Sprintf("state %s  cycles %d  cadence %s", state, s.loop.Cycles(), s.loop.Cadence()))

	on, toggles := board.Host.LED.State()
	led := "off"
	if on {
		led = "ON"
	}
	y = s.text(x, y, plain, fmt.Sprintf("led %s (%d toggles)", led, toggles))
	if err := s.loop.Err(); err != nil {
		y = s.text(x, y, plain.Foreground(tcell.ColorRed), "fault: "+err.Error())
	}
	y++

	y = s.text(x, y, bold, "regions")
	for _, name := range s.loop.Regions() {
		y = s.text(x, y, plain, fmt.Sprintf("%-9s %s", name, s.loop.Line(name)))
	}
	y++

	y = s.text(x, y, bold, fmt.Sprintf("bus  %d tx", board.Host.Bus.Transactions()))
	for _, st := range s.loop.BusStats() {
		y = s.text(x, y, plain, fmt.Sprintf("%-9s tx %-6d err %d", st.Name, st.Tx, st.Errs))
	}
	y++
	s.text(x, y, plain.Dim(true), "f: fail bus   q: quit")
}

func (s *sim) text(x, y int, st tcell.Style, str string) int {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, st)
	}
	return y + 1
}

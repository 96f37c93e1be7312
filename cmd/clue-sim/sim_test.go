//go:build !clue_alpha

package main

import (
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cluedash-go/board"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(200, 80)
	t.Cleanup(s.Fini)
	return s
}

func TestScaleIsClamped(t *testing.T) {
	assert.Equal(t, 1, newSim(nil, nil, 0).scale)
	assert.Equal(t, 8, newSim(nil, nil, 99).scale)
	assert.Equal(t, 3, newSim(nil, nil, 3).scale)
}

func TestDrawFramePacksTwoRowsPerCell(t *testing.T) {
	screen := simScreen(t)
	fb := board.Host.Display
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	fb.SetPixel(0, 0, red)
	fb.SetPixel(0, 2, blue)

	s := newSim(screen, nil, 2)
	cols := s.drawFrame()
	assert.Equal(t, 120, cols)

	r, _, st, _ := screen.GetContent(0, 0)
	assert.Equal(t, '▀', r)
	fg, bg, _ := st.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	// 240 rows at two pixels per half cell.
	r, _, _, _ = screen.GetContent(0, 59)
	assert.Equal(t, '▀', r)
	r, _, _, _ = screen.GetContent(0, 60)
	assert.NotEqual(t, '▀', r)
}

func TestTextAdvancesOneRow(t *testing.T) {
	screen := simScreen(t)
	s := newSim(screen, nil, 2)

	next := s.text(3, 5, tcell.StyleDefault, "PROX 42")
	assert.Equal(t, 6, next)
	r, _, _, _ := screen.GetContent(3, 5)
	assert.Equal(t, 'P', r)
	r, _, _, _ = screen.GetContent(9, 5)
	assert.Equal(t, '2', r)
}

func TestPumpForwardsUntilFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	go func() {
		pump(screen, events, nil)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'f', tcell.ModNone)
	timeout := time.After(time.Second)
	for forwarded := false; !forwarded; {
		select {
		case ev := <-events:
			// Init may queue a resize ahead of the key.
			if key, ok := ev.(*tcell.EventKey); ok {
				assert.Equal(t, 'f', key.Rune())
				forwarded = true
			}
		case <-timeout:
			t.Fatal("event not forwarded")
		}
	}

	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump still running after Fini")
	}
}

func TestPumpStopsOnQuit(t *testing.T) {
	screen := simScreen(t)
	quit := make(chan struct{})
	done := make(chan struct{})
	go func() {
		pump(screen, make(chan tcell.Event), quit)
		close(done)
	}()

	close(quit)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pump blocked after quit")
	}
}

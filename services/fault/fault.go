// Package fault is the terminal error path. It takes the board over without
// the ownership check and blinks the LED forever.
package fault

import (
	"time"

	"cluedash-go/board"
)

// Blink pattern: long on, short off.
const (
	On  = 500 * time.Millisecond
	Off = 100 * time.Millisecond
)

// Halt prints cause once and never returns.
//
// It must not rely on any state of the normal loop: the board is re-derived
// with board.Steal, which is only sound because nothing else runs any more.
func Halt(cause any) {
	println("Fault:", describe(cause))
	b := board.Steal()
	Blink(b.LED, b.Delay, -1)
}

// Recover turns a panic in the calling function into Halt. Use as
// `defer fault.Recover()` at the top of main.
func Recover() {
	if r := recover(); r != nil {
		Halt(r)
	}
}

// Blink drives the pattern cycles times, or forever when cycles < 0.
func Blink(led board.Indicator, d board.Delay, cycles int) {
	for i := 0; cycles < 0 || i < cycles; i++ {
		led.High()
		d.Sleep(On)
		led.Low()
		d.Sleep(Off)
	}
}

func describe(cause any) string {
	switch v := cause.(type) {
	case nil:
		return "unknown"
	case error:
		return v.Error()
	case string:
		return v
	}
	return "panic"
}

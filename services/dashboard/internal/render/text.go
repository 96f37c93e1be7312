package render

import (
	"math"

	"cluedash-go/errcode"
	"cluedash-go/x/conv"
)

// Capacity bounds every rendered line. The widest field at its largest
// configured magnitude is under 45 bytes.
const Capacity = 64

// maxFixed bounds v * 10^prec, keeping the scaled value exact in a uint64.
const maxFixed = 1e15

var pow10 = [...]float64{1, 10, 100, 1e3, 1e4, 1e5, 1e6}

// Text is a fixed-capacity line buffer. The first append that would overflow
// sets a sticky capacity error and every later append is dropped.
type Text struct {
	buf [Capacity]byte
	n   int
	err error
}

func (t *Text) Reset() {
	t.n = 0
	t.err = nil
}

func (t *Text) Len() int       { return t.n }
func (t *Text) Bytes() []byte  { return t.buf[:t.n] }
func (t *Text) String() string { return string(t.buf[:t.n]) }

// Err returns the capacity error, if any append overflowed.
func (t *Text) Err() error { return t.err }

func (t *Text) AppendString(s string) {
	if t.err != nil {
		return
	}
	if t.n+len(s) > Capacity {
		t.err = &errcode.E{C: errcode.Capacity, Op: "render.text", Msg: s}
		return
	}
	t.n += copy(t.buf[t.n:], s)
}

func (t *Text) AppendByte(b byte) {
	if t.err != nil {
		return
	}
	if t.n >= Capacity {
		t.err = &errcode.E{C: errcode.Capacity, Op: "render.text"}
		return
	}
	t.buf[t.n] = b
	t.n++
}

func (t *Text) AppendInt(v int64) {
	var scratch [20]byte
	t.appendDigits(conv.AppendInt(scratch[:0], v))
}

// AppendFixed writes v rounded half away from zero to prec decimals
// (prec 0..6). A negative v keeps its sign even when it rounds to zero.
func (t *Text) AppendFixed(v float64, prec int) {
	if t.err != nil {
		return
	}
	if prec < 0 || prec >= len(pow10) || math.IsNaN(v) || math.Abs(v)*pow10[prec] >= maxFixed {
		t.err = &errcode.E{C: errcode.Capacity, Op: "render.fixed"}
		return
	}
	if prec == 0 {
		t.AppendInt(int64(math.Round(v)))
		return
	}
	if math.Signbit(v) {
		t.AppendByte('-')
		v = -v
	}
	scale := pow10[prec]
	n := uint64(math.Round(v * scale))
	whole, frac := n/uint64(scale), n%uint64(scale)

	var scratch [20]byte
	t.appendDigits(conv.AppendUint(scratch[:0], whole))
	t.AppendByte('.')
	t.appendDigits(conv.AppendPadded(scratch[:0], frac, prec))
}

func (t *Text) appendDigits(p []byte) {
	if t.err != nil {
		return
	}
	if t.n+len(p) > Capacity {
		t.err = &errcode.E{C: errcode.Capacity, Op: "render.text"}
		return
	}
	t.n += copy(t.buf[t.n:], p)
}

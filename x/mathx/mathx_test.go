package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(9, 1, 4); got != 4 {
		t.Fatalf("got %d", got)
	}
	if got := Clamp(-3, 4, 1); got != 1 {
		t.Fatalf("swapped bounds: got %d", got)
	}
	if got := Clamp(2.5, 0.0, 3.0); got != 2.5 {
		t.Fatalf("got %v", got)
	}
}

func TestSpan(t *testing.T) {
	lo, hi, ok := Span[int16](0, 240, 200, 260)
	if !ok || lo != 200 || hi != 240 {
		t.Fatalf("got %d %d %v", lo, hi, ok)
	}
	// Touching intervals share no point.
	if _, _, ok := Span[int16](0, 20, 20, 40); ok {
		t.Fatal("adjacent rows must not intersect")
	}
}

package conv

import (
	"math"
	"testing"
)

func TestAppendInt(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{1006, "1006"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, c := range cases {
		if got := string(AppendInt(nil, c.n)); got != c.want {
			t.Errorf("AppendInt(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendUintKeepsPrefix(t *testing.T) {
	got := string(AppendUint([]byte("GYRO "), 18446744073709551615))
	if got != "GYRO 18446744073709551615" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendPadded(t *testing.T) {
	if got := string(AppendPadded(nil, 7, 4)); got != "0007" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendPadded(nil, 12345, 2)); got != "12345" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendPadded(nil, 0, 0)); got != "0" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendHex8(t *testing.T) {
	if got := string(AppendHex8([]byte("addr "), 0x6A)); got != "addr 0x6A" {
		t.Fatalf("got %q", got)
	}
}

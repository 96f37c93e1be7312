// Package mathx holds the small ordered-value helpers used for screen
// geometry.
package mathx

import "golang.org/x/exp/constraints"

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Min(Max(v, lo), hi)
}

// Span intersects the half-open intervals [a0, a1) and [b0, b1). ok is false
// when they share no point.
func Span[T constraints.Integer](a0, a1, b0, b1 T) (lo, hi T, ok bool) {
	lo, hi = Max(a0, b0), Min(a1, b1)
	return lo, hi, lo < hi
}

package surface

import (
	"cluedash-go/errcode"
	"cluedash-go/x/mathx"
)

// Region is a fixed rectangle bound to one field.
type Region struct {
	Name       string
	X, Y, W, H int16
}

func (r Region) Contains(x, y int16) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Within reports whether r is non-empty and fits a w x h screen.
func (r Region) Within(w, h int16) bool {
	return r.W > 0 && r.H > 0 && r.X >= 0 && r.Y >= 0 && r.X+r.W <= w && r.Y+r.H <= h
}

func (r Region) Overlaps(o Region) bool {
	_, _, _, _, ok := r.intersect(o.X, o.Y, o.W, o.H)
	return ok
}

func (r Region) intersect(x, y, w, h int16) (ix, iy, iw, ih int16, ok bool) {
	x0, x1, okx := mathx.Span(r.X, r.X+r.W, x, x+w)
	y0, y1, oky := mathx.Span(r.Y, r.Y+r.H, y, y+h)
	if !okx || !oky {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

// Layout is the compile-time set of regions.
type Layout []Region

// Validate checks every region fits the screen and no two overlap.
func (l Layout) Validate(w, h int16) error {
	for i, r := range l {
		if !r.Within(w, h) {
			return &errcode.E{C: errcode.OutOfBounds, Op: "layout", Msg: r.Name}
		}
		for _, o := range l[i+1:] {
			if r.Overlaps(o) {
				return &errcode.E{C: errcode.Overlap, Op: "layout", Msg: r.Name + "/" + o.Name}
			}
		}
	}
	return nil
}

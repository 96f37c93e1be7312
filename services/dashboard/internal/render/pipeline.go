// Package render formats sensor readings and draws them into their regions.
package render

import (
	"cluedash-go/errcode"
	"cluedash-go/services/dashboard/internal/sensors"
	"cluedash-go/services/dashboard/internal/surface"

	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the 7x13-class monospace face used for every line.
var Font = &proggy.TinySZ8pt7b

// Pipeline dispatches readings to the fields bound to their kind.
type Pipeline struct {
	s      *surface.Surface
	fields []Field
	byKind map[sensors.Kind][]int
	lines  []Text
}

// New validates the layout against the surface and indexes fields by kind.
func New(s *surface.Surface, fields []Field) (*Pipeline, error) {
	layout := make(surface.Layout, len(fields))
	for i, f := range fields {
		layout[i] = f.Region
	}
	w, h := s.Size()
	if err := layout.Validate(w, h); err != nil {
		return nil, err
	}
	p := &Pipeline{
		s:      s,
		fields: fields,
		byKind: map[sensors.Kind][]int{},
		lines:  make([]Text, len(fields)),
	}
	for i, f := range fields {
		p.byKind[f.Kind] = append(p.byKind[f.Kind], i)
	}
	return p, nil
}

// Render formats r into every field of its kind, then redraws those regions.
// Formatting for all of them happens before the first redraw.
func (p *Pipeline) Render(r sensors.Reading) error {
	idx, ok := p.byKind[r.Kind()]
	if !ok {
		return &errcode.E{C: errcode.Unsupported, Op: "render", Msg: r.Kind().String()}
	}
	for _, i := range idx {
		if err := p.fields[i].Template.Format(&p.lines[i], r); err != nil {
			return &errcode.E{C: errcode.Capacity, Op: "render." + p.fields[i].Region.Name, Err: err}
		}
	}
	for _, i := range idx {
		if err := p.draw(i, r); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) draw(i int, r sensors.Reading) error {
	f := &p.fields[i]
	line := p.lines[i].String()
	fg := p.s.Foreground()
	reg := f.Region
	return p.s.Redraw(reg, func(c *surface.Canvas) error {
		x := reg.X + textInset
		if f.Swatch != nil {
			tinydraw.FilledCircle(c, reg.X+textInset+swatchR+1, reg.Y+swatchR+1, swatchR, f.Swatch(r))
			x += 2 * textInset
		}
		tinyfont.WriteLine(c, Font, x, reg.Y+textInset, line, fg)
		return nil
	})
}

// Line returns the text last rendered into the named region.
func (p *Pipeline) Line(name string) string {
	for i, f := range p.fields {
		if f.Region.Name == name {
			return p.lines[i].String()
		}
	}
	return ""
}

// Regions lists the field regions in layout order.
func (p *Pipeline) Regions() []surface.Region {
	out := make([]surface.Region, len(p.fields))
	for i, f := range p.fields {
		out[i] = f.Region
	}
	return out
}

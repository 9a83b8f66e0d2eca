package convert

import (
	"strings"

	"github.com/OpenTraceLab/orcad2kicad/pkg/rules"
)

// UserProp is a free-form symbol property
type UserProp = rules.Property

// Pad maps a pin position to the pad number printed on the pin
type Pad struct {
	Position string
	Number   string
}

// PhyPart is one physical gate of a package
type PhyPart struct {
	Name string
	Pads []Pad // Source order
}

// Pad returns the pad number for a pin position
func (pp *PhyPart) Pad(position string) (string, bool) {
	if pp == nil {
		return "", false
	}
	for _, p := range pp.Pads {
		if p.Position == position {
			return p.Number, true
		}
	}
	return "", false
}

// DisplayProp is a SymbolDisplayProp: an on-canvas anchor for the
// reference or value text
type DisplayProp struct {
	Name   string
	LocX   int
	LocY   int
	Italic bool
	Bold   bool
}

func (dp DisplayProp) X() float64 { return ToX(dp.LocX) }
func (dp DisplayProp) Y() float64 { return ToY(dp.LocY) }

// BBox is a raw OrCAD bounding box, Y growing downwards
type BBox struct {
	X1, Y1, X2, Y2 int
}

func (bb *BBox) include(x, y int, first bool) {
	if first {
		*bb = BBox{X1: x, Y1: y, X2: x, Y2: y}
		return
	}
	bb.X1 = min(bb.X1, x)
	bb.Y1 = min(bb.Y1, y)
	bb.X2 = max(bb.X2, x)
	bb.Y2 = max(bb.Y2, y)
}

// LibPart is one drawn body (gate variant) of a symbol
type LibPart struct {
	Name string

	Pins     []*Pin
	Rects    []*Rectangle
	Lines    []*Line
	Texts    []*Text
	Polygons []*Polygon
	Arcs     []*Arc
	Ellipses []*Ellipse

	BBox         BBox
	DisplayProps []DisplayProp
	UserProps    []UserProp
	Value        string

	PinNumbersVisible bool
	PinNamesVisible   bool
}

// PinByPosition returns the pin with the given position
func (lp *LibPart) PinByPosition(position string) (*Pin, bool) {
	for _, p := range lp.Pins {
		if p.Position == position {
			return p, true
		}
	}
	return nil, false
}

// computeBBox derives the bounding box from every primitive and pin
func (lp *LibPart) computeBBox() BBox {
	var bb BBox
	first := true
	add := func(x, y int) {
		bb.include(x, y, first)
		first = false
	}

	for _, p := range lp.Pins {
		add(p.HotX, p.HotY)
		add(p.StartX, p.StartY)
	}
	for _, r := range lp.Rects {
		add(r.X1, r.Y1)
		add(r.X2, r.Y2)
	}
	for _, l := range lp.Lines {
		add(l.X1, l.Y1)
		add(l.X2, l.Y2)
	}
	for _, p := range lp.Polygons {
		for _, v := range p.raw {
			add(v[0], v[1])
		}
	}
	for _, a := range lp.Arcs {
		add(a.X1, a.Y1)
		add(a.X2, a.Y2)
	}
	for _, e := range lp.Ellipses {
		add(e.X1, e.Y1)
		add(e.X2, e.Y2)
	}
	for _, t := range lp.Texts {
		add(t.LocX, t.LocY)
	}

	return bb
}

var nameReplacer = strings.NewReplacer(" ", "_", "/", "_", "\t", "")

// SanitizeName makes an OrCAD package name usable as a KiCad symbol name
func SanitizeName(name string) string {
	return nameReplacer.Replace(name)
}

// Symbol is one OrCAD package: a logical part with one or more LibPart
// variants and the physical gates that place them
type Symbol struct {
	Name        string // Sanitized
	RefDes      string
	Footprint   string
	Homogeneous bool
	Parts       []*LibPart
	PhyParts    []*PhyPart
}

// Locked reports whether the units must not be swapped freely
func (s *Symbol) Locked() bool {
	return !s.Homogeneous && len(s.Parts) > 1
}

// Units returns the number of KiCad units to draw
func (s *Symbol) Units() int {
	return max(1, len(s.PhyParts))
}

// UnitPart returns the body and gate drawn as unit i (0-based). Packages
// with a single body reuse it for every gate.
func (s *Symbol) UnitPart(i int) (*LibPart, *PhyPart) {
	var lp *LibPart
	switch {
	case i < len(s.Parts):
		lp = s.Parts[i]
	case len(s.Parts) > 0:
		lp = s.Parts[0]
	}

	var pp *PhyPart
	if i < len(s.PhyParts) {
		pp = s.PhyParts[i]
	}
	return lp, pp
}

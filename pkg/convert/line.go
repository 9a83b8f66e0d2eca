package convert

import (
	"bytes"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Line is a straight segment, drawn as a two-point polyline
type Line struct {
	X1, Y1, X2, Y2 int
}

// NewLine reads a Line node
func NewLine(n *orcad.Node) (*Line, error) {
	v, err := n.Ints("x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	return &Line{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// Points returns the rounded end points
func (l *Line) Points() []sexp.Position {
	return []sexp.Position{
		{X: round2(ToX(l.X1)), Y: round2(ToY(l.Y1))},
		{X: round2(ToX(l.X2)), Y: round2(ToY(l.Y2))},
	}
}

func (l *Line) Draw(b *bytes.Buffer) {
	drawPolyline(b, l.Points(), FillNone)
}

// drawPolyline writes a polyline with one (xy) per point
func drawPolyline(b *bytes.Buffer, pts []sexp.Position, fill Fill) {
	b.WriteString("      (polyline\n")
	b.WriteString("      (pts\n")
	for _, p := range pts {
		b.WriteString("        (xy " + num(p.X) + " " + num(p.Y) + ")\n")
	}
	b.WriteString("      )\n")
	b.WriteString("      " + strokeFill(fill) + "\n")
	b.WriteString("      )\n")
}

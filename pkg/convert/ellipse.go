package convert

import (
	"bytes"
	"fmt"
	"math"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Ellipse is the ellipse inscribed in a bounding box
type Ellipse struct {
	X1, Y1, X2, Y2 int
	Fill           Fill
}

// NewEllipse reads an Ellipse node
func NewEllipse(n *orcad.Node) (*Ellipse, error) {
	v, err := n.Ints("x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	style, err := n.Attr("fillStyle")
	if err != nil {
		return nil, err
	}
	return &Ellipse{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], Fill: rectFill(style)}, nil
}

// IsCircle reports whether both radii are equal
func (e *Ellipse) IsCircle() bool {
	_, _, rx, ry := ellipseFrame(e.X1, e.Y1, e.X2, e.Y2)
	return rx == ry
}

// Points returns the tessellated outline: Steps points over a full turn
// followed by a closing point at angle 0
func (e *Ellipse) Points() []sexp.Position {
	cx, cy, rx, ry := ellipseFrame(e.X1, e.Y1, e.X2, e.Y2)
	pts := sweep(cx, cy, rx, ry, 0, 2*math.Pi)
	return append(pts, sexp.Position{X: cx + rx, Y: cy})
}

// Draw writes a native circle when the radii match, a closed polyline
// otherwise. Circles are never filled.
func (e *Ellipse) Draw(b *bytes.Buffer) {
	cx, cy, rx, ry := ellipseFrame(e.X1, e.Y1, e.X2, e.Y2)
	if rx == ry {
		fmt.Fprintf(b, "      (circle (center %s %s) (radius %s) %s)\n",
			num(cx), num(cy), num(rx), strokeFill(FillNone))
		return
	}
	drawPolyline(b, e.Points(), e.Fill)
}

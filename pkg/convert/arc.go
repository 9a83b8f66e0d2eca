package convert

import (
	"bytes"
	"math"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Arc is an elliptical arc given by its bounding box and literal start and
// end points
type Arc struct {
	X1, Y1, X2, Y2 int
	StartX, StartY int
	EndX, EndY     int
}

// NewArc reads an Arc node
func NewArc(n *orcad.Node) (*Arc, error) {
	v, err := n.Ints("x1", "y1", "x2", "y2", "startX", "startY", "endX", "endY")
	if err != nil {
		return nil, err
	}
	return &Arc{
		X1: v[0], Y1: v[1], X2: v[2], Y2: v[3],
		StartX: v[4], StartY: v[5],
		EndX: v[6], EndY: v[7],
	}, nil
}

// Angles returns the normalized start and end angles in radians
func (a *Arc) Angles() (start, end float64) {
	cx, cy, _, _ := ellipseFrame(a.X1, a.Y1, a.X2, a.Y2)
	start = math.Atan2(ToY(a.StartY)-cy, ToX(a.StartX)-cx)
	end = math.Atan2(ToY(a.EndY)-cy, ToX(a.EndX)-cx)
	return normalizeSweep(start, end)
}

// Points returns the tessellated arc. The last point is always the
// literal end point.
func (a *Arc) Points() []sexp.Position {
	cx, cy, rx, ry := ellipseFrame(a.X1, a.Y1, a.X2, a.Y2)
	start, end := a.Angles()

	pts := sweep(cx, cy, rx, ry, start, end)
	return append(pts, sexp.Position{X: ToX(a.EndX), Y: ToY(a.EndY)})
}

func (a *Arc) Draw(b *bytes.Buffer) {
	drawPolyline(b, a.Points(), FillNone)
}

package convert

import (
	"bytes"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Polygon is an open or closed polyline. OrCAD stores its vertices as
// PolylinePoint or PolygonPoint children; both are merged, polyline
// points first.
type Polygon struct {
	Vertices []sexp.Position // Converted and rounded
	Fill     Fill

	raw [][2]int
}

// NewPolygon reads a Polygon or Polyline node
func NewPolygon(n *orcad.Node) (*Polygon, error) {
	style, present := n.Lookup("fillStyle")
	p := &Polygon{Fill: polygonFill(style, present)}

	points := append(n.ChildrenNamed("PolylinePoint"), n.ChildrenNamed("PolygonPoint")...)
	for _, pt := range points {
		v, err := pt.Ints("x", "y")
		if err != nil {
			return nil, err
		}
		p.raw = append(p.raw, [2]int{v[0], v[1]})
		p.Vertices = append(p.Vertices, sexp.Position{
			X: round2(ToX(v[0])),
			Y: round2(ToY(v[1])),
		})
	}

	return p, nil
}

func (p *Polygon) Draw(b *bytes.Buffer) {
	drawPolyline(b, p.Vertices, p.Fill)
}

package convert

import (
	"bytes"
	"fmt"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Rectangle is an opposite-corner box
type Rectangle struct {
	X1, Y1, X2, Y2 int
	Fill           Fill
}

// NewRectangle reads a Rect node
func NewRectangle(n *orcad.Node) (*Rectangle, error) {
	v, err := n.Ints("x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	style, err := n.Attr("fillStyle")
	if err != nil {
		return nil, err
	}
	return &Rectangle{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3], Fill: rectFill(style)}, nil
}

func (r *Rectangle) Draw(b *bytes.Buffer) {
	fmt.Fprintf(b, "      (rectangle (start %s %s) (end %s %s)\n",
		num(round2(ToX(r.X1))), num(round2(ToY(r.Y1))),
		num(round2(ToX(r.X2))), num(round2(ToY(r.Y2))))
	b.WriteString("      " + strokeFill(r.Fill) + "\n")
	b.WriteString("      )\n")
}

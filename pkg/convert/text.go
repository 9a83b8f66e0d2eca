package convert

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Text escapements, in tenths of a degree
const (
	Escapement0   = 0
	Escapement90  = 900
	Escapement180 = 1800
	Escapement270 = 2700
)

// Text is a CommentText. Multi-line text is drawn as one text item per
// line, stacked along the writing direction.
type Text struct {
	LocX, LocY int
	Name       string
	Escapement int
	HeightRaw  int
	Italic     bool
}

// NewText reads a CommentText node
func NewText(n *orcad.Node) (*Text, error) {
	t := &Text{}

	v, err := n.Ints("locX", "locY")
	if err != nil {
		return nil, err
	}
	t.LocX, t.LocY = v[0], v[1]

	if t.Name, err = n.Attr("name"); err != nil {
		return nil, err
	}

	font, ok := n.Child("TextFont")
	if !ok {
		return nil, &orcad.AttrError{Node: n.Name, Attr: "TextFont", Err: orcad.ErrMissingAttribute}
	}
	f, err := font.Ints("escapement", "height")
	if err != nil {
		return nil, err
	}
	t.Escapement, t.HeightRaw = f[0], f[1]

	italic, err := font.Attr("italic")
	if err != nil {
		return nil, err
	}
	t.Italic = italic == "1"

	return t, nil
}

// Height returns the KiCad font size. OrCAD stores heights negated.
func (t *Text) Height() float64 {
	return -(float64(t.HeightRaw) * FontScale)
}

// Lines splits the text on line breaks. A trailing line break does not
// start a new line.
func (t *Text) Lines() []string {
	if t.Name == "" {
		return nil
	}
	s := strings.ReplaceAll(t.Name, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

func (t *Text) justify() string {
	switch t.Escapement {
	case Escapement180:
		return "(justify right bottom)"
	case Escapement90:
		return "(justify right)"
	default:
		return "(justify left top)"
	}
}

func (t *Text) Draw(b *bytes.Buffer) {
	x := round2(ToX(t.LocX))
	y := round2(ToY(t.LocY))
	h := t.Height()
	advance := 2 * math.Abs(h)

	font := fmt.Sprintf("(size %s %s)", num(h), num(h))
	if t.Italic {
		font += " italic"
	}

	for _, line := range t.Lines() {
		fmt.Fprintf(b, "      (text %s (at %s %s %d)\n",
			quote(line), num(round2(x)), num(round2(y)), t.Escapement)
		fmt.Fprintf(b, "        (effects (font %s) %s)\n", font, t.justify())
		b.WriteString("      )\n")

		switch t.Escapement {
		case Escapement0:
			y -= advance
		case Escapement90:
			x += advance
		case Escapement180:
			y += advance
		case Escapement270:
			x -= advance
		}
	}
}

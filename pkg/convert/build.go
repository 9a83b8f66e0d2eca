package convert

import (
	"fmt"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
	"github.com/OpenTraceLab/orcad2kicad/pkg/rules"
)

// SymbolFromPackage reads a Package node with its LibPart and
// PhysicalPart children
func SymbolFromPackage(pkg *orcad.Node) (*Symbol, error) {
	name, err := pkg.Attr("name")
	if err != nil {
		return nil, err
	}

	s := &Symbol{Name: SanitizeName(name)}
	s.RefDes, _ = pkg.Lookup("refDesPrefix")
	s.Footprint, _ = pkg.Lookup("pcbFootprint")
	homo, _ := pkg.Lookup("isHomogeneous")
	s.Homogeneous = homo == "1"

	for i, n := range pkg.ChildrenNamed("LibPart") {
		lp, err := LibPartFromNode(n)
		if err != nil {
			return nil, &SymbolError{Symbol: s.Name, Err: fmt.Errorf("libpart %d: %w", i, err)}
		}
		s.Parts = append(s.Parts, lp)
	}
	if len(s.Parts) == 0 {
		return nil, &SymbolError{
			Symbol: s.Name,
			Err:    &orcad.AttrError{Node: pkg.Name, Attr: "LibPart", Err: orcad.ErrMissingAttribute},
		}
	}

	for i, n := range pkg.ChildrenNamed("PhysicalPart") {
		pp, err := PhyPartFromNode(n)
		if err != nil {
			return nil, &SymbolError{Symbol: s.Name, Err: fmt.Errorf("physical part %d: %w", i, err)}
		}
		s.PhyParts = append(s.PhyParts, pp)
	}

	return s, nil
}

// PhyPartFromNode reads a PhysicalPart node
func PhyPartFromNode(n *orcad.Node) (*PhyPart, error) {
	pp := &PhyPart{}
	pp.Name, _ = n.Lookup("name")

	for _, pn := range n.ChildrenNamed("PinNumber") {
		pos, err := pn.Attr("position")
		if err != nil {
			return nil, err
		}
		number, err := pn.Attr("number")
		if err != nil {
			return nil, err
		}
		pp.Pads = append(pp.Pads, Pad{Position: pos, Number: number})
	}

	return pp, nil
}

// LibPartFromNode reads a LibPart node. The primitives may sit directly
// below the LibPart or inside a NormalView element.
func LibPartFromNode(n *orcad.Node) (*LibPart, error) {
	lp := &LibPart{
		PinNumbersVisible: true,
		PinNamesVisible:   true,
	}
	lp.Name, _ = n.Lookup("name")

	body := n
	if nv, ok := n.Child("NormalView"); ok {
		body = nv
	}

	hasBBox := false
	for _, c := range body.Children {
		if err := lp.add(c, &hasBBox); err != nil {
			return nil, err
		}
	}

	if !hasBBox {
		lp.BBox = lp.computeBBox()
	}

	return lp, nil
}

// add reads one child of a LibPart body
func (lp *LibPart) add(c *orcad.Node, hasBBox *bool) error {
	wrap := func(kind string, index int, err error) error {
		return &PrimitiveError{Kind: kind, Index: index, Err: err}
	}

	switch c.Name {
	case "SymbolPinScalar":
		p, err := NewPin(c)
		if err != nil {
			return wrap("pin", len(lp.Pins), err)
		}
		lp.Pins = append(lp.Pins, p)

	case "Rect":
		r, err := NewRectangle(c)
		if err != nil {
			return wrap("rectangle", len(lp.Rects), err)
		}
		lp.Rects = append(lp.Rects, r)

	case "Line":
		l, err := NewLine(c)
		if err != nil {
			return wrap("line", len(lp.Lines), err)
		}
		lp.Lines = append(lp.Lines, l)

	case "Polygon", "Polyline":
		p, err := NewPolygon(c)
		if err != nil {
			return wrap("polygon", len(lp.Polygons), err)
		}
		lp.Polygons = append(lp.Polygons, p)

	case "Arc":
		a, err := NewArc(c)
		if err != nil {
			return wrap("arc", len(lp.Arcs), err)
		}
		lp.Arcs = append(lp.Arcs, a)

	case "Ellipse":
		e, err := NewEllipse(c)
		if err != nil {
			return wrap("ellipse", len(lp.Ellipses), err)
		}
		lp.Ellipses = append(lp.Ellipses, e)

	case "CommentText":
		t, err := NewText(c)
		if err != nil {
			return wrap("text", len(lp.Texts), err)
		}
		lp.Texts = append(lp.Texts, t)

	case "SymbolDisplayProp":
		dp, err := newDisplayProp(c)
		if err != nil {
			return wrap("display property", len(lp.DisplayProps), err)
		}
		lp.DisplayProps = append(lp.DisplayProps, dp)

	case "SymbolUserProp":
		name, err := c.Attr("name")
		if err != nil {
			return wrap("user property", len(lp.UserProps), err)
		}
		val, _ := c.Lookup("val")
		if name == "Value" {
			lp.Value = val
			return nil
		}
		if rules.IsReserved(name) {
			Logger().Warn("ignoring user property with a reserved name", "property", name)
			return nil
		}
		lp.UserProps = append(lp.UserProps, UserProp{Name: name, Value: val})

	case "SymbolBBox":
		v, err := c.Ints("x1", "y1", "x2", "y2")
		if err != nil {
			return wrap("bounding box", 0, err)
		}
		lp.BBox = BBox{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
		*hasBBox = true

	case "IsPinNumbersVisible":
		val, err := c.Attr("val")
		if err != nil {
			return err
		}
		lp.PinNumbersVisible = val == "1"

	case "IsPinNamesVisible":
		val, err := c.Attr("val")
		if err != nil {
			return err
		}
		lp.PinNamesVisible = val == "1"
	}

	return nil
}

// newDisplayProp reads a SymbolDisplayProp. PropFont is optional.
func newDisplayProp(n *orcad.Node) (DisplayProp, error) {
	dp := DisplayProp{}

	v, err := n.Ints("locX", "locY")
	if err != nil {
		return dp, err
	}
	dp.LocX, dp.LocY = v[0], v[1]
	dp.Name, _ = n.Lookup("name")

	if font, ok := n.Child("PropFont"); ok {
		italic, _ := font.Lookup("italic")
		dp.Italic = italic == "1"
		if _, ok := font.Lookup("weight"); ok {
			weight, err := font.Int("weight")
			if err != nil {
				return dp, err
			}
			dp.Bold = weight > 400
		}
	}

	return dp, nil
}

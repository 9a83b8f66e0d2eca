package convert

// Fill is the KiCad fill type of a closed graphic
type Fill int

const (
	FillNone Fill = iota
	FillOutline
)

func (f Fill) String() string {
	if f == FillOutline {
		return "outline"
	}
	return "none"
}

// rectFill maps the fillStyle flag of rectangles and ellipses: "1" means
// no fill.
func rectFill(style string) Fill {
	if style == "1" {
		return FillNone
	}
	return FillOutline
}

// polygonFill maps the optional fillStyle flag of polygons. The flag has
// the opposite sense to rectFill: "1" means outline.
func polygonFill(style string, present bool) Fill {
	if present && style == "1" {
		return FillOutline
	}
	return FillNone
}

// strokeFill returns the stroke and fill sub-blocks of a graphic
func strokeFill(f Fill) string {
	return "(stroke (width " + StrokeWidth + ")) (fill (type " + f.String() + "))"
}

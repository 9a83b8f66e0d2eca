package convert

import (
	"bytes"
	"fmt"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// Fixed KiCad property ids
const (
	IDReference = 0
	IDValue     = 1
	IDFootprint = 2
	IDDatasheet = 3
	IDPartValue = 4
	IDUserBase  = 5
)

// ValueOffset is how far below the body the hidden Value field is placed
const ValueOffset = 10.0

// PlaceProperties writes the symbol's fields, laid out from the first
// variant: Reference, PartValue, Value, Footprint, Datasheet, the user
// properties and, for locked symbols, ki_locked.
func PlaceProperties(b *bytes.Buffer, s *Symbol, opts Options) error {
	if len(s.Parts) == 0 {
		return &orcad.AttrError{Node: "Package", Attr: "LibPart", Err: orcad.ErrMissingAttribute}
	}
	lp := s.Parts[0]
	h, w := opts.TextSize, opts.TextSize

	if len(lp.DisplayProps) == 0 {
		return &orcad.AttrError{Node: "LibPart", Attr: "SymbolDisplayProp", Err: orcad.ErrMissingAttribute}
	}
	ref := lp.DisplayProps[0]
	writeProperty(b, "Reference", s.RefDes, IDReference, ref.X(), ref.Y(),
		fontEffects(h, w, ref.Italic, ref.Bold)+" (justify left)")

	// bottom-left of the body
	bx := ToX(lp.BBox.X1)
	by := ToY(lp.BBox.Y2)

	var pvX, pvY float64
	pvItalic, pvBold := false, false
	if len(lp.DisplayProps) > 1 {
		dp := lp.DisplayProps[1]
		pvX, pvY = dp.X(), dp.Y()-2
		pvItalic, pvBold = dp.Italic, dp.Bold
	} else {
		pvX, pvY = bx, by
	}
	value := lp.Value
	if value == "" {
		value = s.Name
	}
	writeProperty(b, "PartValue", value, IDPartValue, pvX, pvY,
		fontEffects(h, w, pvItalic, pvBold)+" (justify left)")

	x, y := bx, by-ValueOffset
	writeProperty(b, "Value", s.Name, IDValue, x, y,
		fontEffects(h, w, false, false)+" (justify left) hide")

	y = y - h - 1
	writeProperty(b, "Footprint", s.Footprint, IDFootprint, x, y,
		fontEffects(h, w, false, false)+" (justify left) hide")

	writeProperty(b, "Datasheet", "", IDDatasheet, 0, 0,
		fontEffects(0, 0, false, false)+" hide")

	user := opts.Rules.Apply(lp.UserProps)
	y = y - h - 1
	for i, p := range user {
		writeProperty(b, p.Name, p.Value, IDUserBase+i, x, y,
			fontEffects(h, w, false, false)+" (justify left) hide")
		y = y - h - 1
	}

	if s.Locked() {
		writeProperty(b, "ki_locked", "", IDUserBase+len(user), 0, 0,
			fontEffects(1.27, 1.27, false, false))
	}

	return nil
}

func fontEffects(h, w float64, italic, bold bool) string {
	font := fmt.Sprintf("(font (size %s %s)", num(h), num(w))
	if italic {
		font += " italic"
	}
	if bold {
		font += " bold"
	}
	return font + ")"
}

func writeProperty(b *bytes.Buffer, key, value string, id int, x, y float64, effects string) {
	fmt.Fprintf(b, "    (property %s %s (id %d) (at %s %s 0)\n", quote(key), quote(value), id, num(x), num(y))
	fmt.Fprintf(b, "      (effects %s)\n", effects)
	b.WriteString("    )\n")
}

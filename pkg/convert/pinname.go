package convert

import "strings"

// OverlineMarker toggles overlining in KiCad 6 pin names
const OverlineMarker = '~'

// DecodePinName converts OrCAD overline markup to KiCad markup.
//
// OrCAD marks a negated character by following it with a backslash, as in
// `R\S\T\`. Backslashes are dropped. A character followed by a backslash
// opens an overline run if none is open; a character followed by anything
// else closes an open run before itself. The last character has nothing
// after it and never toggles, so a run that reaches the end of the name
// is left open.
func DecodePinName(raw string) string {
	r := []rune(raw)

	var b strings.Builder
	inverted := false
	skip := false

	for i, c := range r {
		if skip {
			skip = false
			continue
		}
		if c == '\\' {
			continue
		}

		if i < len(r)-1 {
			if r[i+1] == '\\' {
				skip = true
				if !inverted {
					b.WriteRune(OverlineMarker)
					inverted = true
				}
			} else if inverted {
				inverted = false
				b.WriteRune(OverlineMarker)
			}
		}

		b.WriteRune(c)
	}

	return b.String()
}

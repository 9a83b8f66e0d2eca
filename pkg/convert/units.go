package convert

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Scale converts OrCAD grid units to KiCad millimetres
	Scale = 0.254

	// FontScale converts OrCAD font heights to KiCad text sizes
	FontScale = 0.127

	// StrokeWidth is written verbatim on every graphic
	StrokeWidth = "0.0006"

	// Steps is the number of segments used to tessellate curves
	Steps = 40
)

// ToX converts a raw X coordinate
func ToX(raw int) float64 {
	return float64(raw) * Scale
}

// ToY converts a raw Y coordinate. OrCAD's Y axis points down.
func ToY(raw int) float64 {
	return float64(-raw) * Scale
}

// round2 rounds half away from zero to two decimals
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// num formats v in its shortest decimal form, never as "-0"
func num(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote wraps s in double quotes, escaping backslashes and quotes
func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

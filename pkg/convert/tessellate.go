package convert

import (
	"math"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
)

// ellipseFrame returns the centre and radii of the ellipse inscribed in
// the raw box (x1,y1)-(x2,y2), in converted coordinates
func ellipseFrame(x1, y1, x2, y2 int) (cx, cy, rx, ry float64) {
	fx1, fy1 := ToX(x1), ToY(y1)
	fx2, fy2 := ToX(x2), ToY(y2)

	rx = math.Abs((fx2 - fx1) / 2.0)
	ry = math.Abs((fy2 - fy1) / 2.0)
	cx = (fx1 + fx2) / 2.0
	cy = (fy1 + fy2) / 2.0
	return cx, cy, rx, ry
}

// sweep samples the ellipse at Steps equal angle steps from start towards
// end, excluding end. A zero sweep yields no points.
func sweep(cx, cy, rx, ry, start, end float64) []sexp.Position {
	step := math.Abs(end-start) / Steps
	if step == 0 {
		return nil
	}

	pts := make([]sexp.Position, 0, Steps)
	for i := 0; i < Steps; i++ {
		a := start + float64(i)*step
		pts = append(pts, sexp.Position{
			X: cx + rx*math.Cos(a),
			Y: cy + ry*math.Sin(a),
		})
	}
	return pts
}

// normalizeSweep maps atan2 angles so the sweep runs counter-clockwise
// from start to end. An end angle of exactly 0 becomes 2π.
func normalizeSweep(start, end float64) (float64, float64) {
	if end <= 0 {
		end += 2 * math.Pi
	}
	if start < 0 {
		start += 2 * math.Pi
	}
	if end < start {
		end += 2 * math.Pi
	}
	return start, end
}

package convert

import (
	"bytes"
	"fmt"
	"math"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// PinType is the KiCad electrical type of a pin
type PinType int

// OrCAD pin type codes, in code order
const (
	PinInput PinType = iota
	PinBidirectional
	PinOutput
	PinOpenCollector
	PinPassive
	PinTriState
	PinOpenEmitter // emitted as open_collector
	PinPower
	PinUnspecified
)

var pinTypeNames = [...]string{
	PinInput:         "input",
	PinBidirectional: "bidirectional",
	PinOutput:        "output",
	PinOpenCollector: "open_collector",
	PinPassive:       "passive",
	PinTriState:      "tri_state",
	PinOpenEmitter:   "open_collector",
	PinPower:         "power_in",
	PinUnspecified:   "unspecified",
}

func (t PinType) String() string {
	if t < 0 || int(t) >= len(pinTypeNames) {
		return fmt.Sprintf("PinType(%d)", int(t))
	}
	return pinTypeNames[t]
}

// PinShape is the KiCad graphic style of a pin
type PinShape int

const (
	ShapeLine PinShape = iota
	ShapeInverted
	ShapeClock
	ShapeInvertedClock
)

func (s PinShape) String() string {
	switch s {
	case ShapeInverted:
		return "inverted"
	case ShapeClock:
		return "clock"
	case ShapeInvertedClock:
		return "inverted_clock"
	default:
		return "line"
	}
}

// ShapeOf derives the pin shape from the clock and dot flags
func ShapeOf(clock, dot bool) PinShape {
	switch {
	case clock && dot:
		return ShapeInvertedClock
	case dot:
		return ShapeInverted
	case clock:
		return ShapeClock
	default:
		return ShapeLine
	}
}

// Pin is a SymbolPinScalar. The hotpoint is the electrical end of the
// pin, the start point is where it meets the body.
type Pin struct {
	Position string // Identity within the part, keys the pad mapping
	RawName  string
	Code     PinType
	HotX     int
	HotY     int
	StartX   int
	StartY   int
	Clock    bool
	Dot      bool
}

// NewPin reads a SymbolPinScalar node
func NewPin(n *orcad.Node) (*Pin, error) {
	p := &Pin{}
	var err error

	if p.Position, err = n.Attr("position"); err != nil {
		return nil, err
	}
	if p.RawName, err = n.Attr("name"); err != nil {
		return nil, err
	}

	code, err := n.Int("type")
	if err != nil {
		return nil, err
	}
	if code < 0 || code >= len(pinTypeNames) {
		return nil, fmt.Errorf("pin type %d: %w", code, ErrOutOfRange)
	}
	p.Code = PinType(code)

	v, err := n.Ints("hotptX", "hotptY", "startX", "startY")
	if err != nil {
		return nil, err
	}
	p.HotX, p.HotY, p.StartX, p.StartY = v[0], v[1], v[2], v[3]

	if p.Clock, err = n.Flag("IsClock"); err != nil {
		return nil, err
	}
	if p.Dot, err = n.Flag("IsDot"); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pin) X1() float64 { return ToX(p.HotX) }
func (p *Pin) Y1() float64 { return ToY(p.HotY) }
func (p *Pin) X2() float64 { return ToX(p.StartX) }
func (p *Pin) Y2() float64 { return ToY(p.StartY) }

// Type returns the KiCad electrical type
func (p *Pin) Type() PinType { return p.Code }

// Shape returns the KiCad pin style
func (p *Pin) Shape() PinShape { return ShapeOf(p.Clock, p.Dot) }

// Name returns the decoded pin name
func (p *Pin) Name() string { return DecodePinName(p.RawName) }

// Length is the distance along whichever axis the pin runs on, 0 for a
// degenerate pin
func (p *Pin) Length() float64 {
	if p.X1()-p.X2() != 0 {
		return round2(math.Abs(p.X2() - p.X1()))
	}
	if p.Y1()-p.Y2() != 0 {
		return round2(math.Abs(p.Y2() - p.Y1()))
	}
	return 0
}

// Angle is the direction from the hotpoint towards the body
func (p *Pin) Angle() int {
	dx := p.X1() - p.X2()
	dy := p.Y1() - p.Y2()
	switch {
	case dx > 0:
		return 180
	case dx < 0:
		return 0
	case dy > 0:
		return 270
	case dy < 0:
		return 90
	}
	return 0
}

// Draw writes the pin with the given pad number
func (p *Pin) Draw(b *bytes.Buffer, number string, opts Options) {
	fmt.Fprintf(b, "      (pin %s %s (at %s %s %d) (length %s)\n",
		p.Type(), p.Shape(), num(p.X1()), num(p.Y1()), p.Angle(), num(p.Length()))
	fmt.Fprintf(b, "        (name %s (effects (font (size %s %s))))\n",
		quote(p.Name()), num(opts.PinNameSize), num(opts.PinNameSize))
	fmt.Fprintf(b, "        (number %s (effects (font (size %s %s))))\n",
		quote(number), num(opts.PinNumberSize), num(opts.PinNumberSize))
	b.WriteString("      )\n")
}

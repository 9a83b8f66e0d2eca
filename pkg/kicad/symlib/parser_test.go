package symlib

import (
	"strings"
	"testing"
)

const nandLibrary = `(kicad_symbol_lib (version 20211014) (generator orcad2kicad)
  (symbol "7400" (pin_names hide) (in_bom yes) (on_board yes)
    (property "Reference" "U" (id 0) (at -5.08 7.62 0)
      (effects (font (size 1.27 1.27)) (justify left)))
    (property "Value" "7400" (id 1) (at -5.08 -12.7 0)
      (effects (font (size 1.27 1.27)) (justify left) hide))
    (property "ki_locked" "" (id 5) (at 0 0 0)
      (effects (font (size 1.27 1.27))))
    (symbol "7400_1_1"
      (rectangle (start -5.08 5.08) (end 5.08 -5.08)
      (stroke (width 0.0006)) (fill (type outline))
      )
      (circle (center 0 0) (radius 1.27) (stroke (width 0.0006)) (fill (type none)))
      (text "&" (at 0 0 0)
        (effects (font (size 1.27 1.27) italic) (justify left top))
      )
      (pin input line (at -7.62 2.54 0) (length 2.54)
        (name "A" (effects (font (size 1.7 1.7))))
        (number "1" (effects (font (size 1.5 1.5))))
      )
      (pin output inverted_clock (at 7.62 0 180) (length 2.54)
        (name "~Y~" (effects (font (size 1.7 1.7))))
        (number "3" (effects (font (size 1.5 1.5))))
      )
    )
    (symbol "7400_2_1"
      (polyline
      (pts
        (xy 0 0)
        (xy 2.54 2.54)
      )
      (stroke (width 0.0006)) (fill (type none))
      )
    )
  )
)`

func TestParseSymbolLibrary(t *testing.T) {
	lib, err := Parse(strings.NewReader(nandLibrary))
	if err != nil {
		t.Fatalf("Failed to parse library: %v", err)
	}

	if lib.Version != 20211014 {
		t.Errorf("Expected version 20211014, got %d", lib.Version)
	}
	if lib.Generator != "orcad2kicad" {
		t.Errorf("Expected generator 'orcad2kicad', got '%s'", lib.Generator)
	}
	if len(lib.Symbols) != 1 {
		t.Fatalf("Expected 1 symbol, got %d", len(lib.Symbols))
	}

	sym := lib.GetSymbol("7400")
	if sym == nil {
		t.Fatal("Symbol 7400 not found")
	}
	if sym.PinNames {
		t.Error("Expected pin names hidden")
	}
	if !sym.PinNumbers {
		t.Error("Expected pin numbers visible")
	}
	if len(sym.Properties) != 3 {
		t.Errorf("Expected 3 properties, got %d", len(sym.Properties))
	}

	ref, ok := sym.Property("Reference")
	if !ok || ref.Value != "U" || ref.ID != 0 {
		t.Errorf("Unexpected Reference property %+v", ref)
	}
	value, _ := sym.Property("Value")
	if !value.Effects.Hide {
		t.Error("Expected Value to be hidden")
	}

	if len(sym.Units) != 2 {
		t.Fatalf("Expected 2 units, got %d", len(sym.Units))
	}
	if sym.Units[0].Name != "7400_1_1" {
		t.Errorf("Expected unit name '7400_1_1', got '%s'", sym.Units[0].Name)
	}

	if len(sym.Pins) != 2 {
		t.Fatalf("Expected 2 pins, got %d", len(sym.Pins))
	}
	out := sym.Pins[1]
	if out.Type != "output" || out.Style != "inverted_clock" {
		t.Errorf("Unexpected pin type/style %s/%s", out.Type, out.Style)
	}
	if out.Angle != 180 || out.Length != 2.54 {
		t.Errorf("Unexpected pin angle/length %v/%v", out.Angle, out.Length)
	}
	if out.Name.Name != "~Y~" || out.Number.Number != "3" {
		t.Errorf("Unexpected pin name/number %q/%q", out.Name.Name, out.Number.Number)
	}
	if out.Number.Effects.Font.Size.Height != 1.5 {
		t.Errorf("Expected number font 1.5, got %v", out.Number.Effects.Font.Size.Height)
	}
}

func TestParseGraphicsInFileOrder(t *testing.T) {
	lib, err := Parse(strings.NewReader(nandLibrary))
	if err != nil {
		t.Fatalf("Failed to parse library: %v", err)
	}

	unit := lib.Symbols[0].Units[0]
	want := []string{"rectangle", "circle", "text"}
	if len(unit.Graphics) != len(want) {
		t.Fatalf("Expected %d graphics, got %d", len(want), len(unit.Graphics))
	}
	for i, g := range unit.Graphics {
		if g.Type != want[i] {
			t.Errorf("Graphic %d: expected %s, got %s", i, want[i], g.Type)
		}
	}

	rect := unit.Graphics[0]
	if rect.Fill.Type != "outline" || rect.Stroke.Width != 0.0006 {
		t.Errorf("Unexpected rectangle style %+v %+v", rect.Fill, rect.Stroke)
	}

	text := unit.Graphics[2]
	if text.Text != "&" || !text.Effects.Font.Italic {
		t.Errorf("Unexpected text %+v", text)
	}
	if text.Effects.Justify.Horizontal != "left" || text.Effects.Justify.Vertical != "top" {
		t.Errorf("Unexpected text justify %+v", text.Effects.Justify)
	}

	polys := lib.Symbols[0].GraphicsOfType("polyline")
	if len(polys) != 1 || len(polys[0].Points) != 2 {
		t.Fatalf("Expected one 2-point polyline, got %+v", polys)
	}
	if polys[0].Points[1] != (Position{X: 2.54, Y: 2.54}) {
		t.Errorf("Unexpected polyline point %+v", polys[0].Points[1])
	}
}

func TestBoundingBox(t *testing.T) {
	lib, err := Parse(strings.NewReader(nandLibrary))
	if err != nil {
		t.Fatalf("Failed to parse library: %v", err)
	}

	bb := lib.Symbols[0].GetBoundingBox()
	if bb.Min.X != -7.62 || bb.Max.X != 7.62 {
		t.Errorf("Unexpected X bounds %v..%v", bb.Min.X, bb.Max.X)
	}
	if bb.Min.Y != -5.08 || bb.Max.Y != 5.08 {
		t.Errorf("Unexpected Y bounds %v..%v", bb.Min.Y, bb.Max.Y)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "wrong root", input: `(kicad_sch (version 20211014))`},
		{name: "missing version", input: `(kicad_symbol_lib (generator x))`},
		{name: "old version", input: `(kicad_symbol_lib (version 20200101))`},
		{name: "trailing content", input: `(kicad_symbol_lib (version 20211014)) (extra)`},
		{name: "unbalanced", input: `(kicad_symbol_lib (version 20211014)`},
		{name: "bad pin", input: `(kicad_symbol_lib (version 20211014)
			(symbol "X" (symbol "X_1_1" (pin input line (length 2.54)))))`},
		{name: "unquoted property value", input: `(kicad_symbol_lib (version 20211014)
			(symbol "X" (property "Reference" U (id 0))))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

package sexp

import (
	"testing"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp/kicadsexp"
)

// Helper to parse s-expression from string
func parseSexp(t *testing.T, input string) kicadsexp.Sexp {
	t.Helper()
	sexps, err := kicadsexp.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse s-expression %q: %v", input, err)
	}
	if len(sexps) == 0 {
		t.Fatalf("No s-expressions parsed from %q", input)
	}
	return sexps[0]
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		index   int
		want    string
		wantErr bool
	}{
		{
			name:  "get first element",
			input: "(pin input line)",
			index: 0,
			want:  "pin",
		},
		{
			name:  "get quoted element",
			input: `(name "~RESET")`,
			index: 1,
			want:  "~RESET",
		},
		{
			name:  "get third element",
			input: "(at 100 50 90)",
			index: 3,
			want:  "90",
		},
		{
			name:    "index out of bounds",
			input:   "(length 2.54)",
			index:   5,
			wantErr: true,
		},
		{
			name:    "nested list is not an atom",
			input:   "(pts (xy 0 0))",
			index:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := parseSexp(t, tt.input)
			got, err := GetString(s, tt.index)

			if tt.wantErr {
				if err == nil {
					t.Errorf("GetString() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("GetString() unexpected error: %v", err)
				return
			}

			if got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetQuotedStringRejectsKeywords(t *testing.T) {
	s := parseSexp(t, `(pin input line)`)
	if _, err := GetQuotedString(s, 1); err == nil {
		t.Error("GetQuotedString() accepted an unquoted atom")
	}

	s = parseSexp(t, `(property "Reference" "" (id 0))`)
	v, err := GetQuotedString(s, 2)
	if err != nil {
		t.Fatalf("GetQuotedString() unexpected error: %v", err)
	}
	if v != "" {
		t.Errorf("GetQuotedString() = %q, want empty", v)
	}
}

func TestGetPosition(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    PositionAngle
		wantErr bool
	}{
		{
			name:  "with angle",
			input: "(at 2.54 -5.08 90)",
			want:  PositionAngle{Position: Position{X: 2.54, Y: -5.08}, Angle: 90},
		},
		{
			name:  "without angle",
			input: "(at 1 2)",
			want:  PositionAngle{Position: Position{X: 1, Y: 2}},
		},
		{
			name:    "wrong keyword",
			input:   "(start 1 2)",
			wantErr: true,
		},
		{
			name:    "bad number",
			input:   "(at x 2)",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetPosition(parseSexp(t, tt.input))
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetPosition() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetPosition() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetPosition() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFindNodes(t *testing.T) {
	s := parseSexp(t, `(pts (xy 0 0) (xy 1 1) (xy 2 0) "xy")`)

	if _, ok := FindNode(s, "missing"); ok {
		t.Error("FindNode() found a missing node")
	}

	nodes := FindAllNodes(s, "xy")
	if len(nodes) != 3 {
		t.Fatalf("FindAllNodes() returned %d nodes, want 3", len(nodes))
	}

	last, err := GetPositionXY(nodes[2])
	if err != nil {
		t.Fatalf("GetPositionXY() unexpected error: %v", err)
	}
	if last != (Position{X: 2, Y: 0}) {
		t.Errorf("GetPositionXY() = %+v", last)
	}
}

func TestGetProperty(t *testing.T) {
	s := parseSexp(t, `(property "Footprint" "SO14" (id 2) (at 0 -12.7 0)
      (effects (font (size 1.27 1.27) italic) (justify left) hide))`)

	prop, err := GetProperty(s)
	if err != nil {
		t.Fatalf("GetProperty() unexpected error: %v", err)
	}

	if prop.Key != "Footprint" || prop.Value != "SO14" || prop.ID != 2 {
		t.Errorf("GetProperty() = %+v", prop)
	}
	if prop.Position.Y != -12.7 {
		t.Errorf("Expected Y -12.7, got %v", prop.Position.Y)
	}
	if !prop.Effects.Hide {
		t.Error("Expected hidden property")
	}
	if !prop.Effects.Font.Italic || prop.Effects.Font.Bold {
		t.Errorf("Unexpected font flags %+v", prop.Effects.Font)
	}
	if prop.Effects.Justify.Horizontal != "left" || prop.Effects.Justify.Vertical != "center" {
		t.Errorf("Unexpected justify %+v", prop.Effects.Justify)
	}
}

func TestBoundingBox(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Error("New bounding box should be empty")
	}

	bb.Expand(Position{X: -2, Y: 5})
	bb.Expand(Position{X: 8, Y: -5})

	if bb.Width() != 10 {
		t.Errorf("Expected width 10, got %v", bb.Width())
	}
	if bb.Height() != 10 {
		t.Errorf("Expected height 10, got %v", bb.Height())
	}
}

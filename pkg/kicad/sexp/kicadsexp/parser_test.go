package kicadsexp

import (
	"errors"
	"testing"
)

func TestParseNestedList(t *testing.T) {
	sexps, err := ParseString(`(pin input line (at 0 -2.54 0) (length 2.54) (name "A B"))`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(sexps) != 1 {
		t.Fatalf("Expected 1 expression, got %d", len(sexps))
	}

	list, ok := sexps[0].(*List)
	if !ok {
		t.Fatalf("Expected *List, got %T", sexps[0])
	}
	if list.Len() != 6 {
		t.Errorf("Expected 6 elements, got %d", list.Len())
	}

	if sym, ok := list.Get(1).(Symbol); !ok || sym != "input" {
		t.Errorf("Expected symbol 'input', got %#v", list.Get(1))
	}

	name, ok := list.Get(5).(*List)
	if !ok {
		t.Fatalf("Expected name list, got %T", list.Get(5))
	}
	if q, ok := name.Get(1).(Quoted); !ok || q != "A B" {
		t.Errorf("Expected quoted 'A B' as a single atom, got %#v", name.Get(1))
	}
}

func TestParseEscapes(t *testing.T) {
	sexps, err := ParseString(`(text "say \"hi\"\\now")`)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	list := sexps[0].(*List)
	if got := list.Get(1).(Quoted); got != `say "hi"\now` {
		t.Errorf("Expected unescaped string, got %q", string(got))
	}
}

func TestParseMultipleTopLevel(t *testing.T) {
	sexps, err := ParseString("(a) (b c)\n(d)")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(sexps) != 3 {
		t.Errorf("Expected 3 expressions, got %d", len(sexps))
	}
}

func TestHeadTail(t *testing.T) {
	sexps, err := ParseString("(xy 1 2)")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	s := sexps[0]
	if s.LeafCount() != 3 {
		t.Errorf("Expected 3 leaves, got %d", s.LeafCount())
	}
	if s.Head().String() != "xy" {
		t.Errorf("Expected head 'xy', got %q", s.Head().String())
	}
	if s.Tail().String() != "(1 2)" {
		t.Errorf("Expected tail '(1 2)', got %q", s.Tail().String())
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{name: "unclosed list", input: "(a\n (b c)\n", line: 3},
		{name: "stray close", input: "(a)\n)", line: 2},
		{name: "unterminated string", input: "(a \"oops)", line: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Expected *SyntaxError, got %T: %v", err, err)
			}
			if se.Line != tt.line {
				t.Errorf("Expected error on line %d, got %d (%v)", tt.line, se.Line, se)
			}
		})
	}
}

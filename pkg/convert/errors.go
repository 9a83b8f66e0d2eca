package convert

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for enumerated codes outside the known set
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownPad is returned when a pin position has no pad number in
	// the physical part being drawn
	ErrUnknownPad = errors.New("no pad for pin position")
)

// PrimitiveError names the primitive that failed to translate
type PrimitiveError struct {
	Kind  string // pin, rectangle, line, polygon, arc, ellipse, text, ...
	Index int    // Position among primitives of the same kind
	Err   error
}

func (e *PrimitiveError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Kind, e.Index, e.Err)
}

func (e *PrimitiveError) Unwrap() error { return e.Err }

// SymbolError names the symbol whose translation was aborted
type SymbolError struct {
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("symbol %q: %v", e.Symbol, e.Err)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// Package sexp provides the shared S-expression types and navigation
// helpers for KiCad symbol libraries. Symbol library coordinates are
// millimetres with the Y axis pointing up; angles are degrees.
package sexp

import "math"

// Position represents a 2D coordinate in millimetres
type Position struct {
	X float64
	Y float64
}

// Angle represents rotation in degrees
type Angle float64

// PositionAngle combines position with rotation
type PositionAngle struct {
	Position
	Angle Angle
}

// Size represents dimensions
type Size struct {
	Width  float64 // Width in mm
	Height float64 // Height in mm
}

// Stroke defines line/outline appearance
type Stroke struct {
	Width float64 // Line width in mm
	Type  string  // Line type (solid, dash, dot, etc.)
}

// Fill defines area fill
type Fill struct {
	Type string // none, outline or background
}

// BoundingBox is an axis-aligned box. The zero value is not empty; use
// NewBoundingBox for a box that grows from nothing.
type BoundingBox struct {
	Min, Max Position
}

// NewBoundingBox returns an empty box
func NewBoundingBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: Position{X: inf, Y: inf},
		Max: Position{X: -inf, Y: -inf},
	}
}

// IsEmpty reports whether nothing has been added to the box
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box to cover pos
func (bb *BoundingBox) Expand(pos Position) {
	bb.Min.X = min(bb.Min.X, pos.X)
	bb.Min.Y = min(bb.Min.Y, pos.Y)
	bb.Max.X = max(bb.Max.X, pos.X)
	bb.Max.Y = max(bb.Max.Y, pos.Y)
}

func (bb BoundingBox) Width() float64  { return bb.Max.X - bb.Min.X }
func (bb BoundingBox) Height() float64 { return bb.Max.Y - bb.Min.Y }

// Effects represents text effects (font, justification, visibility)
type Effects struct {
	Font    Font
	Justify Justify
	Hide    bool
}

// Font represents font properties
type Font struct {
	Size   Size
	Bold   bool
	Italic bool
}

// Justify represents text justification
type Justify struct {
	Horizontal string // left, center, right
	Vertical   string // top, center, bottom
}

// Property represents a symbol property
type Property struct {
	Key      string
	Value    string
	ID       int
	Position PositionAngle
	Effects  Effects
}

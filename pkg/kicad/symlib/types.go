// Package symlib reads KiCad symbol libraries (.kicad_sym).
package symlib

import "github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"

// Type aliases for convenience
type Position = sexp.Position
type Angle = sexp.Angle
type Stroke = sexp.Stroke
type Fill = sexp.Fill
type Effects = sexp.Effects
type Property = sexp.Property

// Library represents a parsed symbol library file
type Library struct {
	Version   int         // File format version (YYYYMMDD)
	Generator string      // Generator application name
	Symbols   []LibSymbol // Library symbols
}

// LibSymbol represents one library symbol definition
type LibSymbol struct {
	Name       string       // Symbol name
	PinNumbers bool         // Show pin numbers
	PinNames   bool         // Show pin names
	InBom      bool         // Include in BOM
	OnBoard    bool         // Place on board
	Properties []Property   // Symbol properties
	Pins       []Pin        // Pins of all units
	Graphics   []SymGraphic // Graphics of all units
	Units      []SymbolUnit // Symbol units
}

// SymbolUnit represents a unit of a multi-unit symbol
type SymbolUnit struct {
	Name     string       // Unit name, e.g. "7400_1_1"
	Graphics []SymGraphic // Unit graphics
	Pins     []Pin        // Unit pins
}

// SymGraphic represents a graphical element in a symbol
type SymGraphic struct {
	Type    string     // rectangle, circle, polyline, text
	Start   Position   // Start point
	End     Position   // End point
	Center  Position   // Center (for circles), anchor (for text)
	Points  []Position // Points (for polylines)
	Radius  float64    // Radius (for circles)
	Angle   Angle      // Rotation (for text)
	Stroke  Stroke     // Stroke style
	Fill    Fill       // Fill style
	Text    string     // Text content (for text elements)
	Effects Effects    // Text effects (for text elements)
}

// Pin represents a symbol pin
type Pin struct {
	Type     string   // Pin type (input, output, bidirectional, etc.)
	Style    string   // Pin style (line, inverted, clock, etc.)
	Position Position // Pin position
	Angle    Angle    // Pin angle (0, 90, 180, 270)
	Length   float64  // Pin length
	Name     PinName  // Pin name
	Number   PinNum   // Pin number
	Hide     bool     // Hidden pin
}

// PinName contains pin name information
type PinName struct {
	Name    string
	Effects Effects
}

// PinNum contains pin number information
type PinNum struct {
	Number  string
	Effects Effects
}

// GetSymbol returns the symbol with the given name
func (l *Library) GetSymbol(name string) *LibSymbol {
	for i := range l.Symbols {
		if l.Symbols[i].Name == name {
			return &l.Symbols[i]
		}
	}
	return nil
}

// Property returns the named property of the symbol
func (s *LibSymbol) Property(key string) (Property, bool) {
	for _, p := range s.Properties {
		if p.Key == key {
			return p, true
		}
	}
	return Property{}, false
}

// GraphicsOfType returns the graphics of the given type across all units
func (s *LibSymbol) GraphicsOfType(typ string) []SymGraphic {
	var out []SymGraphic
	for _, g := range s.Graphics {
		if g.Type == typ {
			out = append(out, g)
		}
	}
	return out
}

// GetBoundingBox calculates the bounding box of all pins and graphics
func (s *LibSymbol) GetBoundingBox() sexp.BoundingBox {
	bbox := sexp.NewBoundingBox()

	for _, pin := range s.Pins {
		bbox.Expand(pin.Position)
	}

	for _, g := range s.Graphics {
		switch g.Type {
		case "rectangle":
			bbox.Expand(g.Start)
			bbox.Expand(g.End)
		case "circle":
			bbox.Expand(Position{X: g.Center.X - g.Radius, Y: g.Center.Y - g.Radius})
			bbox.Expand(Position{X: g.Center.X + g.Radius, Y: g.Center.Y + g.Radius})
		case "polyline":
			for _, p := range g.Points {
				bbox.Expand(p)
			}
		case "text":
			bbox.Expand(g.Center)
		}
	}

	return bbox
}

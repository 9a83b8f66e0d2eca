package rules

import "github.com/alecthomas/participle/v2/lexer"

// File is the root of a rules file: a sequence of statements applied in order
type File struct {
	Rules []*Rule `parser:"@@*"`
}

// Rule is a single statement
type Rule struct {
	Pos lexer.Position

	Rename *Rename `parser:"  @@"`
	Drop   *Drop   `parser:"| @@"`
	Set    *Set    `parser:"| @@"`
}

// Rename changes the name of a user property
// Example: rename "Manufacturer" to "MFR"
type Rename struct {
	From string `parser:"\"rename\" @String"`
	To   string `parser:"\"to\" @String"`
}

// Drop removes a user property
// Example: drop "Implementation"
type Drop struct {
	Name string `parser:"\"drop\" @String"`
}

// Set assigns a user property, adding it when absent
// Example: set "Source" = "OrCAD"
type Set struct {
	Name  string `parser:"\"set\" @String"`
	Value string `parser:"Equals @String"`
}

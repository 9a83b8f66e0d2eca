package convert

import "github.com/OpenTraceLab/orcad2kicad/pkg/rules"

// Options controls rendering
type Options struct {
	TextSize      float64 // Property text size
	PinNameSize   float64 // Pin name font size
	PinNumberSize float64 // Pin number font size
	Generator     string  // Generator token written in the library header

	// SkipInvalid logs and drops symbols that fail to translate instead
	// of aborting the whole library
	SkipInvalid bool

	// Rules rewrites user properties before they are placed. May be nil.
	Rules *rules.RuleSet
}

// DefaultOptions returns the stock KiCad sizes
func DefaultOptions() Options {
	return Options{
		TextSize:      1.27,
		PinNameSize:   1.7,
		PinNumberSize: 1.5,
		Generator:     "orcad2kicad",
	}
}

// Package config loads orcad2kicad settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	vlib "github.com/mcuadros/go-version"
	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/orcad2kicad/pkg/convert"
	"github.com/OpenTraceLab/orcad2kicad/pkg/rules"
)

// ToolVersion is the version of this tool, checked against min_tool_version
const ToolVersion = "0.9.0"

// ErrToolTooOld is returned when a config file requires a newer tool
var ErrToolTooOld = errors.New("config requires a newer orcad2kicad")

var generatorPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)

// Config controls a conversion run.
type Config struct {
	// Font sizes in millimetres
	TextSize      float64 `yaml:"text_size"`       // Property text (default: 1.27)
	PinNameSize   float64 `yaml:"pin_name_size"`   // Pin names (default: 1.7)
	PinNumberSize float64 `yaml:"pin_number_size"` // Pin numbers (default: 1.5)

	Generator   string `yaml:"generator"`    // Library header generator token (default: orcad2kicad)
	Rules       string `yaml:"rules"`        // Property rules file, relative to the config file
	SkipInvalid bool   `yaml:"skip_invalid"` // Drop failing symbols instead of aborting (default: false)

	// MinToolVersion rejects the config when this tool is older
	MinToolVersion string `yaml:"min_tool_version"`

	// Directory of the loaded file, used to resolve Rules
	dir string
}

// DefaultConfig returns a Config with the stock KiCad sizes.
func DefaultConfig() *Config {
	opts := convert.DefaultOptions()
	return &Config{
		TextSize:      opts.TextSize,
		PinNameSize:   opts.PinNameSize,
		PinNumberSize: opts.PinNumberSize,
		Generator:     opts.Generator,
	}
}

// LoadFile loads and validates a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)

	return c, nil
}

// Parse parses YAML data on top of DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	c := DefaultConfig()

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	sizes := []struct {
		name string
		v    float64
	}{
		{"text_size", c.TextSize},
		{"pin_name_size", c.PinNameSize},
		{"pin_number_size", c.PinNumberSize},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", s.name, s.v)
		}
	}

	if !generatorPattern.MatchString(c.Generator) {
		return fmt.Errorf("generator %q must be a bare token", c.Generator)
	}

	if c.MinToolVersion != "" && vlib.CompareSimple(ToolVersion, c.MinToolVersion) < 0 {
		return fmt.Errorf("%w: need %s, have %s", ErrToolTooOld, c.MinToolVersion, ToolVersion)
	}

	return nil
}

// RulesPath returns the rules file path resolved against the config file
func (c *Config) RulesPath() string {
	if c.Rules == "" || filepath.IsAbs(c.Rules) || c.dir == "" {
		return c.Rules
	}
	return filepath.Join(c.dir, c.Rules)
}

// Options builds conversion options, loading the rules file if one is set.
func (c *Config) Options() (convert.Options, error) {
	opts := convert.Options{
		TextSize:      c.TextSize,
		PinNameSize:   c.PinNameSize,
		PinNumberSize: c.PinNumberSize,
		Generator:     c.Generator,
		SkipInvalid:   c.SkipInvalid,
	}

	if path := c.RulesPath(); path != "" {
		rs, err := rules.LoadFile(path)
		if err != nil {
			return opts, fmt.Errorf("failed to load rules: %w", err)
		}
		opts.Rules = rs
	}

	return opts, nil
}

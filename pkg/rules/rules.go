// Package rules implements a small rule language that rewrites the user
// properties of converted symbols:
//
//	# comments run to end of line
//	rename "Manufacturer" to "MFR"
//	drop "Implementation"
//	set "Source" = "OrCAD"
//
// Statements apply in file order.
package rules

import (
	"errors"
	"fmt"
)

// ErrReservedName is returned for rules that target a field KiCad manages itself
var ErrReservedName = errors.New("reserved property name")

// reserved are the fields the converter writes itself
var reserved = map[string]bool{
	"Reference": true,
	"Value":     true,
	"Footprint": true,
	"Datasheet": true,
	"PartValue": true,
	"ki_locked": true,
}

// IsReserved reports whether name is a field the converter writes itself
func IsReserved(name string) bool {
	return reserved[name]
}

// Property is a free-form name/value pair
type Property struct {
	Name  string
	Value string
}

// RuleSet is a compiled, validated list of rules
type RuleSet struct {
	rules []*Rule
}

// Compile validates a parsed file
func Compile(file *File) (*RuleSet, error) {
	for _, r := range file.Rules {
		var names []string
		switch {
		case r.Rename != nil:
			names = []string{r.Rename.From, r.Rename.To}
		case r.Drop != nil:
			names = []string{r.Drop.Name}
		case r.Set != nil:
			names = []string{r.Set.Name}
		}
		for _, n := range names {
			if n == "" {
				return nil, fmt.Errorf("%s: empty property name", r.Pos)
			}
			if reserved[n] {
				return nil, fmt.Errorf("%s: %w: %q", r.Pos, ErrReservedName, n)
			}
		}
	}
	return &RuleSet{rules: file.Rules}, nil
}

// Len returns the number of rules
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Apply returns props rewritten by every rule in order. The input slice is
// not modified and a nil RuleSet only merges duplicates.
//
// Names in the result are unique. A repeated input name keeps its first
// position and its last value. A rename onto a name that already exists
// moves the value onto that property and removes the renamed one.
func (rs *RuleSet) Apply(props []Property) []Property {
	out := unique(props)
	if rs == nil {
		return out
	}

	for _, r := range rs.rules {
		switch {
		case r.Rename != nil:
			from := index(out, r.Rename.From)
			if from < 0 {
				continue
			}
			to := index(out, r.Rename.To)
			if to < 0 || to == from {
				out[from].Name = r.Rename.To
				continue
			}
			out[to].Value = out[from].Value
			out = append(out[:from], out[from+1:]...)

		case r.Drop != nil:
			if i := index(out, r.Drop.Name); i >= 0 {
				out = append(out[:i], out[i+1:]...)
			}

		case r.Set != nil:
			if i := index(out, r.Set.Name); i >= 0 {
				out[i].Value = r.Set.Value
			} else {
				out = append(out, Property{Name: r.Set.Name, Value: r.Set.Value})
			}
		}
	}

	return out
}

// unique copies props, merging repeated names
func unique(props []Property) []Property {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		if i := index(out, p.Name); i >= 0 {
			out[i].Value = p.Value
			continue
		}
		out = append(out, p)
	}
	return out
}

func index(props []Property, name string) int {
	for i, p := range props {
		if p.Name == name {
			return i
		}
	}
	return -1
}

package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *RuleSet {
	t.Helper()
	p, err := NewParser()
	require.NoError(t, err)
	rs, err := p.ParseString(input)
	require.NoError(t, err)
	return rs
}

func TestParseStatements(t *testing.T) {
	rs := mustParse(t, `
# vendor cleanup
rename "Manufacturer" to "MFR"
drop "Implementation"   # not useful in KiCad
set "Source" = "OrCAD \"Capture\""
`)
	require.Equal(t, 3, rs.Len())
	assert.Equal(t, "Manufacturer", rs.rules[0].Rename.From)
	assert.Equal(t, "MFR", rs.rules[0].Rename.To)
	assert.Equal(t, "Implementation", rs.rules[1].Drop.Name)
	assert.Equal(t, `OrCAD "Capture"`, rs.rules[2].Set.Value)
	assert.Equal(t, 4, rs.rules[1].Pos.Line)
}

func TestParseEmpty(t *testing.T) {
	rs := mustParse(t, "# nothing here\n")
	assert.Equal(t, 0, rs.Len())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown statement", input: `copy "A" to "B"`},
		{name: "missing target", input: `rename "A"`},
		{name: "unquoted name", input: `drop Foo`},
		{name: "missing equals", input: `set "A" "b"`},
		{name: "unterminated string", input: `drop "A`},
		{name: "empty name", input: `drop ""`},
	}

	p, err := NewParser()
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseString(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestReservedNames(t *testing.T) {
	p, err := NewParser()
	require.NoError(t, err)

	for _, input := range []string{
		`rename "MFR" to "Value"`,
		`drop "Reference"`,
		`set "ki_locked" = ""`,
		`set "PartValue" = "X"`,
		`rename "PartValue" to "PV"`,
	} {
		_, err := p.ParseString(input)
		require.Error(t, err, input)
		assert.True(t, errors.Is(err, ErrReservedName), "%s: %v", input, err)
	}
}

func TestApplyInOrder(t *testing.T) {
	rs := mustParse(t, `
rename "Manufacturer" to "MFR"
drop "Implementation"
set "MFR" = "TI"
set "Source" = "OrCAD"
`)
	in := []Property{
		{Name: "Implementation", Value: "x"},
		{Name: "Manufacturer", Value: "Texas Instruments"},
		{Name: "Tolerance", Value: "5%"},
	}

	out := rs.Apply(in)
	assert.Equal(t, []Property{
		{Name: "MFR", Value: "TI"},
		{Name: "Tolerance", Value: "5%"},
		{Name: "Source", Value: "OrCAD"},
	}, out)

	// input untouched
	assert.Equal(t, "Implementation", in[0].Name)
	assert.Equal(t, "Manufacturer", in[1].Name)
	assert.Equal(t, "Texas Instruments", in[1].Value)
}

func TestIsReserved(t *testing.T) {
	for _, name := range []string{"Reference", "Value", "Footprint", "Datasheet", "PartValue", "ki_locked"} {
		assert.True(t, IsReserved(name), name)
	}
	assert.False(t, IsReserved("Manufacturer"))
	assert.False(t, IsReserved("value"))
}

func TestApplyRenameOntoExisting(t *testing.T) {
	rs := mustParse(t, `rename "Manufacturer" to "MFR"`)
	out := rs.Apply([]Property{
		{Name: "MFR", Value: "old"},
		{Name: "Tolerance", Value: "5%"},
		{Name: "Manufacturer", Value: "TI"},
	})
	assert.Equal(t, []Property{
		{Name: "MFR", Value: "TI"},
		{Name: "Tolerance", Value: "5%"},
	}, out)
}

func TestApplySetKeepsNamesUnique(t *testing.T) {
	rs := mustParse(t, `
set "MFR" = "TI"
rename "MFR" to "MFR"
set "Source" = "a"
set "Source" = "b"
`)
	out := rs.Apply([]Property{
		{Name: "MFR", Value: "x"},
		{Name: "MFR", Value: "y"},
	})
	assert.Equal(t, []Property{
		{Name: "MFR", Value: "TI"},
		{Name: "Source", Value: "b"},
	}, out)
}

func TestApplyMergesRepeatedInput(t *testing.T) {
	var rs *RuleSet
	out := rs.Apply([]Property{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
		{Name: "A", Value: "3"},
	})
	assert.Equal(t, []Property{
		{Name: "A", Value: "3"},
		{Name: "B", Value: "2"},
	}, out)

	rs = mustParse(t, `drop "A"`)
	assert.Equal(t, []Property{{Name: "B", Value: "2"}}, rs.Apply([]Property{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
		{Name: "A", Value: "3"},
	}))
}

func TestApplyNil(t *testing.T) {
	var rs *RuleSet
	in := []Property{{Name: "A", Value: "1"}}
	out := rs.Apply(in)
	assert.Equal(t, in, out)
	out[0].Value = "2"
	assert.Equal(t, "1", in[0].Value)
	assert.Equal(t, 0, rs.Len())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "props.rules")
	require.NoError(t, os.WriteFile(path, []byte(`drop "A"`+"\n"), 0o644))

	rs, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, rs.Apply([]Property{{Name: "A"}}))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.rules"))
	assert.Error(t, err)
}

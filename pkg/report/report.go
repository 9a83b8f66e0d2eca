// Package report writes pin tables of a KiCad symbol library as an XLSX
// workbook: a summary sheet followed by one sheet per symbol.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/symlib"
)

// SummarySheet is the name of the first sheet
const SummarySheet = "Summary"

// maxSheetName is Excel's sheet name length limit
const maxSheetName = 31

var (
	summaryHeader = []interface{}{"Symbol", "Sheet", "Units", "Pins", "Reference", "Footprint"}
	pinHeader     = []interface{}{"Unit", "Number", "Name", "Type", "Shape", "X", "Y", "Angle", "Length", "Hidden"}
)

var sheetReplacer = strings.NewReplacer(
	":", "_", `\`, "_", "/", "_", "?", "_", "*", "_", "[", "_", "]", "_",
)

// SheetName makes a symbol name usable as an Excel sheet name
func SheetName(symbol string) string {
	name := strings.Trim(sheetReplacer.Replace(symbol), "'")
	if name == "" {
		name = "_"
	}
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}

// sheetNamer hands out unique sheet names, compared case-insensitively
type sheetNamer struct {
	used map[string]bool
}

func (n *sheetNamer) name(symbol string) string {
	base := SheetName(symbol)
	name := base
	for i := 2; n.used[strings.ToLower(name)]; i++ {
		suffix := "~" + strconv.Itoa(i)
		name = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	n.used[strings.ToLower(name)] = true
	return name
}

// Build creates the workbook. The caller must Close it.
func Build(lib *symlib.Library) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeRow(f, SummarySheet, 1, summaryHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "F1", bold); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	namer := &sheetNamer{used: map[string]bool{strings.ToLower(SummarySheet): true}}

	for i, sym := range lib.Symbols {
		sheet := namer.name(sym.Name)
		if err := writeSymbol(f, sheet, &sym, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("symbol %q: %w", sym.Name, err)
		}

		ref, _ := sym.Property("Reference")
		fp, _ := sym.Property("Footprint")
		row := []interface{}{sym.Name, sheet, len(sym.Units), len(sym.Pins), ref.Value, fp.Value}
		if err := writeRow(f, SummarySheet, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func writeSymbol(f *excelize.File, sheet string, sym *symlib.LibSymbol, bold int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}
	if err := writeRow(f, sheet, 1, pinHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	row := 2
	for _, unit := range sym.Units {
		for _, pin := range unit.Pins {
			values := []interface{}{
				unit.Name,
				pin.Number.Number,
				pin.Name.Name,
				pin.Type,
				pin.Style,
				pin.Position.X,
				pin.Position.Y,
				float64(pin.Angle),
				pin.Length,
				pin.Hide,
			}
			if err := writeRow(f, sheet, row, values); err != nil {
				return err
			}
			row++
		}
	}

	return f.SetColWidth(sheet, "A", "C", 16)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return nil
}

// Write builds the workbook and writes it to w
func Write(w io.Writer, lib *symlib.Library) error {
	f, err := Build(lib)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

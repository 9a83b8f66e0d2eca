package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/symlib"
	"github.com/OpenTraceLab/orcad2kicad/pkg/report"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report <library.kicad_sym>",
	Short: "Write the pins of a symbol library to a spreadsheet",
	Long: `Write an XLSX workbook with a summary sheet listing every symbol and one
sheet per symbol listing its pins by unit.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default: input name with .xlsx)")
}

func runReport(cmd *cobra.Command, args []string) error {
	filename := args[0]
	lib, err := symlib.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing library: %w", err)
	}

	output := reportOutput
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + ".xlsx"
	}

	f, err := report.Build(lib)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("Wrote %s (%d symbol(s))\n", output, len(lib.Symbols))
	return nil
}

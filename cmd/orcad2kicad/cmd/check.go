package cmd

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/symlib"
)

var strictCheck bool

var checkCmd = &cobra.Command{
	Use:   "check <library.kicad_sym>",
	Short: "Re-read a KiCad symbol library and show its contents",
	Long: `Parse a KiCad symbol library and print per-symbol statistics.

The file is also read by a second, independent S-expression parser as a
well-formedness cross-check. With --strict a failed cross-check is an
error; otherwise it is only reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&strictCheck, "strict", false, "fail when the cross-check parser rejects the file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	lib, err := symlib.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing library: %w", err)
	}

	fmt.Printf("Library: %s\n", filename)
	fmt.Printf("Version: %d\n", lib.Version)
	fmt.Printf("Generator: %s\n", lib.Generator)
	fmt.Printf("Symbols: %d\n", len(lib.Symbols))
	fmt.Println()

	for i := range lib.Symbols {
		showSymbolStats(&lib.Symbols[i])
	}

	leaves, err := crossCheck(filename)
	if err != nil {
		if strictCheck {
			return fmt.Errorf("cross-check failed: %w", err)
		}
		fmt.Printf("Cross-check: failed (%v)\n", err)
		return nil
	}
	fmt.Printf("Cross-check: ok (%d atoms)\n", leaves)
	return nil
}

func showSymbolStats(sym *symlib.LibSymbol) {
	fmt.Printf("%s\n", sym.Name)
	if ref, ok := sym.Property("Reference"); ok {
		fmt.Printf("  Reference: %s\n", ref.Value)
	}
	if fp, ok := sym.Property("Footprint"); ok && fp.Value != "" {
		fmt.Printf("  Footprint: %s\n", fp.Value)
	}
	fmt.Printf("  Units: %d\n", len(sym.Units))
	fmt.Printf("  Pins: %d\n", len(sym.Pins))
	fmt.Printf("  Graphics: %d rectangle(s), %d circle(s), %d polyline(s), %d text(s)\n",
		len(sym.GraphicsOfType("rectangle")),
		len(sym.GraphicsOfType("circle")),
		len(sym.GraphicsOfType("polyline")),
		len(sym.GraphicsOfType("text")))

	bb := sym.GetBoundingBox()
	if !bb.IsEmpty() {
		fmt.Printf("  Size: %.2f x %.2f mm\n", bb.Width(), bb.Height())
	}
	fmt.Println()
}

// crossCheck parses the file with chewxy/sexp and returns the atom count
// of its single top-level list
func crossCheck(filename string) (int, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read file: %w", err)
	}

	sexps, err := sexp.ParseString(string(data))
	if err != nil {
		return 0, err
	}
	if len(sexps) != 1 {
		return 0, fmt.Errorf("expected 1 top-level expression, got %d", len(sexps))
	}
	if sexps[0].IsLeaf() {
		return 0, fmt.Errorf("top-level expression is not a list")
	}
	return sexps[0].LeafCount(), nil
}

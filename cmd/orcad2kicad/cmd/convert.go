package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/orcad2kicad/internal/config"
	"github.com/OpenTraceLab/orcad2kicad/pkg/convert"
)

var (
	outputPath    string
	generator     string
	rulesPath     string
	textSize      float64
	pinNameSize   float64
	pinNumberSize float64
	skipInvalid   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <library.xml>",
	Short: "Convert an OrCAD XML export to a KiCad symbol library",
	Long: `Convert every package of an OrCAD Capture XML library export into one
KiCad 6 symbol library.

The library is written to a temporary file next to the output and renamed
into place only when every symbol converted, so a failed run never leaves
a partial library behind. With --skip-invalid, failing symbols are dropped
and listed instead of aborting the run.

Flags override the values of the --config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: input name with .kicad_sym)")
	convertCmd.Flags().StringVar(&generator, "generator", "", "generator token written to the library header")
	convertCmd.Flags().StringVar(&rulesPath, "rules", "", "property rules file")
	convertCmd.Flags().Float64Var(&textSize, "text-size", 0, "property text size in mm")
	convertCmd.Flags().Float64Var(&pinNameSize, "pin-name-size", 0, "pin name text size in mm")
	convertCmd.Flags().Float64Var(&pinNumberSize, "pin-number-size", 0, "pin number text size in mm")
	convertCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "drop symbols that fail instead of aborting")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := applyConvertFlags(cmd, cfg); err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	output := outputPath
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".kicad_sym"
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(output), ".orcad2kicad-*.kicad_sym")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name())

	sum, err := convert.Convert(in, tmp, opts)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("error converting %s: %w", input, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSummary(sum, output)
	return nil
}

// applyConvertFlags copies explicitly set flags over the loaded config
func applyConvertFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("generator") {
		cfg.Generator = generator
	}
	if flags.Changed("text-size") {
		cfg.TextSize = textSize
	}
	if flags.Changed("pin-name-size") {
		cfg.PinNameSize = pinNameSize
	}
	if flags.Changed("pin-number-size") {
		cfg.PinNumberSize = pinNumberSize
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = skipInvalid
	}
	if flags.Changed("rules") {
		abs, err := filepath.Abs(rulesPath)
		if err != nil {
			return fmt.Errorf("failed to resolve rules path: %w", err)
		}
		cfg.Rules = abs
	}
	return cfg.Validate()
}

func printSummary(sum *convert.Summary, output string) {
	fmt.Printf("Wrote %s\n", output)
	fmt.Printf("Converted: %d symbol(s)\n", len(sum.Converted))
	if verbose {
		for _, name := range sum.Converted {
			fmt.Printf("  %s\n", name)
		}
	}
	if len(sum.Skipped) > 0 {
		fmt.Printf("Skipped: %d\n", len(sum.Skipped))
		for _, err := range sum.Skipped {
			fmt.Printf("  %v\n", err)
		}
	}
}

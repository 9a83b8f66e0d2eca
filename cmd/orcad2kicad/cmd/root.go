package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/orcad2kicad/internal/config"
	"github.com/OpenTraceLab/orcad2kicad/pkg/convert"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "orcad2kicad",
	Short: "Convert OrCAD Capture XML symbol libraries to KiCad",
	Long: `orcad2kicad converts OrCAD Capture XML library exports into
KiCad 6 symbol libraries (.kicad_sym).

Examples:
  orcad2kicad convert parts.xml -o parts.kicad_sym   # Convert a library
  orcad2kicad inspect parts.xml                      # List packages in an export
  orcad2kicad check parts.kicad_sym                  # Re-read a converted library
  orcad2kicad report parts.kicad_sym -o pins.xlsx    # Pin tables as a spreadsheet`,
	Version:       config.ToolVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			convert.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		} else {
			convert.SetLogger(nil)
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
}

// loadConfig returns the config named by --config, or the defaults
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadFile(configPath)
}

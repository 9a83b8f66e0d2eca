package cmd

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/orcad2kicad/pkg/convert"
	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

var (
	dumpTree    bool
	packageName string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <library.xml>",
	Short: "List the packages of an OrCAD XML export",
	Long: `Display the packages of an OrCAD Capture XML library export, with the
number of part variants, physical parts and pins of each one. Packages
that would fail to convert are reported with the reason.

With --dump the parsed attribute tree is printed instead. --package limits
either view to one package.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().BoolVar(&dumpTree, "dump", false, "dump the parsed attribute tree")
	inspectCmd.Flags().StringVarP(&packageName, "package", "p", "", "only show the named package")
}

func runInspect(cmd *cobra.Command, args []string) error {
	filename := args[0]
	root, err := orcad.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing export: %w", err)
	}

	pkgs := orcad.Packages(root)
	if packageName != "" {
		var match []*orcad.Node
		for _, pkg := range pkgs {
			if name, _ := pkg.Lookup("name"); name == packageName {
				match = append(match, pkg)
			}
		}
		if len(match) == 0 {
			return fmt.Errorf("package '%s' not found", packageName)
		}
		pkgs = match
	}

	if dumpTree {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		if packageName == "" {
			cfg.Fdump(os.Stdout, root)
			return nil
		}
		for _, pkg := range pkgs {
			cfg.Fdump(os.Stdout, pkg)
		}
		return nil
	}

	fmt.Printf("Export: %s\n", filename)
	fmt.Printf("Packages: %d\n", len(pkgs))
	fmt.Println()

	for _, pkg := range pkgs {
		showPackage(pkg)
	}
	return nil
}

func showPackage(pkg *orcad.Node) {
	name, _ := pkg.Lookup("name")
	ref, _ := pkg.Lookup("refDesPrefix")
	footprint, _ := pkg.Lookup("pcbFootprint")

	fmt.Printf("%s\n", name)
	if ref != "" {
		fmt.Printf("  Reference: %s\n", ref)
	}
	if footprint != "" {
		fmt.Printf("  Footprint: %s\n", footprint)
	}

	parts := pkg.ChildrenNamed("LibPart")
	fmt.Printf("  Variants: %d\n", len(parts))
	fmt.Printf("  Physical parts: %d\n", len(pkg.ChildrenNamed("PhysicalPart")))

	pins := 0
	for _, lp := range parts {
		lp.Walk(func(_ int, n *orcad.Node) {
			if n.Name == "SymbolPinScalar" {
				pins++
			}
		})
	}
	fmt.Printf("  Pins: %d\n", pins)

	if s, err := convert.SymbolFromPackage(pkg); err != nil {
		fmt.Printf("  Error: %v\n", err)
	} else {
		fmt.Printf("  Symbol: %s (%d unit(s))\n", s.Name, s.Units())
	}
	fmt.Println()
}

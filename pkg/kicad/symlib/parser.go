package symlib

import (
	"fmt"
	"io"
	"os"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp"
	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp/kicadsexp"
)

// Minimum supported KiCad version for symbol libraries (6.0 = 20211014)
const MinSupportedVersion = 20211014

// ParseFile reads and parses a KiCad symbol library file
func ParseFile(filename string) (*Library, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads and parses a KiCad symbol library from an io.Reader
func Parse(r io.Reader) (*Library, error) {
	sexps, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}
	if len(sexps) > 1 {
		return nil, fmt.Errorf("unexpected content after library: %d top-level expressions", len(sexps))
	}

	root := sexps[0]

	rootName, err := sexp.GetNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}

	if rootName != "kicad_symbol_lib" {
		return nil, fmt.Errorf("not a KiCad symbol library: expected 'kicad_symbol_lib', got '%s'", rootName)
	}

	lib := &Library{}

	if err := parseHeader(root, lib); err != nil {
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}

	for _, symNode := range sexp.FindAllNodes(root, "symbol") {
		sym, err := parseLibSymbol(symNode)
		if err != nil {
			return nil, err
		}
		lib.Symbols = append(lib.Symbols, sym)
	}

	return lib, nil
}

// parseHeader extracts version and generator information
func parseHeader(root kicadsexp.Sexp, lib *Library) error {
	versionNode, found := sexp.FindNode(root, "version")
	if !found {
		return fmt.Errorf("missing required 'version' field")
	}

	ver, err := sexp.GetInt(versionNode, 1)
	if err != nil {
		return fmt.Errorf("failed to parse version: %w", err)
	}

	if ver < MinSupportedVersion {
		return fmt.Errorf("unsupported KiCad version: %d (minimum required: %d / KiCad 6.0)", ver, MinSupportedVersion)
	}
	lib.Version = ver

	// KiCad 6 writes the generator unquoted, later versions quote it
	if genNode, found := sexp.FindNode(root, "generator"); found {
		gen, err := sexp.GetString(genNode, 1)
		if err == nil {
			lib.Generator = gen
		}
	}

	return nil
}

// parseLibSymbol parses a single library symbol definition
func parseLibSymbol(node kicadsexp.Sexp) (LibSymbol, error) {
	sym := LibSymbol{
		PinNumbers: true,
		PinNames:   true,
		InBom:      true,
		OnBoard:    true,
	}

	name, err := sexp.GetQuotedString(node, 1)
	if err != nil {
		return sym, fmt.Errorf("failed to parse symbol name: %w", err)
	}
	sym.Name = name

	for _, pn := range sexp.FindAllNodes(node, "property") {
		prop, err := sexp.GetProperty(pn)
		if err != nil {
			return sym, fmt.Errorf("symbol %q: %w", name, err)
		}
		sym.Properties = append(sym.Properties, prop)
	}

	if pnNode, found := sexp.FindNode(node, "pin_numbers"); found {
		sym.PinNumbers = !sexp.HasSymbol(pnNode, "hide")
	}

	if pnNode, found := sexp.FindNode(node, "pin_names"); found {
		sym.PinNames = !sexp.HasSymbol(pnNode, "hide")
	}

	if ibNode, found := sexp.FindNode(node, "in_bom"); found {
		val, _ := sexp.GetString(ibNode, 1)
		sym.InBom = val == "yes"
	}

	if obNode, found := sexp.FindNode(node, "on_board"); found {
		val, _ := sexp.GetString(obNode, 1)
		sym.OnBoard = val == "yes"
	}

	// Nested symbol units contain the actual graphics and pins
	for _, unitNode := range sexp.FindAllNodes(node, "symbol") {
		unit, err := parseSymbolUnit(unitNode)
		if err != nil {
			return sym, fmt.Errorf("symbol %q: %w", name, err)
		}
		sym.Units = append(sym.Units, unit)

		sym.Graphics = append(sym.Graphics, unit.Graphics...)
		sym.Pins = append(sym.Pins, unit.Pins...)
	}

	return sym, nil
}

// parseSymbolUnit parses a nested symbol unit. Graphics are collected in
// file order.
func parseSymbolUnit(node kicadsexp.Sexp) (SymbolUnit, error) {
	unit := SymbolUnit{}

	name, err := sexp.GetQuotedString(node, 1)
	if err != nil {
		return unit, fmt.Errorf("failed to parse unit name: %w", err)
	}
	unit.Name = name

	list, ok := node.(*kicadsexp.List)
	if !ok {
		return unit, fmt.Errorf("unit %q: expected list", name)
	}

	for _, item := range list.Elements() {
		kind, err := sexp.GetNodeName(item)
		if err != nil {
			continue
		}

		var graphic SymGraphic
		switch kind {
		case "rectangle":
			graphic, err = parseRectangle(item)
		case "circle":
			graphic, err = parseCircle(item)
		case "polyline":
			graphic, err = parsePolyline(item)
		case "text":
			graphic, err = parseText(item)
		case "pin":
			pin, err := parsePin(item)
			if err != nil {
				return unit, fmt.Errorf("unit %q: pin %d: %w", name, len(unit.Pins), err)
			}
			unit.Pins = append(unit.Pins, pin)
			continue
		default:
			continue
		}
		if err != nil {
			return unit, fmt.Errorf("unit %q: %s: %w", name, kind, err)
		}
		unit.Graphics = append(unit.Graphics, graphic)
	}

	return unit, nil
}

// parsePin parses a pin definition
func parsePin(node kicadsexp.Sexp) (Pin, error) {
	pin := Pin{}
	var err error

	if pin.Type, err = sexp.GetString(node, 1); err != nil {
		return pin, fmt.Errorf("failed to parse pin type: %w", err)
	}
	if pin.Style, err = sexp.GetString(node, 2); err != nil {
		return pin, fmt.Errorf("failed to parse pin style: %w", err)
	}

	atNode, found := sexp.FindNode(node, "at")
	if !found {
		return pin, fmt.Errorf("missing 'at'")
	}
	pos, err := sexp.GetPosition(atNode)
	if err != nil {
		return pin, err
	}
	pin.Position = pos.Position
	pin.Angle = pos.Angle

	if lenNode, found := sexp.FindNode(node, "length"); found {
		if pin.Length, err = sexp.GetFloat(lenNode, 1); err != nil {
			return pin, fmt.Errorf("failed to parse pin length: %w", err)
		}
	}

	if nameNode, found := sexp.FindNode(node, "name"); found {
		pin.Name.Name, _ = sexp.GetQuotedString(nameNode, 1)
		if effectsNode, found := sexp.FindNode(nameNode, "effects"); found {
			pin.Name.Effects, _ = sexp.GetEffects(effectsNode)
		}
	}

	if numNode, found := sexp.FindNode(node, "number"); found {
		pin.Number.Number, _ = sexp.GetQuotedString(numNode, 1)
		if effectsNode, found := sexp.FindNode(numNode, "effects"); found {
			pin.Number.Effects, _ = sexp.GetEffects(effectsNode)
		}
	}

	pin.Hide = sexp.HasSymbol(node, "hide")

	return pin, nil
}

// parseRectangle parses a rectangle graphic element
func parseRectangle(node kicadsexp.Sexp) (SymGraphic, error) {
	graphic := SymGraphic{Type: "rectangle"}
	var err error

	startNode, found := sexp.FindNode(node, "start")
	if !found {
		return graphic, fmt.Errorf("missing 'start'")
	}
	if graphic.Start, err = sexp.GetPositionXY(startNode); err != nil {
		return graphic, err
	}
	endNode, found := sexp.FindNode(node, "end")
	if !found {
		return graphic, fmt.Errorf("missing 'end'")
	}
	if graphic.End, err = sexp.GetPositionXY(endNode); err != nil {
		return graphic, err
	}

	return graphic, parseStrokeFill(node, &graphic)
}

// parseCircle parses a circle graphic element
func parseCircle(node kicadsexp.Sexp) (SymGraphic, error) {
	graphic := SymGraphic{Type: "circle"}
	var err error

	centerNode, found := sexp.FindNode(node, "center")
	if !found {
		return graphic, fmt.Errorf("missing 'center'")
	}
	if graphic.Center, err = sexp.GetPositionXY(centerNode); err != nil {
		return graphic, err
	}
	if radiusNode, found := sexp.FindNode(node, "radius"); found {
		if graphic.Radius, err = sexp.GetFloat(radiusNode, 1); err != nil {
			return graphic, fmt.Errorf("failed to parse radius: %w", err)
		}
	}

	return graphic, parseStrokeFill(node, &graphic)
}

// parsePolyline parses a polyline graphic element
func parsePolyline(node kicadsexp.Sexp) (SymGraphic, error) {
	graphic := SymGraphic{Type: "polyline"}

	if ptsNode, found := sexp.FindNode(node, "pts"); found {
		for _, xy := range sexp.FindAllNodes(ptsNode, "xy") {
			pos, err := sexp.GetPositionXY(xy)
			if err != nil {
				return graphic, fmt.Errorf("failed to parse point %d: %w", len(graphic.Points), err)
			}
			graphic.Points = append(graphic.Points, pos)
		}
	}

	return graphic, parseStrokeFill(node, &graphic)
}

// parseText parses a (text "..." (at X Y A) (effects ...)) element
func parseText(node kicadsexp.Sexp) (SymGraphic, error) {
	graphic := SymGraphic{Type: "text"}
	var err error

	if graphic.Text, err = sexp.GetQuotedString(node, 1); err != nil {
		return graphic, err
	}
	if atNode, found := sexp.FindNode(node, "at"); found {
		pos, err := sexp.GetPosition(atNode)
		if err != nil {
			return graphic, err
		}
		graphic.Center = pos.Position
		graphic.Angle = pos.Angle
	}
	if effectsNode, found := sexp.FindNode(node, "effects"); found {
		if graphic.Effects, err = sexp.GetEffects(effectsNode); err != nil {
			return graphic, err
		}
	}

	return graphic, nil
}

func parseStrokeFill(node kicadsexp.Sexp, graphic *SymGraphic) error {
	var err error
	graphic.Fill = Fill{Type: "none"}
	if strokeNode, found := sexp.FindNode(node, "stroke"); found {
		if graphic.Stroke, err = sexp.GetStroke(strokeNode); err != nil {
			return err
		}
	}
	if fillNode, found := sexp.FindNode(node, "fill"); found {
		if graphic.Fill, err = sexp.GetFill(fillNode); err != nil {
			return err
		}
	}
	return nil
}

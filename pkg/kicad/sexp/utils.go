package sexp

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/orcad2kicad/pkg/kicad/sexp/kicadsexp"
)

// S-expression navigation helpers

// FindNode searches for a child list whose first atom is key.
// Example: FindNode(sexp, "at") finds (at 100 50) in a list
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range items(s) {
		if nodeName(item) == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes finds all child lists whose first atom is key
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range items(s) {
		if nodeName(item) == key {
			results = append(results, item)
		}
	}
	return results
}

// items returns a list's elements, or nil for atoms.
func items(s kicadsexp.Sexp) []kicadsexp.Sexp {
	if list, ok := s.(*kicadsexp.List); ok {
		return list.Elements()
	}
	return nil
}

// nodeName returns the keyword of a child list, or "" for atoms.
func nodeName(s kicadsexp.Sexp) string {
	list, ok := s.(*kicadsexp.List)
	if !ok || list.Len() == 0 {
		return ""
	}
	if sym, ok := list.Get(0).(kicadsexp.Symbol); ok {
		return string(sym)
	}
	return ""
}

// Typed value extraction helpers

// GetString extracts an atom (quoted or not) at the given index in a list.
// Index 0 is the key, 1 is first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	all := items(s)
	if all == nil {
		return "", fmt.Errorf("expected list, got %v", s)
	}
	if index < 0 || index >= len(all) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(all))
	}

	switch v := all[index].(type) {
	case kicadsexp.Symbol:
		return string(v), nil
	case kicadsexp.Quoted:
		return string(v), nil
	}

	return "", fmt.Errorf("expected atom at index %d, got %T", index, all[index])
}

// GetQuotedString extracts a quoted string at the given index. Unquoted
// atoms are rejected so that keywords are never mistaken for payloads.
func GetQuotedString(s kicadsexp.Sexp, index int) (string, error) {
	all := items(s)
	if index < 0 || index >= len(all) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(all))
	}
	q, ok := all[index].(kicadsexp.Quoted)
	if !ok {
		return "", fmt.Errorf("expected quoted string at index %d, got %v", index, all[index])
	}
	return string(q), nil
}

// GetFloat extracts a float64 value at the given index
func GetFloat(s kicadsexp.Sexp, index int) (float64, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(s kicadsexp.Sexp, index int) (int, error) {
	str, err := GetString(s, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// HasSymbol checks if a list contains a specific unquoted atom
func HasSymbol(s kicadsexp.Sexp, symbol string) bool {
	for _, item := range items(s) {
		if sym, ok := item.(kicadsexp.Symbol); ok && string(sym) == symbol {
			return true
		}
	}
	return false
}

// GetNodeName returns the first symbol of a list (the node type/name)
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	if name := nodeName(s); name != "" {
		return name, nil
	}
	return "", fmt.Errorf("expected list starting with a symbol")
}

// Domain-specific extraction helpers

// GetPosition extracts a PositionAngle from an (at X Y [angle]) node
func GetPosition(s kicadsexp.Sexp) (PositionAngle, error) {
	key, err := GetString(s, 0)
	if err != nil {
		return PositionAngle{}, err
	}
	if key != "at" {
		return PositionAngle{}, fmt.Errorf("expected 'at', got %q", key)
	}

	pos, err := GetPositionXY(s)
	if err != nil {
		return PositionAngle{}, err
	}

	result := PositionAngle{Position: pos}

	// Angle is optional
	if len(items(s)) > 3 {
		angle, err := GetFloat(s, 3)
		if err != nil {
			return PositionAngle{}, fmt.Errorf("failed to parse angle: %w", err)
		}
		result.Angle = Angle(angle)
	}

	return result, nil
}

// GetPositionXY extracts X,Y from (keyword X Y ...)
// Used for (start X Y), (end X Y), (center X Y), (xy X Y), etc.
func GetPositionXY(s kicadsexp.Sexp) (Position, error) {
	x, err := GetFloat(s, 1)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse X: %w", err)
	}

	y, err := GetFloat(s, 2)
	if err != nil {
		return Position{}, fmt.Errorf("failed to parse Y: %w", err)
	}

	return Position{X: x, Y: y}, nil
}

// GetStroke extracts stroke properties from (stroke (width W) [(type T)])
func GetStroke(s kicadsexp.Sexp) (Stroke, error) {
	stroke := Stroke{Type: "default"}

	if widthNode, ok := FindNode(s, "width"); ok {
		width, err := GetFloat(widthNode, 1)
		if err != nil {
			return stroke, fmt.Errorf("failed to parse stroke width: %w", err)
		}
		stroke.Width = width
	}

	if typeNode, ok := FindNode(s, "type"); ok {
		strokeType, err := GetString(typeNode, 1)
		if err == nil {
			stroke.Type = strokeType
		}
	}

	return stroke, nil
}

// GetFill extracts fill properties from a (fill (type none|outline|background)) node
func GetFill(s kicadsexp.Sexp) (Fill, error) {
	fill := Fill{Type: "none"}

	if typeNode, ok := FindNode(s, "type"); ok {
		fillType, err := GetString(typeNode, 1)
		if err != nil {
			return fill, fmt.Errorf("failed to parse fill type: %w", err)
		}
		fill.Type = fillType
	}

	return fill, nil
}

// GetEffects extracts text effects from an (effects ...) node
func GetEffects(s kicadsexp.Sexp) (Effects, error) {
	effects := Effects{}

	if fontNode, ok := FindNode(s, "font"); ok {
		font, err := GetFont(fontNode)
		if err != nil {
			return effects, err
		}
		effects.Font = font
	}

	if justifyNode, ok := FindNode(s, "justify"); ok {
		effects.Justify = GetJustify(justifyNode)
	}

	effects.Hide = HasSymbol(s, "hide")

	return effects, nil
}

// GetFont extracts font properties from a (font (size H W) [italic] [bold]) node
func GetFont(s kicadsexp.Sexp) (Font, error) {
	font := Font{}

	if sizeNode, ok := FindNode(s, "size"); ok {
		h, err := GetFloat(sizeNode, 1)
		if err != nil {
			return font, fmt.Errorf("failed to parse font size: %w", err)
		}
		w, err := GetFloat(sizeNode, 2)
		if err != nil {
			return font, fmt.Errorf("failed to parse font size: %w", err)
		}
		font.Size = Size{Width: w, Height: h}
	}

	font.Bold = HasSymbol(s, "bold")
	font.Italic = HasSymbol(s, "italic")

	return font, nil
}

// GetJustify extracts justification from a (justify ...) node
func GetJustify(s kicadsexp.Sexp) Justify {
	justify := Justify{
		Horizontal: "center",
		Vertical:   "center",
	}

	for i, item := range items(s) {
		if i == 0 {
			continue
		}
		sym, ok := item.(kicadsexp.Symbol)
		if !ok {
			continue
		}
		switch string(sym) {
		case "left", "right":
			justify.Horizontal = string(sym)
		case "top", "bottom":
			justify.Vertical = string(sym)
		}
	}

	return justify
}

// GetProperty extracts a property from a (property "key" "value" (id N) (at X Y A) (effects ...)) node
func GetProperty(s kicadsexp.Sexp) (Property, error) {
	prop := Property{}

	key, err := GetQuotedString(s, 1)
	if err != nil {
		return prop, fmt.Errorf("failed to parse property key: %w", err)
	}
	prop.Key = key

	value, err := GetQuotedString(s, 2)
	if err != nil {
		return prop, fmt.Errorf("failed to parse property %q value: %w", key, err)
	}
	prop.Value = value

	if idNode, ok := FindNode(s, "id"); ok {
		id, err := GetInt(idNode, 1)
		if err != nil {
			return prop, fmt.Errorf("failed to parse property %q id: %w", key, err)
		}
		prop.ID = id
	}

	if atNode, ok := FindNode(s, "at"); ok {
		pos, err := GetPosition(atNode)
		if err != nil {
			return prop, fmt.Errorf("failed to parse property %q position: %w", key, err)
		}
		prop.Position = pos
	}

	if effectsNode, ok := FindNode(s, "effects"); ok {
		effects, err := GetEffects(effectsNode)
		if err != nil {
			return prop, fmt.Errorf("failed to parse property %q effects: %w", key, err)
		}
		prop.Effects = effects
	}

	return prop, nil
}

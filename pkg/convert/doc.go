// Package convert translates OrCAD Capture library symbols into KiCad 6
// symbol library text.
//
// Every primitive of a symbol (pin, line, rectangle, polygon, arc, ellipse,
// comment text) is read once from its orcad.Node into a typed record and
// knows how to render itself. Symbols are rendered into a private buffer
// and only reach the output when the whole symbol succeeded.
//
// Coordinates are OrCAD grid units scaled by Scale with the Y axis
// inverted. Straight-edged geometry and text anchors are rounded to two
// decimals on output; tessellated curves keep full precision.
package convert

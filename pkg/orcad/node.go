// Package orcad provides the attributed tree read from an OrCAD Capture
// XML library export.
//
// Every element of the export carries its scalar data in a <Defn> child
// whose XML attributes form the element's attribute record. All other
// children are kept as ordered child nodes. The tree is read-only once
// parsed; consumers pull typed values out of it with the accessor helpers
// below, which fail with ErrMissingAttribute or ErrMalformedAttribute.
package orcad

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMissingAttribute is returned when a required attribute or child
	// node is absent.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrMalformedAttribute is returned when an attribute is present but
	// cannot be converted to the requested type.
	ErrMalformedAttribute = errors.New("malformed attribute")
)

// Attr is a single name/value pair of a Defn record.
type Attr struct {
	Name  string
	Value string
}

// Defn is the attribute record of a node, in document order.
type Defn struct {
	Attrs []Attr
}

// Lookup returns the value of the named attribute.
func (d *Defn) Lookup(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	for _, a := range d.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Node is one element of the attributed tree.
type Node struct {
	Name     string  // Element name (e.g. "SymbolPinScalar")
	Defn     *Defn   // Attribute record, nil when the element has no <Defn>
	Children []*Node // Child elements other than <Defn>, in document order
}

// AttrError describes a failed attribute lookup.
type AttrError struct {
	Node string // Element name the lookup ran against
	Attr string // Attribute or child path
	Err  error  // ErrMissingAttribute or ErrMalformedAttribute (possibly wrapped)
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Node, e.Attr, e.Err)
}

func (e *AttrError) Unwrap() error { return e.Err }

// Child returns the first child with the given element name.
func (n *Node) Child(name string) (*Node, bool) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ChildrenNamed returns all children with the given element name, in
// document order.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Lookup returns an optional attribute of the node's own Defn.
func (n *Node) Lookup(name string) (string, bool) {
	return n.Defn.Lookup(name)
}

// Attr returns a required attribute of the node's own Defn.
func (n *Node) Attr(name string) (string, error) {
	if n.Defn == nil {
		return "", &AttrError{Node: n.Name, Attr: "Defn", Err: ErrMissingAttribute}
	}
	v, ok := n.Defn.Lookup(name)
	if !ok {
		return "", &AttrError{Node: n.Name, Attr: name, Err: ErrMissingAttribute}
	}
	return v, nil
}

// Int returns a required integer attribute.
func (n *Node) Int(name string) (int, error) {
	s, err := n.Attr(name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &AttrError{
			Node: n.Name,
			Attr: name,
			Err:  fmt.Errorf("%w: %q is not an integer", ErrMalformedAttribute, s),
		}
	}
	return v, nil
}

// Ints reads several required integer attributes at once, in order.
func (n *Node) Ints(names ...string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		v, err := n.Int(name)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// ChildAttr returns a required attribute of a child's Defn,
// e.g. ChildAttr("IsClock", "val").
func (n *Node) ChildAttr(child, name string) (string, error) {
	c, ok := n.Child(child)
	if !ok {
		return "", &AttrError{Node: n.Name, Attr: child, Err: ErrMissingAttribute}
	}
	v, err := c.Attr(name)
	if err != nil {
		return "", &AttrError{Node: n.Name, Attr: child + "/" + name, Err: ErrMissingAttribute}
	}
	return v, nil
}

// Flag reads a child's "val" attribute as a boolean ("1" is true).
func (n *Node) Flag(child string) (bool, error) {
	v, err := n.ChildAttr(child, "val")
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

// Walk calls fn for n and every descendant, depth first in document order.
func (n *Node) Walk(fn func(depth int, node *Node)) {
	n.walk(0, fn)
}

func (n *Node) walk(depth int, fn func(int, *Node)) {
	fn(depth, n)
	for _, c := range n.Children {
		c.walk(depth+1, fn)
	}
}

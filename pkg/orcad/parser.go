package orcad

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// DefnElement is the element name holding a node's attribute record.
const DefnElement = "Defn"

// ParseFile reads and parses an OrCAD XML export
func ParseFile(filename string) (*Node, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads an OrCAD XML export and returns its document element.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == DefnElement && len(stack) > 0 {
				parent := stack[len(stack)-1]
				if parent.Defn == nil {
					parent.Defn = newDefn(t.Attr)
				}
				// Defn is a leaf; skip whatever it might contain.
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("failed to parse xml: %w", err)
				}
				continue
			}

			node := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple document elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("empty document")
	}

	return root, nil
}

func newDefn(attrs []xml.Attr) *Defn {
	d := &Defn{Attrs: make([]Attr, 0, len(attrs))}
	for _, a := range attrs {
		d.Attrs = append(d.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	return d
}

// Packages returns every <Package> element below root in document order.
// root itself is returned when it is a package.
func Packages(root *Node) []*Node {
	var pkgs []*Node
	root.Walk(func(_ int, n *Node) {
		if n.Name == "Package" {
			pkgs = append(pkgs, n)
		}
	})
	return pkgs
}

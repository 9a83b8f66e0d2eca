package convert

import (
	"strconv"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// defn builds a node whose Defn holds the given name/value pairs
func defn(name string, kv ...string) *orcad.Node {
	n := &orcad.Node{Name: name, Defn: &orcad.Defn{}}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Defn.Attrs = append(n.Defn.Attrs, orcad.Attr{Name: kv[i], Value: kv[i+1]})
	}
	return n
}

func with(n *orcad.Node, children ...*orcad.Node) *orcad.Node {
	n.Children = append(n.Children, children...)
	return n
}

func flagNode(name string, on bool) *orcad.Node {
	if on {
		return defn(name, "val", "1")
	}
	return defn(name, "val", "0")
}

func itoa(v int) string { return strconv.Itoa(v) }

func pinNode(position, name string, typ, hx, hy, sx, sy int, clock, dot bool) *orcad.Node {
	return with(
		defn("SymbolPinScalar",
			"name", name, "position", position, "type", itoa(typ),
			"hotptX", itoa(hx), "hotptY", itoa(hy),
			"startX", itoa(sx), "startY", itoa(sy)),
		flagNode("IsClock", clock),
		flagNode("IsDot", dot),
	)
}

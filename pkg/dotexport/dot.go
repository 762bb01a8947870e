// Package dotexport renders a built circuit graph as Graphviz DOT, one
// node per component and one node per wire, for visual inspection.
// Grounded on the original implementation's write_dot test fixture
// (dot_export_tests/simple_gate.dot): a digraph with component and wire
// nodes, edges following the same drives/driven-by relationship the
// simulator itself walks.
package dotexport

import (
	"fmt"
	"io"
	"reflect"

	"github.com/oisee/gatesim/pkg/builder"
	"github.com/oisee/gatesim/pkg/graph"
)

func wireLabel(g *graph.Graph, id graph.WireID) string {
	if name, ok := g.WireNames[id]; ok {
		return fmt.Sprintf("%s[%d]", name, g.Wires[id].Width)
	}
	return fmt.Sprintf("w%d[%d]", id, g.Wires[id].Width)
}

func componentLabel(g *graph.Graph, id graph.ComponentID) string {
	kind := reflect.TypeOf(g.Components[id]).Elem().Name()
	if name, ok := g.ComponentNames[id]; ok {
		return fmt.Sprintf("%s\\n%s", name, kind)
	}
	return kind
}

// Write renders b's built graph as a DOT digraph: one node per wire, one
// node per component, and edges from each component to the wires it
// drives and from each wire to the components reading it.
func Write(w io.Writer, b *builder.Builder) error {
	g := b.Graph()

	if _, err := fmt.Fprintln(w, "digraph gatesim {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    rankdir=LR;"); err != nil {
		return err
	}

	for id := range g.Wires {
		wid := graph.WireID(id)
		if _, err := fmt.Fprintf(w, "    w%d [shape=ellipse, label=%q];\n", wid, wireLabel(g, wid)); err != nil {
			return err
		}
	}
	for id := range g.Components {
		cid := graph.ComponentID(id)
		if _, err := fmt.Fprintf(w, "    c%d [shape=box, label=%q];\n", cid, componentLabel(g, cid)); err != nil {
			return err
		}
	}

	for id := range g.Wires {
		wid := graph.WireID(id)
		for _, oid := range g.Wires[wid].Drivers {
			cid := driverComponent(g, oid)
			if _, err := fmt.Fprintf(w, "    c%d -> w%d;\n", cid, wid); err != nil {
				return err
			}
		}
		for _, cid := range g.Wires[wid].Driving {
			if _, err := fmt.Fprintf(w, "    w%d -> c%d;\n", wid, cid); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func driverComponent(g *graph.Graph, oid graph.OutputID) graph.ComponentID {
	for id, base := range g.ComponentOutputBase {
		count := g.Components[id].OutputCount()
		if int(oid) >= base && int(oid) < base+count {
			return graph.ComponentID(id)
		}
	}
	return 0
}

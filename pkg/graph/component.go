package graph

import "github.com/oisee/gatesim/pkg/logic"

// Component is anything that reads wires from a Graph and drives one or
// more outputs. The original implementation split components into a
// `Small` inline enum and a `Large` boxed trait object purely as a memory
// layout optimization; in Go a plain interface already gives every
// implementation dynamic dispatch at the same cost, so that split collapses
// into "some Component implementations are small value types (the gates)
// and some carry owned backing storage (Register, RAM, ROM)" without a
// separate tag needed anywhere.
type Component interface {
	// OutputCount reports how many output slots this component owns.
	OutputCount() int

	// Update recomputes this component's outputs from the graph's current
	// wire states, writing results into outputs (len(outputs) ==
	// OutputCount()). It returns, per output index, whether that output's
	// value changed from what was already there.
	Update(g *Graph, outputs []logic.LogicState) []bool
}

// Graph is a fully built wire/component graph, ready to be driven by
// pkg/sim. Once built it is never mutated structurally; only wire and
// output states change during simulation.
type Graph struct {
	Wires      []Wire
	WireStates []logic.LogicState

	Components          []Component
	ComponentOutputBase []int // first OutputID for a component, indexed by ComponentID
	OutputStates        []logic.LogicState
	OutputWire          []WireID // which wire each OutputID drives

	WireNames      map[WireID]string
	ComponentNames map[ComponentID]string
}

// OutputRange returns the [start, end) OutputID range owned by c.
func (g *Graph) OutputRange(c ComponentID) (int, int) {
	start := g.ComponentOutputBase[c]
	return start, start + g.Components[c].OutputCount()
}

// UpdateComponent runs c's Update and writes any changed outputs back into
// g.OutputStates, returning the wires whose combined drive must be
// recomputed as a result (i.e. the wires those changed outputs drive).
func (g *Graph) UpdateComponent(id ComponentID) []WireID {
	start, end := g.OutputRange(id)
	outputs := g.OutputStates[start:end]
	changed := g.Components[id].Update(g, outputs)

	var dirty []WireID
	for i, wasChanged := range changed {
		if wasChanged {
			dirty = append(dirty, g.OutputWire[start+i])
		}
	}
	return dirty
}

// UpdateWire recombines a wire's drivers and reports the classification.
func (g *Graph) UpdateWire(id WireID) UpdateResult {
	w := &g.Wires[id]
	drivers := make([]logic.LogicState, len(w.Drivers))
	for i, oid := range w.Drivers {
		drivers[i] = g.OutputStates[oid]
	}
	return w.Update(&g.WireStates[id], drivers)
}

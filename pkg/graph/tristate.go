package graph

import "github.com/oisee/gatesim/pkg/logic"

// TriStateBufferArrayComponent is N independent tri-state buffers sharing
// one Enable wire, each driving its own output. This is the standard shape
// for a shared-bus driver bank (one component per bus participant, all
// wired to the same bus wire as drivers), restored from the original
// implementation: the distilled spec's single Buffer kind only covers one
// input at a time, but the conflict-detection path it's meant to exercise
// needs more than one live driver on a wire to ever actually fire.
type TriStateBufferArrayComponent struct {
	Inputs []WireID
	Enable WireID
}

func (c *TriStateBufferArrayComponent) OutputCount() int { return len(c.Inputs) }

func (c *TriStateBufferArrayComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	enable := g.WireStates[c.Enable].Bit(0)
	changed := make([]bool, len(c.Inputs))
	for i, w := range c.Inputs {
		result := logic.Buffer(g.WireStates[w], enable)
		changed[i] = !result.Equal(outputs[i])
		outputs[i] = result
	}
	return changed
}

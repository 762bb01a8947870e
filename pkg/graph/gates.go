package graph

import "github.com/oisee/gatesim/pkg/logic"

// BinaryGateKind selects which two-input bit-wise operator a BinaryGate
// applies. A single component type serves every width, since pkg/logic's
// word formulas are already bit-parallel across however many 32-bit words
// a wire needs — there is no separate "wide gate" kind to maintain.
type BinaryGateKind int

const (
	GateAnd BinaryGateKind = iota
	GateOr
	GateXor
	GateNand
	GateNor
	GateXnor
)

// BinaryGate applies a two-input bit-wise operator.
type BinaryGate struct {
	Kind BinaryGateKind
	A, B WireID
}

func (c *BinaryGate) OutputCount() int { return 1 }

func (c *BinaryGate) Update(g *Graph, outputs []logic.LogicState) []bool {
	a := g.WireStates[c.A]
	b := g.WireStates[c.B]
	var result logic.LogicState
	switch c.Kind {
	case GateAnd:
		result = logic.And(a, b)
	case GateOr:
		result = logic.Or(a, b)
	case GateXor:
		result = logic.Xor(a, b)
	case GateNand:
		result = logic.Nand(a, b)
	case GateNor:
		result = logic.Nor(a, b)
	case GateXnor:
		result = logic.Xnor(a, b)
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// NotGate applies bit-wise NOT.
type NotGate struct {
	Input WireID
}

func (c *NotGate) OutputCount() int { return 1 }

func (c *NotGate) Update(g *Graph, outputs []logic.LogicState) []bool {
	result := logic.Not(g.WireStates[c.Input])
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// BufferComponent is a tri-state buffer: Enable is a width-1 control wire.
type BufferComponent struct {
	Input, Enable WireID
}

func (c *BufferComponent) OutputCount() int { return 1 }

func (c *BufferComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	enable := g.WireStates[c.Enable].Bit(0)
	result := logic.Buffer(g.WireStates[c.Input], enable)
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// SliceComponent extracts OutWidth bits from Input starting at Offset.
type SliceComponent struct {
	Input    WireID
	Offset   int
	OutWidth logic.BitWidth
}

func (c *SliceComponent) OutputCount() int { return 1 }

func (c *SliceComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	result := logic.Slice(g.WireStates[c.Input], c.Offset, c.OutWidth)
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// MergeComponent concatenates Inputs LSB-first into a single wide output.
type MergeComponent struct {
	Inputs []WireID
}

func (c *MergeComponent) OutputCount() int { return 1 }

func (c *MergeComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	states := make([]logic.LogicState, len(c.Inputs))
	for i, w := range c.Inputs {
		states[i] = g.WireStates[w]
	}
	result := logic.MergeAll(states...)
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// ExtendKind selects how ExtendComponent widens its input.
type ExtendKind int

const (
	ExtendZero ExtendKind = iota
	ExtendSign
)

// ExtendComponent widens Input to OutWidth, zero- or sign-extending.
type ExtendComponent struct {
	Kind     ExtendKind
	Input    WireID
	OutWidth logic.BitWidth
}

func (c *ExtendComponent) OutputCount() int { return 1 }

func (c *ExtendComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	in := g.WireStates[c.Input]
	var result logic.LogicState
	if c.Kind == ExtendSign {
		result = logic.SignExtend(in, c.OutWidth)
	} else {
		result = logic.ZeroExtend(in, c.OutWidth)
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

package graph

import "github.com/oisee/gatesim/pkg/logic"

// AddComponent computes A + B + CarryIn. Outputs: [0] sum, [1] carry-out.
type AddComponent struct {
	A, B, CarryIn WireID
}

func (c *AddComponent) OutputCount() int { return 2 }

func (c *AddComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	sum, carry := logic.Add(g.WireStates[c.A], g.WireStates[c.B], g.WireStates[c.CarryIn].Bit(0))
	carryState := logic.FromBit(carry)
	changed0 := !sum.Equal(outputs[0])
	changed1 := !carryState.Equal(outputs[1])
	outputs[0] = sum
	outputs[1] = carryState
	return []bool{changed0, changed1}
}

// SubComponent computes A - B + CarryIn via A + NOT(B) + CarryIn.
type SubComponent struct {
	A, B, CarryIn WireID
}

func (c *SubComponent) OutputCount() int { return 2 }

func (c *SubComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	diff, carry := logic.Sub(g.WireStates[c.A], g.WireStates[c.B], g.WireStates[c.CarryIn].Bit(0))
	carryState := logic.FromBit(carry)
	changed0 := !diff.Equal(outputs[0])
	changed1 := !carryState.Equal(outputs[1])
	outputs[0] = diff
	outputs[1] = carryState
	return []bool{changed0, changed1}
}

// MulComponent computes the product of A and B, truncated to A's width.
type MulComponent struct {
	A, B WireID
}

func (c *MulComponent) OutputCount() int { return 1 }

func (c *MulComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	result := logic.Mul(g.WireStates[c.A], g.WireStates[c.B])
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// DivComponent computes the unsigned quotient A / B.
type DivComponent struct {
	A, B WireID
}

func (c *DivComponent) OutputCount() int { return 1 }

func (c *DivComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	result := logic.Div(g.WireStates[c.A], g.WireStates[c.B])
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// RemComponent computes the unsigned remainder A % B.
type RemComponent struct {
	A, B WireID
}

func (c *RemComponent) OutputCount() int { return 1 }

func (c *RemComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	result := logic.Rem(g.WireStates[c.A], g.WireStates[c.B])
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// ShiftKind selects the shift operator a ShiftComponent applies.
type ShiftKind int

const (
	ShiftLeftLogical ShiftKind = iota
	ShiftRightLogical
	ShiftRightArith
)

// ShiftComponent shifts Input by the amount on Amount.
type ShiftComponent struct {
	Kind          ShiftKind
	Input, Amount WireID
}

func (c *ShiftComponent) OutputCount() int { return 1 }

func (c *ShiftComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	in := g.WireStates[c.Input]
	amt := g.WireStates[c.Amount]
	var result logic.LogicState
	switch c.Kind {
	case ShiftLeftLogical:
		result = logic.ShiftLeft(in, amt)
	case ShiftRightLogical:
		result = logic.ShiftRight(in, amt)
	case ShiftRightArith:
		result = logic.ShiftRightArithmetic(in, amt)
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// CompareKind selects the relation a CompareComponent evaluates.
type CompareKind int

const (
	CmpEq CompareKind = iota
	CmpNeq
	CmpLtU
	CmpLeU
	CmpGtU
	CmpGeU
	CmpLtS
	CmpLeS
	CmpGtS
	CmpGeS
)

// CompareComponent evaluates a single relation between A and B, producing a
// width-1 result.
type CompareComponent struct {
	Kind CompareKind
	A, B WireID
}

func (c *CompareComponent) OutputCount() int { return 1 }

func (c *CompareComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	a := g.WireStates[c.A]
	b := g.WireStates[c.B]
	var result logic.LogicState
	switch c.Kind {
	case CmpEq:
		result = logic.Eq(a, b)
	case CmpNeq:
		result = logic.Neq(a, b)
	case CmpLtU:
		result = logic.LtU(a, b)
	case CmpLeU:
		result = logic.LeU(a, b)
	case CmpGtU:
		result = logic.GtU(a, b)
	case CmpGeU:
		result = logic.GeU(a, b)
	case CmpLtS:
		result = logic.LtS(a, b)
	case CmpLeS:
		result = logic.LeS(a, b)
	case CmpGtS:
		result = logic.GtS(a, b)
	case CmpGeS:
		result = logic.GeS(a, b)
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// HorizontalOp selects which reduction a HorizontalGateComponent applies,
// collapsing what would otherwise be six near-duplicate component kinds
// into one parametrized kind.
type HorizontalOp int

const (
	HAnd HorizontalOp = iota
	HOr
	HXor
	HNand
	HNor
	HXnor
)

// HorizontalGateComponent reduces every bit of Input down to a single bit.
type HorizontalGateComponent struct {
	Op    HorizontalOp
	Input WireID
}

func (c *HorizontalGateComponent) OutputCount() int { return 1 }

func (c *HorizontalGateComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	in := g.WireStates[c.Input]
	var result logic.LogicState
	switch c.Op {
	case HAnd:
		result = logic.ReduceAnd(in)
	case HOr:
		result = logic.ReduceOr(in)
	case HXor:
		result = logic.ReduceXor(in)
	case HNand:
		result = logic.ReduceNand(in)
	case HNor:
		result = logic.ReduceNor(in)
	case HXnor:
		result = logic.ReduceXnor(in)
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// PriorityDecoderComponent finds the highest-set bit in Input. Outputs:
// [0] index, [1] valid flag.
type PriorityDecoderComponent struct {
	Input WireID
}

func (c *PriorityDecoderComponent) OutputCount() int { return 2 }

func (c *PriorityDecoderComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	idx, valid := logic.PriorityEncoder(g.WireStates[c.Input])
	validState := logic.FromBit(valid)
	changed0 := !idx.Equal(outputs[0])
	changed1 := !validState.Equal(outputs[1])
	outputs[0] = idx
	outputs[1] = validState
	return []bool{changed0, changed1}
}

// MultiplexerComponent selects one of Inputs based on Select. An undefined
// or out-of-range Select poisons the output to X.
type MultiplexerComponent struct {
	Select WireID
	Inputs []WireID
	Width  logic.BitWidth
}

func (c *MultiplexerComponent) OutputCount() int { return 1 }

func (c *MultiplexerComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	sel := g.WireStates[c.Select]
	var result logic.LogicState
	if !sel.IsFullyDefined() {
		result = logic.Undefined(c.Width)
	} else {
		idx := sel.ToUint64()
		if idx >= uint64(len(c.Inputs)) {
			result = logic.Undefined(c.Width)
		} else {
			result = g.WireStates[c.Inputs[idx]]
		}
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

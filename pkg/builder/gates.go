package builder

import (
	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
)

func (b *Builder) addBinaryGate(kind graph.BinaryGateKind, a, bw, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, out); err != nil {
		return 0, err
	}
	gate := &graph.BinaryGate{Kind: kind, A: a, B: bw}
	return b.addComponent(gate, []graph.WireID{a, bw}, []graph.WireID{out})
}

// AddAndGate adds a bit-wise AND gate.
func (b *Builder) AddAndGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateAnd, a, bw, out)
}

// AddOrGate adds a bit-wise OR gate.
func (b *Builder) AddOrGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateOr, a, bw, out)
}

// AddXorGate adds a bit-wise XOR gate.
func (b *Builder) AddXorGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateXor, a, bw, out)
}

// AddNandGate adds a bit-wise NAND gate.
func (b *Builder) AddNandGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateNand, a, bw, out)
}

// AddNorGate adds a bit-wise NOR gate.
func (b *Builder) AddNorGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateNor, a, bw, out)
}

// AddXnorGate adds a bit-wise XNOR gate.
func (b *Builder) AddXnorGate(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addBinaryGate(graph.GateXnor, a, bw, out)
}

// AddNotGate adds a bit-wise NOT gate.
func (b *Builder) AddNotGate(input, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(input, out); err != nil {
		return 0, err
	}
	gate := &graph.NotGate{Input: input}
	return b.addComponent(gate, []graph.WireID{input}, []graph.WireID{out})
}

// AddBuffer adds a tri-state buffer. enable must be width-1.
func (b *Builder) AddBuffer(input, enable, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(input, out); err != nil {
		return 0, err
	}
	if w, err := b.WireWidth(enable); err != nil {
		return 0, err
	} else if w != 1 {
		return 0, ErrWireWidthIncompatible
	}
	gate := &graph.BufferComponent{Input: input, Enable: enable}
	return b.addComponent(gate, []graph.WireID{input, enable}, []graph.WireID{out})
}

// AddSlice extracts out.Width bits of input starting at bit offset.
func (b *Builder) AddSlice(input graph.WireID, offset int, out graph.WireID) (graph.ComponentID, error) {
	inWidth, err := b.WireWidth(input)
	if err != nil {
		return 0, err
	}
	outWidth, err := b.WireWidth(out)
	if err != nil {
		return 0, err
	}
	if offset < 0 || offset+int(outWidth) > int(inWidth) {
		return 0, ErrOffsetOutOfRange
	}
	gate := &graph.SliceComponent{Input: input, Offset: offset, OutWidth: outWidth}
	return b.addComponent(gate, []graph.WireID{input}, []graph.WireID{out})
}

// AddMerge concatenates inputs LSB-first into out. The sum of input widths
// must equal out's width.
func (b *Builder) AddMerge(inputs []graph.WireID, out graph.WireID) (graph.ComponentID, error) {
	if len(inputs) < 2 {
		return 0, ErrTooFewInputs
	}
	outWidth, err := b.WireWidth(out)
	if err != nil {
		return 0, err
	}
	total := logic.BitWidth(0)
	for _, w := range inputs {
		iw, err := b.WireWidth(w)
		if err != nil {
			return 0, err
		}
		total += iw
	}
	if total != outWidth {
		return 0, ErrWireWidthIncompatible
	}
	gate := &graph.MergeComponent{Inputs: append([]graph.WireID(nil), inputs...)}
	return b.addComponent(gate, inputs, []graph.WireID{out})
}

func (b *Builder) addExtend(kind graph.ExtendKind, input, out graph.WireID) (graph.ComponentID, error) {
	inWidth, err := b.WireWidth(input)
	if err != nil {
		return 0, err
	}
	outWidth, err := b.WireWidth(out)
	if err != nil {
		return 0, err
	}
	if outWidth < inWidth {
		return 0, ErrWireWidthIncompatible
	}
	gate := &graph.ExtendComponent{Kind: kind, Input: input, OutWidth: outWidth}
	return b.addComponent(gate, []graph.WireID{input}, []graph.WireID{out})
}

// AddZeroExtend widens input into out, zero-filling the high bits.
func (b *Builder) AddZeroExtend(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addExtend(graph.ExtendZero, input, out)
}

// AddSignExtend widens input into out, replicating input's sign bit.
func (b *Builder) AddSignExtend(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addExtend(graph.ExtendSign, input, out)
}

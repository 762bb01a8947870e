package builder

import (
	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
)

// AddAdder adds A + B + carryIn. sum must share A and B's width; carryIn
// and carryOut are width-1.
func (b *Builder) AddAdder(a, bw, carryIn, sum, carryOut graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, sum); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(carryIn); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(carryOut); err != nil {
		return 0, err
	}
	gate := &graph.AddComponent{A: a, B: bw, CarryIn: carryIn}
	return b.addComponent(gate, []graph.WireID{a, bw, carryIn}, []graph.WireID{sum, carryOut})
}

// AddSubtractor adds A - B + carryIn (A + NOT(B) + carryIn).
func (b *Builder) AddSubtractor(a, bw, carryIn, diff, carryOut graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, diff); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(carryIn); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(carryOut); err != nil {
		return 0, err
	}
	gate := &graph.SubComponent{A: a, B: bw, CarryIn: carryIn}
	return b.addComponent(gate, []graph.WireID{a, bw, carryIn}, []graph.WireID{diff, carryOut})
}

// AddMultiplier adds a multiplier producing the low out.Width bits of A*B.
// A, B and out must share a width.
func (b *Builder) AddMultiplier(a, bw, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, out); err != nil {
		return 0, err
	}
	gate := &graph.MulComponent{A: a, B: bw}
	return b.addComponent(gate, []graph.WireID{a, bw}, []graph.WireID{out})
}

// AddDivider adds an unsigned divider A / B.
func (b *Builder) AddDivider(a, bw, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, out); err != nil {
		return 0, err
	}
	gate := &graph.DivComponent{A: a, B: bw}
	return b.addComponent(gate, []graph.WireID{a, bw}, []graph.WireID{out})
}

// AddRemainder adds an unsigned remainder A % B.
func (b *Builder) AddRemainder(a, bw, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw, out); err != nil {
		return 0, err
	}
	gate := &graph.RemComponent{A: a, B: bw}
	return b.addComponent(gate, []graph.WireID{a, bw}, []graph.WireID{out})
}

func (b *Builder) addShift(kind graph.ShiftKind, input, amount, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(input, out); err != nil {
		return 0, err
	}
	if err := b.checkWireID(amount); err != nil {
		return 0, err
	}
	gate := &graph.ShiftComponent{Kind: kind, Input: input, Amount: amount}
	return b.addComponent(gate, []graph.WireID{input, amount}, []graph.WireID{out})
}

// AddShiftLeft adds a logical left shift.
func (b *Builder) AddShiftLeft(input, amount, out graph.WireID) (graph.ComponentID, error) {
	return b.addShift(graph.ShiftLeftLogical, input, amount, out)
}

// AddShiftRight adds a logical right shift.
func (b *Builder) AddShiftRight(input, amount, out graph.WireID) (graph.ComponentID, error) {
	return b.addShift(graph.ShiftRightLogical, input, amount, out)
}

// AddShiftRightArithmetic adds an arithmetic (sign-extending) right shift.
func (b *Builder) AddShiftRightArithmetic(input, amount, out graph.WireID) (graph.ComponentID, error) {
	return b.addShift(graph.ShiftRightArith, input, amount, out)
}

func (b *Builder) addCompare(kind graph.CompareKind, a, bw, out graph.WireID) (graph.ComponentID, error) {
	if _, err := b.checkWidthsMatch(a, bw); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(out); err != nil {
		return 0, err
	}
	gate := &graph.CompareComponent{Kind: kind, A: a, B: bw}
	return b.addComponent(gate, []graph.WireID{a, bw}, []graph.WireID{out})
}

// AddEqual adds an equality comparator.
func (b *Builder) AddEqual(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpEq, a, bw, out)
}

// AddNotEqual adds an inequality comparator.
func (b *Builder) AddNotEqual(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpNeq, a, bw, out)
}

// AddLessThanUnsigned adds an unsigned < comparator.
func (b *Builder) AddLessThanUnsigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpLtU, a, bw, out)
}

// AddLessEqualUnsigned adds an unsigned <= comparator.
func (b *Builder) AddLessEqualUnsigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpLeU, a, bw, out)
}

// AddGreaterThanUnsigned adds an unsigned > comparator.
func (b *Builder) AddGreaterThanUnsigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpGtU, a, bw, out)
}

// AddGreaterEqualUnsigned adds an unsigned >= comparator.
func (b *Builder) AddGreaterEqualUnsigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpGeU, a, bw, out)
}

// AddLessThanSigned adds a signed < comparator.
func (b *Builder) AddLessThanSigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpLtS, a, bw, out)
}

// AddLessEqualSigned adds a signed <= comparator.
func (b *Builder) AddLessEqualSigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpLeS, a, bw, out)
}

// AddGreaterThanSigned adds a signed > comparator.
func (b *Builder) AddGreaterThanSigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpGtS, a, bw, out)
}

// AddGreaterEqualSigned adds a signed >= comparator.
func (b *Builder) AddGreaterEqualSigned(a, bw, out graph.WireID) (graph.ComponentID, error) {
	return b.addCompare(graph.CmpGeS, a, bw, out)
}

func (b *Builder) addHorizontal(op graph.HorizontalOp, input, out graph.WireID) (graph.ComponentID, error) {
	if err := b.checkWireID(input); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(out); err != nil {
		return 0, err
	}
	gate := &graph.HorizontalGateComponent{Op: op, Input: input}
	return b.addComponent(gate, []graph.WireID{input}, []graph.WireID{out})
}

// AddHorizontalAnd ANDs together every bit of input.
func (b *Builder) AddHorizontalAnd(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HAnd, input, out)
}

// AddHorizontalOr ORs together every bit of input.
func (b *Builder) AddHorizontalOr(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HOr, input, out)
}

// AddHorizontalXor XORs together every bit of input (parity).
func (b *Builder) AddHorizontalXor(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HXor, input, out)
}

// AddHorizontalNand is NOT(AddHorizontalAnd).
func (b *Builder) AddHorizontalNand(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HNand, input, out)
}

// AddHorizontalNor is NOT(AddHorizontalOr).
func (b *Builder) AddHorizontalNor(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HNor, input, out)
}

// AddHorizontalXnor is NOT(AddHorizontalXor).
func (b *Builder) AddHorizontalXnor(input, out graph.WireID) (graph.ComponentID, error) {
	return b.addHorizontal(graph.HXnor, input, out)
}

// AddPriorityDecoder adds a priority decoder over input, producing an index
// wire and a width-1 valid wire.
func (b *Builder) AddPriorityDecoder(input, index, valid graph.WireID) (graph.ComponentID, error) {
	if err := b.checkWireID(input); err != nil {
		return 0, err
	}
	if err := b.checkWireID(index); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(valid); err != nil {
		return 0, err
	}
	gate := &graph.PriorityDecoderComponent{Input: input}
	return b.addComponent(gate, []graph.WireID{input}, []graph.WireID{index, valid})
}

// AddMultiplexer selects one of inputs based on select, driving out.
func (b *Builder) AddMultiplexer(sel graph.WireID, inputs []graph.WireID, out graph.WireID) (graph.ComponentID, error) {
	if len(inputs) < 2 {
		return 0, ErrTooFewInputs
	}
	outWidth, err := b.checkWidthsMatch(append(append([]graph.WireID(nil), inputs...), out)...)
	if err != nil {
		return 0, err
	}
	if err := b.checkWireID(sel); err != nil {
		return 0, err
	}
	gate := &graph.MultiplexerComponent{Select: sel, Inputs: append([]graph.WireID(nil), inputs...), Width: outWidth}
	return b.addComponent(gate, append([]graph.WireID{sel}, inputs...), []graph.WireID{out})
}

// AddRegister adds an edge-triggered register capturing data on clock's
// active edge (polarity) while enable is Logic1.
func (b *Builder) AddRegister(data, clock, enable, out graph.WireID, polarity graph.Edge) (graph.ComponentID, error) {
	width, err := b.checkWidthsMatch(data, out)
	if err != nil {
		return 0, err
	}
	if err := b.checkBitWire(clock); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(enable); err != nil {
		return 0, err
	}
	gate := graph.NewRegisterComponent(data, clock, enable, width, polarity)
	return b.addComponent(gate, []graph.WireID{data, clock, enable}, []graph.WireID{out})
}

// AddRAM adds a read/write memory. Reads are combinational; writes are
// captured on clock's active edge (polarity) while write is Logic1.
func (b *Builder) AddRAM(addr, data, write, clock, out graph.WireID, polarity graph.Edge) (graph.ComponentID, error) {
	addrWidth, err := b.WireWidth(addr)
	if err != nil {
		return 0, err
	}
	dataWidth, err := b.checkWidthsMatch(data, out)
	if err != nil {
		return 0, err
	}
	if err := b.checkBitWire(write); err != nil {
		return 0, err
	}
	if err := b.checkBitWire(clock); err != nil {
		return 0, err
	}
	gate := graph.NewRAMComponent(addr, data, write, clock, addrWidth, dataWidth, polarity)
	return b.addComponent(gate, []graph.WireID{addr, data, write, clock}, []graph.WireID{out})
}

// AddROM adds a read-only memory with fixed initial contents, addressed
// combinationally by addr.
func (b *Builder) AddROM(addr, out graph.WireID, initial []logic.LogicState) (graph.ComponentID, error) {
	addrWidth, err := b.WireWidth(addr)
	if err != nil {
		return 0, err
	}
	dataWidth, err := b.WireWidth(out)
	if err != nil {
		return 0, err
	}
	for _, v := range initial {
		if v.Width != dataWidth {
			return 0, ErrWireWidthIncompatible
		}
	}
	gate := graph.NewROMComponent(addr, addrWidth, dataWidth, initial)
	return b.addComponent(gate, []graph.WireID{addr}, []graph.WireID{out})
}

// AddTriStateBufferArray adds len(inputs) independent tri-state buffers
// sharing enable, each driving the corresponding wire in outputs.
func (b *Builder) AddTriStateBufferArray(inputs []graph.WireID, enable graph.WireID, outputs []graph.WireID) (graph.ComponentID, error) {
	if len(inputs) == 0 {
		return 0, ErrTooFewInputs
	}
	if len(inputs) != len(outputs) {
		return 0, ErrInvalidInputCount
	}
	for i := range inputs {
		if _, err := b.checkWidthsMatch(inputs[i], outputs[i]); err != nil {
			return 0, err
		}
	}
	if err := b.checkBitWire(enable); err != nil {
		return 0, err
	}
	gate := &graph.TriStateBufferArrayComponent{Inputs: append([]graph.WireID(nil), inputs...), Enable: enable}
	return b.addComponent(gate, append(append([]graph.WireID(nil), inputs...), enable), outputs)
}

func (b *Builder) checkBitWire(w graph.WireID) error {
	width, err := b.WireWidth(w)
	if err != nil {
		return err
	}
	if width != 1 {
		return ErrWireWidthIncompatible
	}
	return nil
}

package logic

// shiftAmount returns the shift distance as a plain int, and whether the
// amount is usable (fully defined). An undefined shift amount poisons the
// entire result, since a single control bit decides the position of every
// output bit.
func shiftAmount(amount LogicState) (int, bool) {
	if !amount.IsFullyDefined() {
		return 0, false
	}
	return int(amount.rawValue().Int64()), true
}

// ShiftLeft shifts input left by amount bits, shifting in Logic0 at the
// low end. Bits shifted out the top are discarded. An undefined amount, or
// an amount that is Z, yields an all-X result.
func ShiftLeft(input LogicState, amount LogicState) LogicState {
	width := input.Width
	n, ok := shiftAmount(amount)
	if !ok {
		return Undefined(width)
	}
	out := Zero(width)
	if n >= int(width) {
		return out
	}
	for i := int(width) - 1; i >= n; i-- {
		out.SetBit(uint32(i), input.Bit(uint32(i-n)))
	}
	return out
}

// ShiftRight shifts input right (logically) by amount bits, shifting in
// Logic0 at the high end.
func ShiftRight(input LogicState, amount LogicState) LogicState {
	width := input.Width
	n, ok := shiftAmount(amount)
	if !ok {
		return Undefined(width)
	}
	out := Zero(width)
	if n >= int(width) {
		return out
	}
	for i := 0; i < int(width)-n; i++ {
		out.SetBit(uint32(i), input.Bit(uint32(i+n)))
	}
	return out
}

// ShiftRightArithmetic shifts input right by amount bits, replicating the
// sign bit at the high end instead of filling with Logic0.
func ShiftRightArithmetic(input LogicState, amount LogicState) LogicState {
	width := input.Width
	n, ok := shiftAmount(amount)
	if !ok {
		return Undefined(width)
	}
	sign := input.Bit(uint32(width) - 1)
	out := Zero(width)
	for i := 0; i < int(width); i++ {
		out.SetBit(uint32(i), sign)
	}
	if n >= int(width) {
		return out
	}
	for i := 0; i < int(width)-n; i++ {
		out.SetBit(uint32(i), input.Bit(uint32(i+n)))
	}
	return out
}

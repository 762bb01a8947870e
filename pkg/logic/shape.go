package logic

// Slice extracts outWidth bits starting at bit offset o (LSB-first) from
// input. Callers (pkg/builder) are responsible for checking
// offset+outWidth <= input.Width before calling.
func Slice(input LogicState, offset int, outWidth BitWidth) LogicState {
	out := Zero(outWidth)
	for i := 0; i < int(outWidth); i++ {
		out.SetBit(uint32(i), input.Bit(uint32(offset+i)))
	}
	return out
}

// Merge concatenates a and b LSB-first: a occupies the low a.Width bits
// of the result, b occupies the next b.Width bits.
func Merge(a, b LogicState) LogicState {
	return MergeAll(a, b)
}

// MergeAll concatenates any number of inputs LSB-first. The sum of input
// widths must equal the desired output width; callers validate this at
// build time (pkg/builder).
func MergeAll(ins ...LogicState) LogicState {
	total := 0
	for _, in := range ins {
		total += int(in.Width)
	}
	out := Zero(BitWidth(total))
	pos := 0
	for _, in := range ins {
		for i := 0; i < int(in.Width); i++ {
			out.SetBit(uint32(pos+i), in.Bit(uint32(i)))
		}
		pos += int(in.Width)
	}
	return out
}

// ZeroExtend widens input to outWidth, padding both planes with 0 (a
// defined Logic0 in the new high bits).
func ZeroExtend(input LogicState, outWidth BitWidth) LogicState {
	out := Zero(outWidth)
	for i := 0; i < int(input.Width); i++ {
		out.SetBit(uint32(i), input.Bit(uint32(i)))
	}
	return out
}

// SignExtend widens input to outWidth, replicating the sign bit (the
// input's top bit, on both planes) into the new high bits. A Z or X sign
// bit is therefore replicated as Z or X.
func SignExtend(input LogicState, outWidth BitWidth) LogicState {
	out := Zero(outWidth)
	for i := 0; i < int(input.Width); i++ {
		out.SetBit(uint32(i), input.Bit(uint32(i)))
	}
	sign := input.Bit(uint32(input.Width) - 1)
	for i := int(input.Width); i < int(outWidth); i++ {
		out.SetBit(uint32(i), sign)
	}
	return out
}

package logic

// PriorityEncoder returns the index of the highest-set bit in input (bit
// width-1 wins over bit 0) together with a valid flag. If no bit is set,
// valid is Logic0 and the index is 0. A Z or X bit at or above the highest
// Logic1 makes the outcome ambiguous (it might itself be the true winner),
// so both the index and valid become X.
func PriorityEncoder(input LogicState) (LogicState, Bit) {
	width := int(input.Width)
	indexBits := Log2Ceil(width)
	if indexBits == 0 {
		indexBits = 1
	}
	outWidth := BitWidth(indexBits)
	for i := width - 1; i >= 0; i-- {
		switch input.Bit(uint32(i)) {
		case Bit1:
			return FromUint64(uint64(i), outWidth), Bit1
		case BitX, BitZ:
			return Undefined(outWidth), BitX
		}
	}
	return Zero(outWidth), Bit0
}

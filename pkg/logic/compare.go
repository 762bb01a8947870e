package logic

import "math/big"

// Eq compares a and b bit-wise and returns a width-1 result: Logic1 if
// every bit matches, Logic0 if any bit differs, X if either operand
// carries a Z/X bit (the comparison cannot be decided).
func Eq(a, b LogicState) LogicState {
	if !a.IsFullyDefined() || !b.IsFullyDefined() {
		return FromBit(BitX)
	}
	if a.rawValue().Cmp(b.rawValue()) == 0 {
		return FromBit(Bit1)
	}
	return FromBit(Bit0)
}

// Neq is NOT(Eq(a, b)).
func Neq(a, b LogicState) LogicState { return Not(Eq(a, b)) }

// comparison results are all-or-nothing: any undefined input bit makes the
// ordering undecidable, so the whole result is X.
func compareUnsigned(a, b LogicState, pred func(c int) bool) LogicState {
	if !a.IsFullyDefined() || !b.IsFullyDefined() {
		return FromBit(BitX)
	}
	if pred(a.rawValue().Cmp(b.rawValue())) {
		return FromBit(Bit1)
	}
	return FromBit(Bit0)
}

// LtU reports unsigned a < b.
func LtU(a, b LogicState) LogicState { return compareUnsigned(a, b, func(c int) bool { return c < 0 }) }

// LeU reports unsigned a <= b.
func LeU(a, b LogicState) LogicState { return compareUnsigned(a, b, func(c int) bool { return c <= 0 }) }

// GtU reports unsigned a > b.
func GtU(a, b LogicState) LogicState { return compareUnsigned(a, b, func(c int) bool { return c > 0 }) }

// GeU reports unsigned a >= b.
func GeU(a, b LogicState) LogicState { return compareUnsigned(a, b, func(c int) bool { return c >= 0 }) }

// signedValue interprets s's raw bits as a two's-complement signed integer.
func signedValue(s LogicState) *big.Int {
	v := s.rawValue()
	if s.Bit(uint32(s.Width)-1) == Bit1 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(s.Width))
		v.Sub(v, full)
	}
	return v
}

func compareSigned(a, b LogicState, pred func(c int) bool) LogicState {
	if !a.IsFullyDefined() || !b.IsFullyDefined() {
		return FromBit(BitX)
	}
	if pred(signedValue(a).Cmp(signedValue(b))) {
		return FromBit(Bit1)
	}
	return FromBit(Bit0)
}

// LtS reports signed a < b.
func LtS(a, b LogicState) LogicState { return compareSigned(a, b, func(c int) bool { return c < 0 }) }

// LeS reports signed a <= b.
func LeS(a, b LogicState) LogicState { return compareSigned(a, b, func(c int) bool { return c <= 0 }) }

// GtS reports signed a > b.
func GtS(a, b LogicState) LogicState { return compareSigned(a, b, func(c int) bool { return c > 0 }) }

// GeS reports signed a >= b.
func GeS(a, b LogicState) LogicState { return compareSigned(a, b, func(c int) bool { return c >= 0 }) }

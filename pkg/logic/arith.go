package logic

import "math/big"

// rawValue interprets plane 0 as an unsigned binary integer, ignoring
// definedness. Used internally by the arithmetic ops, which track
// definedness separately and poison the appropriate output bits to X.
func (s LogicState) rawValue() *big.Int {
	v := new(big.Int)
	for i := 0; i < int(s.Width); i++ {
		word, off := i/32, uint(i%32)
		if s.Plane0[word]&(1<<off) != 0 {
			v.SetBit(v, i, 1)
		}
	}
	return v
}

func stateFromBig(v *big.Int, width BitWidth) LogicState {
	out := Zero(width)
	for i := 0; i < int(width); i++ {
		if v.Bit(i) == 1 {
			out.SetBit(uint32(i), Bit1)
		}
	}
	return out
}

// ToUint64 returns the raw value of s as an unsigned integer, ignoring
// definedness. Intended for small control operands (mux select, shift
// amount) where the caller has already checked IsFullyDefined.
func (s LogicState) ToUint64() uint64 {
	return s.rawValue().Uint64()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// poisonFrom sets every bit at or above pos to X.
func poisonFrom(s LogicState, pos int) {
	for i := pos; i < int(s.Width); i++ {
		s.SetBit(uint32(i), BitX)
	}
}

// Add computes a + b + carryIn. If any input bit below some position is
// Z or X, every output bit from that position upward becomes X and the
// carry-out becomes X; an undefined carry-in poisons the whole result.
func Add(a, b LogicState, carryIn Bit) (LogicState, Bit) {
	width := a.Width
	taint := minInt(a.FirstInvalidBit(), b.FirstInvalidBit())
	if !carryIn.Defined() {
		taint = 0
	}

	sum := new(big.Int).Add(a.rawValue(), b.rawValue())
	if carryIn == Bit1 {
		sum.Add(sum, big.NewInt(1))
	}
	carryOutReal := sum.Bit(int(width))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	low := new(big.Int).And(sum, mask)

	result := stateFromBig(low, width)
	poisonFrom(result, taint)

	var carryOut Bit
	switch {
	case taint < int(width):
		carryOut = BitX
	case carryOutReal == 1:
		carryOut = Bit1
	default:
		carryOut = Bit0
	}
	return result, carryOut
}

// Sub computes a - b + carryIn via a + ^b + carryIn, matching the spec's
// SUB = a + NOT(b) + c formula exactly (NOT's own Z/X handling supplies
// the correct taint propagation for free).
func Sub(a, b LogicState, carryIn Bit) (LogicState, Bit) {
	return Add(a, Not(b), carryIn)
}

// Mul computes the low width bits of a * b. From the lowest Z/X bit
// present in either operand upward, output bits become X.
func Mul(a, b LogicState) LogicState {
	width := a.Width
	taint := minInt(a.FirstInvalidBit(), b.FirstInvalidBit())

	prod := new(big.Int).Mul(a.rawValue(), b.rawValue())
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	low := new(big.Int).And(prod, mask)

	result := stateFromBig(low, width)
	poisonFrom(result, taint)
	return result
}

// Div computes the unsigned quotient a / b. Division is all-or-nothing:
// if either operand has any undefined bit, or the divisor is zero, the
// entire result is X.
func Div(a, b LogicState) LogicState {
	if !a.IsFullyDefined() || !b.IsFullyDefined() {
		return Undefined(a.Width)
	}
	bv := b.rawValue()
	if bv.Sign() == 0 {
		return Undefined(a.Width)
	}
	q := new(big.Int).Quo(a.rawValue(), bv)
	return stateFromBig(q, a.Width)
}

// Rem computes the unsigned remainder a % b, with the same all-or-nothing
// undefined rule as Div.
func Rem(a, b LogicState) LogicState {
	if !a.IsFullyDefined() || !b.IsFullyDefined() {
		return Undefined(a.Width)
	}
	bv := b.rawValue()
	if bv.Sign() == 0 {
		return Undefined(a.Width)
	}
	r := new(big.Int).Rem(a.rawValue(), bv)
	return stateFromBig(r, a.Width)
}

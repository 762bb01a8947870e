package logic

import "testing"

func TestEqNeq(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(42, width)
	b := FromUint64(42, width)
	c := FromUint64(43, width)
	if got := Eq(a, b).Bit(0); got != Bit1 {
		t.Fatalf("Eq(42,42) = %s, want 1", got)
	}
	if got := Eq(a, c).Bit(0); got != Bit0 {
		t.Fatalf("Eq(42,43) = %s, want 0", got)
	}
	if got := Neq(a, c).Bit(0); got != Bit1 {
		t.Fatalf("Neq(42,43) = %s, want 1", got)
	}
}

func TestEqUndefinedIsX(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(42, width)
	b := Zero(width)
	b.SetBit(0, BitX)
	if got := Eq(a, b).Bit(0); got != BitX {
		t.Fatalf("Eq with undefined operand = %s, want X", got)
	}
}

func TestUnsignedOrdering(t *testing.T) {
	width := BitWidth(8)
	small := FromUint64(10, width)
	big := FromUint64(200, width)
	if got := LtU(small, big).Bit(0); got != Bit1 {
		t.Fatalf("LtU(10,200) = %s, want 1", got)
	}
	if got := GtU(big, small).Bit(0); got != Bit1 {
		t.Fatalf("GtU(200,10) = %s, want 1", got)
	}
	if got := LeU(small, small).Bit(0); got != Bit1 {
		t.Fatalf("LeU(10,10) = %s, want 1", got)
	}
	if got := GeU(small, small).Bit(0); got != Bit1 {
		t.Fatalf("GeU(10,10) = %s, want 1", got)
	}
}

func TestSignedOrderingTreatsTopBitAsSign(t *testing.T) {
	width := BitWidth(8)
	negOne := FromUint64(0xFF, width) // -1 in two's complement
	one := FromUint64(1, width)
	if got := LtS(negOne, one).Bit(0); got != Bit1 {
		t.Fatalf("signed -1 < 1 should hold, got %s", got)
	}
	if got := GtU(negOne, one).Bit(0); got != Bit1 {
		t.Fatalf("unsigned 0xFF > 1 should hold, got %s", got)
	}
}

func TestComparisonUndefinedIsAllOrNothing(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(5, width)
	b := Zero(width)
	b.SetBit(3, BitZ)
	if got := LtU(a, b).Bit(0); got != BitX {
		t.Fatalf("LtU with undefined operand = %s, want X", got)
	}
	if got := LtS(a, b).Bit(0); got != BitX {
		t.Fatalf("LtS with undefined operand = %s, want X", got)
	}
}

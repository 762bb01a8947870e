package logic

import "testing"

func TestShiftLeftBasic(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(0b00000011, width)
	amt := FromUint64(2, BitWidth(3))
	got := ShiftLeft(in, amt)
	want := FromUint64(0b00001100, width)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestShiftLeftOverflowsToZero(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(0xFF, width)
	amt := FromUint64(8, BitWidth(4))
	got := ShiftLeft(in, amt)
	if !got.Equal(Zero(width)) {
		t.Fatalf("expected all-zero after full shift-out, got %s", got)
	}
}

func TestShiftRightLogicalFillsZero(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(0x80, width)
	amt := FromUint64(4, BitWidth(3))
	got := ShiftRight(in, amt)
	want := FromUint64(0x08, width)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestShiftRightArithmeticFillsSign(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(0x80, width) // top bit set
	amt := FromUint64(4, BitWidth(3))
	got := ShiftRightArithmetic(in, amt)
	want := FromUint64(0xF8, width)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestShiftRightArithmeticPositiveFillsZero(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(0x40, width)
	amt := FromUint64(4, BitWidth(3))
	got := ShiftRightArithmetic(in, amt)
	want := FromUint64(0x04, width)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestShiftUndefinedAmountPoisonsAll(t *testing.T) {
	width := BitWidth(8)
	in := FromUint64(1, width)
	amt := Undefined(BitWidth(3))
	got := ShiftLeft(in, amt)
	if !got.Equal(Undefined(width)) {
		t.Fatalf("expected all-X, got %s", got)
	}
}

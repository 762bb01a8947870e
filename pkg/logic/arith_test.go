package logic

import "testing"

func TestAddBasic(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(200, width)
	b := FromUint64(100, width)
	sum, carry := Add(a, b, Bit0)
	if sum.Bit(0) == BitX {
		t.Fatalf("expected defined sum")
	}
	want := (200 + 100) & 0xFF
	for i := 0; i < 8; i++ {
		bit := sum.Bit(uint32(i))
		expect := Bit0
		if (want>>i)&1 == 1 {
			expect = Bit1
		}
		if bit != expect {
			t.Fatalf("bit %d: got %s want %s", i, bit, expect)
		}
	}
	if (200+100) >= 256 && carry != Bit1 {
		t.Fatalf("expected carry out, got %s", carry)
	}
}

func TestAddCarryChain(t *testing.T) {
	width := BitWidth(4)
	a := FromUint64(0xF, width)
	b := FromUint64(0x1, width)
	sum, carry := Add(a, b, Bit0)
	if !sum.Equal(Zero(width)) {
		t.Fatalf("expected wraparound to zero, got %s", sum)
	}
	if carry != Bit1 {
		t.Fatalf("expected carry 1, got %s", carry)
	}
}

func TestAddUndefinedCarryPoisonsEverything(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(1, width)
	b := FromUint64(1, width)
	sum, carry := Add(a, b, BitX)
	if sum.IsFullyDefined() {
		t.Fatalf("expected fully undefined sum, got %s", sum)
	}
	if carry != BitX {
		t.Fatalf("expected undefined carry out, got %s", carry)
	}
}

func TestAddPartialTaintPropagatesUpward(t *testing.T) {
	width := BitWidth(8)
	a := Zero(width)
	a.SetBit(0, Bit1)
	a.SetBit(3, BitX)
	b := Zero(width)
	sum, _ := Add(a, b, Bit0)
	for i := 0; i < 3; i++ {
		if sum.Bit(uint32(i)) == BitX {
			t.Fatalf("bit %d should remain defined below taint point", i)
		}
	}
	for i := 3; i < 8; i++ {
		if sum.Bit(uint32(i)) != BitX {
			t.Fatalf("bit %d should be poisoned to X, got %s", i, sum.Bit(uint32(i)))
		}
	}
}

func TestSubMatchesAddOfComplement(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(10, width)
	b := FromUint64(3, width)
	diff, _ := Sub(a, b, Bit1)
	for i := 0; i < 8; i++ {
		bit := diff.Bit(uint32(i))
		expect := Bit0
		if ((10-3)>>i)&1 == 1 {
			expect = Bit1
		}
		if bit != expect {
			t.Fatalf("bit %d: got %s want %s", i, bit, expect)
		}
	}
}

func TestMulBasic(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(12, width)
	b := FromUint64(10, width)
	prod := Mul(a, b)
	want := (12 * 10) & 0xFF
	for i := 0; i < 8; i++ {
		bit := prod.Bit(uint32(i))
		expect := Bit0
		if (want>>i)&1 == 1 {
			expect = Bit1
		}
		if bit != expect {
			t.Fatalf("bit %d: got %s want %s", i, bit, expect)
		}
	}
}

func TestMulTaintPropagation(t *testing.T) {
	width := BitWidth(8)
	a := Zero(width)
	a.SetBit(0, BitZ)
	b := FromUint64(5, width)
	prod := Mul(a, b)
	if prod.Bit(0) != BitX {
		t.Fatalf("bit 0 should be poisoned, got %s", prod.Bit(0))
	}
}

func TestDivRemAllOrNothing(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(17, width)
	b := FromUint64(5, width)
	q := Div(a, b)
	r := Rem(a, b)
	if q.Bit(0) == BitX && q.Bit(1) == BitX {
		t.Fatalf("expected defined quotient")
	}
	wantQ := 17 / 5
	wantR := 17 % 5
	for i := 0; i < 8; i++ {
		qb := Bit0
		if (wantQ>>i)&1 == 1 {
			qb = Bit1
		}
		if q.Bit(uint32(i)) != qb {
			t.Fatalf("quotient bit %d: got %s want %s", i, q.Bit(uint32(i)), qb)
		}
		rb := Bit0
		if (wantR>>i)&1 == 1 {
			rb = Bit1
		}
		if r.Bit(uint32(i)) != rb {
			t.Fatalf("remainder bit %d: got %s want %s", i, r.Bit(uint32(i)), rb)
		}
	}
}

func TestDivByZeroIsUndefined(t *testing.T) {
	width := BitWidth(8)
	a := FromUint64(17, width)
	b := Zero(width)
	q := Div(a, b)
	if !q.Equal(Undefined(width)) {
		t.Fatalf("expected all-X on division by zero, got %s", q)
	}
}

func TestDivPartiallyUndefinedOperandIsAllOrNothing(t *testing.T) {
	width := BitWidth(8)
	a := Zero(width)
	a.SetBit(0, BitX)
	b := FromUint64(5, width)
	q := Div(a, b)
	if !q.Equal(Undefined(width)) {
		t.Fatalf("expected all-X when dividend has any undefined bit, got %s", q)
	}
}

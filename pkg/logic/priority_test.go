package logic

import "testing"

func TestPriorityEncoderPicksHighestBit(t *testing.T) {
	width := BitWidth(8)
	in := Zero(width)
	in.SetBit(2, Bit1)
	in.SetBit(5, Bit1)
	idx, valid := PriorityEncoder(in)
	if valid != Bit1 {
		t.Fatalf("expected valid=1, got %s", valid)
	}
	if idx.rawValue().Int64() != 5 {
		t.Fatalf("expected index 5, got %s", idx)
	}
}

func TestPriorityEncoderNoRequest(t *testing.T) {
	width := BitWidth(8)
	in := Zero(width)
	idx, valid := PriorityEncoder(in)
	if valid != Bit0 {
		t.Fatalf("expected valid=0, got %s", valid)
	}
	if !idx.Equal(Zero(idx.Width)) {
		t.Fatalf("expected zero index, got %s", idx)
	}
}

func TestPriorityEncoderAmbiguousAboveWinnerIsX(t *testing.T) {
	width := BitWidth(8)
	in := Zero(width)
	in.SetBit(2, Bit1)
	in.SetBit(6, BitX)
	_, valid := PriorityEncoder(in)
	if valid != BitX {
		t.Fatalf("an undefined higher-index bit should make the outcome ambiguous, got valid=%s", valid)
	}
}

func TestPriorityEncoderDefinedBelowAmbiguousStillDecided(t *testing.T) {
	width := BitWidth(8)
	in := Zero(width)
	in.SetBit(1, BitX)
	in.SetBit(6, Bit1)
	idx, valid := PriorityEncoder(in)
	if valid != Bit1 {
		t.Fatalf("expected valid=1 since bit 6 wins outright, got %s", valid)
	}
	if idx.rawValue().Int64() != 6 {
		t.Fatalf("expected index 6, got %s", idx)
	}
}

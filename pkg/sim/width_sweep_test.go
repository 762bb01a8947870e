package sim_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/oisee/gatesim/pkg/builder"
	"github.com/oisee/gatesim/pkg/logic"
)

// widths sweeps every width spec §9's open question 1 calls out as a
// word-boundary edge case: exact word multiples, one-past, and one-before.
var widths = []logic.BitWidth{1, 7, 8, 31, 32, 33, 63, 64, 65, 255, 256}

func mask(width logic.BitWidth) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return m.Sub(m, big.NewInt(1))
}

func TestWidthSweepAdder(t *testing.T) {
	for _, w := range widths {
		w := w
		t.Run(fmt.Sprintf("%d", w), func(t *testing.T) {
			b := builder.New()
			a := b.AddWire(w)
			bw := b.AddWire(w)
			cin := b.AddWire(1)
			sum := b.AddWire(w)
			cout := b.AddWire(1)
			if _, err := b.AddAdder(a, bw, cin, sum, cout); err != nil {
				t.Fatalf("AddAdder: %v", err)
			}
			s := b.Build()

			av := mask(w)
			bv := big.NewInt(1)
			must(t, s.SetWireBaseDrive(a, fromBig(av, w)))
			must(t, s.SetWireBaseDrive(bw, fromBig(bv, w)))
			must(t, s.SetWireBaseDrive(cin, logic.FromBit(logic.Bit0)))

			if _, err := runToSettle(s); err != nil {
				t.Fatalf("run: %v", err)
			}
			sumState, _ := s.WireState(sum)
			if !sumState.Equal(logic.Zero(w)) {
				t.Fatalf("width %d: expected wraparound sum 0, got %s", w, sumState)
			}
			carryState, _ := s.WireState(cout)
			if carryState.Bit(0) != logic.Bit1 {
				t.Fatalf("width %d: expected carry out, got %s", w, carryState)
			}
		})
	}
}

func TestWidthSweepShiftLeft(t *testing.T) {
	for _, w := range widths {
		w := w
		t.Run(fmt.Sprintf("%d", w), func(t *testing.T) {
			b := builder.New()
			in := b.AddWire(w)
			amtWidth, err := logic.NewBitWidth(logic.Log2Ceil(int(w) + 1))
			if err != nil {
				t.Fatalf("NewBitWidth: %v", err)
			}
			amount := b.AddWire(amtWidth)
			out := b.AddWire(w)
			if _, err := b.AddShiftLeft(in, amount, out); err != nil {
				t.Fatalf("AddShiftLeft: %v", err)
			}
			s := b.Build()
			must(t, s.SetWireBaseDrive(in, logic.One(w)))
			must(t, s.SetWireBaseDrive(amount, logic.FromUint64(uint64(w), amtWidth)))

			if _, err := runToSettle(s); err != nil {
				t.Fatalf("run: %v", err)
			}
			outState, _ := s.WireState(out)
			if !outState.Equal(logic.Zero(w)) {
				t.Fatalf("width %d: shifting by the full width should saturate to 0, got %s", w, outState)
			}
		})
	}
}

func TestWidthSweepMultiplier(t *testing.T) {
	for _, w := range widths {
		w := w
		t.Run(fmt.Sprintf("%d", w), func(t *testing.T) {
			b := builder.New()
			a := b.AddWire(w)
			bw := b.AddWire(w)
			out := b.AddWire(w)
			if _, err := b.AddMultiplier(a, bw, out); err != nil {
				t.Fatalf("AddMultiplier: %v", err)
			}
			s := b.Build()
			must(t, s.SetWireBaseDrive(a, logic.Zero(w)))
			must(t, s.SetWireBaseDrive(bw, logic.One(w)))

			if _, err := runToSettle(s); err != nil {
				t.Fatalf("run: %v", err)
			}
			outState, _ := s.WireState(out)
			if !outState.Equal(logic.Zero(w)) {
				t.Fatalf("width %d: 0*anything should be 0, got %s", w, outState)
			}
		})
	}
}

func fromBig(v *big.Int, width logic.BitWidth) logic.LogicState {
	s := logic.Zero(width)
	for i := 0; i < int(width); i++ {
		if v.Bit(i) == 1 {
			s.SetBit(uint32(i), logic.Bit1)
		}
	}
	return s
}

func TestWidthSweepCapsAtMaxWidth(t *testing.T) {
	if logic.MaxWidth != 256 {
		t.Fatalf("expected MaxWidth 256, got %d", logic.MaxWidth)
	}
	if _, err := logic.NewBitWidth(257); err == nil {
		t.Fatalf("expected an error constructing a width beyond MaxWidth")
	}
}

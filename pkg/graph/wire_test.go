package graph

import (
	"testing"

	"github.com/oisee/gatesim/pkg/logic"
)

func TestWireUndrivenDefaultsToBaseDrive(t *testing.T) {
	w := Wire{Width: 4, BaseDrive: logic.HighZ(4)}
	state := logic.Zero(4)
	result := w.Update(&state, nil)
	if result != Changed {
		t.Fatalf("expected Changed on first update, got %v", result)
	}
	if !state.Equal(logic.HighZ(4)) {
		t.Fatalf("expected HighZ with no drivers, got %s", state)
	}
}

func TestWireSingleDriverPassesThrough(t *testing.T) {
	w := Wire{Width: 4, BaseDrive: logic.HighZ(4)}
	state := logic.Zero(4)
	driver := logic.FromUint64(0b1010, 4)
	result := w.Update(&state, []logic.LogicState{driver})
	if result != Changed {
		t.Fatalf("expected Changed, got %v", result)
	}
	if !state.Equal(driver) {
		t.Fatalf("expected state to match sole driver, got %s", state)
	}
}

func TestWireTwoDriversSameLogicLevelStillConflicts(t *testing.T) {
	w := Wire{Width: 1, BaseDrive: logic.HighZ(1)}
	state := logic.Zero(1)
	a := logic.FromBit(logic.Bit1)
	b := logic.FromBit(logic.Bit1)
	result := w.Update(&state, []logic.LogicState{a, b})
	if result != Conflict {
		t.Fatalf("expected Conflict between two Logic1 drivers, got %v", result)
	}
}

func TestWireTwoDriversConflict(t *testing.T) {
	w := Wire{Width: 1, BaseDrive: logic.HighZ(1)}
	state := logic.Zero(1)
	a := logic.FromBit(logic.Bit1)
	b := logic.FromBit(logic.Bit0)
	result := w.Update(&state, []logic.LogicState{a, b})
	if result != Conflict {
		t.Fatalf("expected Conflict between Logic1 and Logic0 drivers, got %v", result)
	}
}

func TestWireZDriverYieldsToOther(t *testing.T) {
	w := Wire{Width: 1, BaseDrive: logic.HighZ(1)}
	state := logic.Zero(1)
	z := logic.FromBit(logic.BitZ)
	one := logic.FromBit(logic.Bit1)
	result := w.Update(&state, []logic.LogicState{z, one})
	if result != Changed {
		t.Fatalf("expected Changed, got %v", result)
	}
	if state.Bit(0) != logic.Bit1 {
		t.Fatalf("Z driver should yield to Logic1, got %s", state)
	}
}

func TestWireDriverCombineSymmetric(t *testing.T) {
	width := logic.BitWidth(1)
	allBits := []logic.Bit{logic.Bit0, logic.Bit1, logic.BitZ, logic.BitX}
	for _, a := range allBits {
		for _, b := range allBits {
			w1 := Wire{Width: width, BaseDrive: logic.HighZ(width)}
			s1 := logic.Zero(width)
			w1.Update(&s1, []logic.LogicState{logic.FromBit(a), logic.FromBit(b)})

			w2 := Wire{Width: width, BaseDrive: logic.HighZ(width)}
			s2 := logic.Zero(width)
			w2.Update(&s2, []logic.LogicState{logic.FromBit(b), logic.FromBit(a)})

			if !s1.Equal(s2) {
				t.Fatalf("combine(%s,%s) = %s, combine(%s,%s) = %s: not symmetric", a, b, s1, b, a, s2)
			}
		}
	}
}

func TestWireUnchangedWhenSettled(t *testing.T) {
	w := Wire{Width: 4, BaseDrive: logic.HighZ(4)}
	state := logic.Zero(4)
	driver := logic.FromUint64(5, 4)
	w.Update(&state, []logic.LogicState{driver})
	result := w.Update(&state, []logic.LogicState{driver})
	if result != Unchanged {
		t.Fatalf("expected Unchanged on repeated identical update, got %v", result)
	}
}

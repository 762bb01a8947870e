package alloc

import (
	"testing"

	"github.com/oisee/gatesim/pkg/logic"
)

func TestAllocIDsAreStableAndSequential(t *testing.T) {
	a := New()
	id0, err := a.Alloc(logic.BitWidth(8))
	if err != nil {
		t.Fatal(err)
	}
	id1, err := a.Alloc(logic.BitWidth(16))
	if err != nil {
		t.Fatal(err)
	}
	if id0 != 0 || id1 != 1 {
		t.Fatalf("expected sequential ids 0,1, got %d,%d", id0, id1)
	}
	s0, ok := a.Get(id0)
	if !ok || s0.Width != 8 {
		t.Fatalf("unexpected state at id0: %v, ok=%v", s0, ok)
	}
	s1, ok := a.Get(id1)
	if !ok || s1.Width != 16 {
		t.Fatalf("unexpected state at id1: %v, ok=%v", s1, ok)
	}
}

func TestGetOutOfRange(t *testing.T) {
	a := New()
	if _, ok := a.Get(ID(0)); ok {
		t.Fatalf("expected out-of-range Get to fail on empty allocator")
	}
}

func TestSetMutatesSlot(t *testing.T) {
	a := New()
	id, _ := a.Alloc(logic.BitWidth(8))
	a.Set(id, logic.One(8))
	got, _ := a.Get(id)
	if !got.Equal(logic.One(8)) {
		t.Fatalf("expected slot to be overwritten, got %s", got)
	}
}

func TestRangeAndAll(t *testing.T) {
	a := New()
	a.Alloc(logic.BitWidth(1))
	a.Alloc(logic.BitWidth(1))
	a.Alloc(logic.BitWidth(1))
	if got := len(a.All()); got != 3 {
		t.Fatalf("expected 3 slots, got %d", got)
	}
	if got := len(a.Range(1, 3)); got != 2 {
		t.Fatalf("expected range of 2, got %d", got)
	}
}

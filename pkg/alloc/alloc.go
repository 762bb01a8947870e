// Package alloc is a bump allocator for LogicState values, keyed by a
// stable, never-recycled ID: an ID handed out once stays valid for the
// lifetime of the allocator. It is a standalone arena; pkg/graph and
// pkg/sim keep wire and output states in plain slices of their own and do
// not use it.
package alloc

import (
	"errors"

	"github.com/oisee/gatesim/pkg/logic"
)

// ID identifies a state slot. IDs are assigned in allocation order starting
// at 0 and are never reused.
type ID uint32

// ErrOutOfMemory is returned once the allocator has handed out MaxEntries
// slots. This mirrors the original arena's u32 overflow guard; Go's slices
// grow happily well past any width a real circuit would need, so this is a
// sanity ceiling rather than a real memory limit.
var ErrOutOfMemory = errors.New("alloc: out of memory")

// MaxEntries bounds the number of slots an Allocator will create.
const MaxEntries = 1 << 28

// Allocator hands out LogicState slots. It is a thin wrapper over a slice:
// unlike the original's hand-rolled raw-pointer arena (needed in Rust to
// avoid a GC), Go's runtime already gives a slice of values stable
// backing storage across appends-that-don't-reallocate-in-place, so the
// simplest correct representation is just "one LogicState per ID".
type Allocator struct {
	states []logic.LogicState
}

// New returns an empty allocator.
func New() *Allocator {
	return &Allocator{}
}

// Alloc reserves a new zero-initialized slot of the given width and
// returns its ID.
func (a *Allocator) Alloc(width logic.BitWidth) (ID, error) {
	if len(a.states) >= MaxEntries {
		return 0, ErrOutOfMemory
	}
	id := ID(len(a.states))
	a.states = append(a.states, logic.Zero(width))
	return id, nil
}

// Len returns the number of slots allocated so far.
func (a *Allocator) Len() int { return len(a.states) }

// Get returns the state at id, and whether id is in range.
func (a *Allocator) Get(id ID) (logic.LogicState, bool) {
	if int(id) >= len(a.states) {
		return logic.LogicState{}, false
	}
	return a.states[id], true
}

// Set overwrites the state at id with value. value's width must match the
// slot's width; callers are responsible for only ever writing same-width
// states back into a slot.
func (a *Allocator) Set(id ID, value logic.LogicState) {
	a.states[id] = value
}

// GetUnsafe returns the state at id without Get's in-range report: an
// out-of-range id panics. It takes no lock, so concurrent callers must
// never touch the same ID at once.
func (a *Allocator) GetUnsafe(id ID) logic.LogicState {
	return a.states[id]
}

// Range returns the contiguous slots [start, end).
func (a *Allocator) Range(start, end ID) []logic.LogicState {
	return a.states[start:end]
}

// All returns every allocated slot, in ID order.
func (a *Allocator) All() []logic.LogicState {
	return a.states
}

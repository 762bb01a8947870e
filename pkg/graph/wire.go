// Package graph holds the wire/component graph that a built simulation
// runs over: wires carry combined driven state, components read wires and
// drive others, and the two fan-out lists (Wire.Driving, Graph.OutputWire)
// are what the propagation engine in pkg/sim walks each phase.
package graph

import "github.com/oisee/gatesim/pkg/logic"

// WireID identifies a wire within a built Graph.
type WireID uint32

// OutputID identifies a single component output slot within a built
// Graph's flat OutputStates array.
type OutputID uint32

// ComponentID identifies a component within a built Graph.
type ComponentID uint32

// Wire is one node of the wire graph. Drivers are the component outputs
// that may drive it (zero, for an input/base-drive-only wire, up to many
// for a shared bus); Driving is the fan-out list of components that must
// be re-evaluated when the wire's combined state changes.
type Wire struct {
	Width    logic.BitWidth
	Drivers  []OutputID
	Driving  []ComponentID
	BaseDrive logic.LogicState // the wire's own drive when it has no component driver (e.g. a circuit input), defaults to HighZ
}

// UpdateResult classifies what combining a wire's drivers produced.
type UpdateResult int

const (
	Unchanged UpdateResult = iota
	Changed
	Conflict
)

// combineWord implements the two-driver combine rule from spec §4.3: any
// two non-Z drivers conflict; a Z driver always yields to the other.
// Derived from the original implementation's wire-combine formula, which
// is written over (state, valid) planes, by translating it into pkg/logic's
// (p0, p1) convention with p0 = state and p1 = NOT valid.
func combineWord(ap0, ap1, bp0, bp1 uint32) (o0, o1, conflict uint32) {
	o0 = ap0 | bp0
	o1 = ap1 & bp1
	conflict = (^ap1 & ^bp1) | (^ap1 & bp0) | (ap0 & ^bp1) | (ap0 & bp0)
	return
}

// combine folds a single driver's state into an accumulator, returning the
// new accumulator and whether this driver conflicted with what was already
// accumulated.
func combine(acc, driver logic.LogicState) (logic.LogicState, bool) {
	width := acc.Width
	out := logic.Zero(width)
	conflict := uint32(0)
	last := len(acc.Plane0) - 1
	for i := range acc.Plane0 {
		mask := uint32(0xFFFFFFFF)
		if i == last {
			mask = width.LastWordMask()
		}
		o0, o1, c := combineWord(acc.Plane0[i], acc.Plane1[i], driver.Plane0[i], driver.Plane1[i])
		out.Plane0[i] = o0 & mask
		out.Plane1[i] = o1 & mask
		conflict |= c & mask
	}
	return out, conflict != 0
}

// Update recomputes w's combined driven state from baseDrive and the
// current value of every driver in drivers, writing the result into
// *state. It reports whether the state changed and whether any two
// drivers conflicted.
func (w *Wire) Update(state *logic.LogicState, drivers []logic.LogicState) UpdateResult {
	acc := w.BaseDrive
	anyConflict := false
	for _, d := range drivers {
		var c bool
		acc, c = combine(acc, d)
		anyConflict = anyConflict || c
	}
	changed := !acc.Equal(*state)
	*state = acc
	switch {
	case anyConflict:
		return Conflict
	case changed:
		return Changed
	default:
		return Unchanged
	}
}

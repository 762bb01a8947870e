package sim

import (
	"encoding/gob"
	"io"

	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
)

// Snapshot is a point-in-time capture of a simulator's wire and output
// state plus the internal state of its stateful components (registers and
// RAM contents), suitable for gob encoding. Mirrors the save/resume shape
// of pkg/result.Checkpoint, adapted from search-progress state to
// circuit state.
type Snapshot struct {
	WireStates   []logic.LogicState
	OutputStates []logic.LogicState
	Registers    map[graph.ComponentID]registerSnapshot
	RAMs         map[graph.ComponentID]ramSnapshot
}

type registerSnapshot struct {
	Value logic.LogicState
}

type ramSnapshot struct {
	Contents []logic.LogicState
}

// Snapshot captures the simulator's current state.
func (s *Simulator) Snapshot() Snapshot {
	snap := Snapshot{
		WireStates:   make([]logic.LogicState, len(s.g.WireStates)),
		OutputStates: make([]logic.LogicState, len(s.g.OutputStates)),
		Registers:    make(map[graph.ComponentID]registerSnapshot),
		RAMs:         make(map[graph.ComponentID]ramSnapshot),
	}
	for i, v := range s.g.WireStates {
		snap.WireStates[i] = v.Clone()
	}
	for i, v := range s.g.OutputStates {
		snap.OutputStates[i] = v.Clone()
	}
	for id, c := range s.g.Components {
		switch comp := c.(type) {
		case *graph.RegisterComponent:
			snap.Registers[graph.ComponentID(id)] = registerSnapshot{Value: comp.Value().Clone()}
		case *graph.RAMComponent:
			contents := comp.Contents()
			cp := make([]logic.LogicState, len(contents))
			for i, v := range contents {
				cp[i] = v.Clone()
			}
			snap.RAMs[graph.ComponentID(id)] = ramSnapshot{Contents: cp}
		}
	}
	return snap
}

// RestoreSnapshot overwrites the simulator's current state with snap.
// BeginSim must be called again afterward before stepping, since the
// propagation queues are not part of the snapshot.
func (s *Simulator) RestoreSnapshot(snap Snapshot) error {
	if len(snap.WireStates) != len(s.g.WireStates) {
		return errShapeMismatch("wire")
	}
	if len(snap.OutputStates) != len(s.g.OutputStates) {
		return errShapeMismatch("output")
	}
	for i, v := range snap.WireStates {
		s.g.WireStates[i] = v.Clone()
	}
	for i, v := range snap.OutputStates {
		s.g.OutputStates[i] = v.Clone()
	}
	for id, reg := range snap.Registers {
		if int(id) >= len(s.g.Components) {
			return errShapeMismatch("register component id")
		}
		comp, ok := s.g.Components[id].(*graph.RegisterComponent)
		if !ok {
			return errShapeMismatch("register component kind")
		}
		comp.SetValue(reg.Value.Clone())
	}
	for id, ram := range snap.RAMs {
		if int(id) >= len(s.g.Components) {
			return errShapeMismatch("RAM component id")
		}
		comp, ok := s.g.Components[id].(*graph.RAMComponent)
		if !ok {
			return errShapeMismatch("RAM component kind")
		}
		comp.SetContents(ram.Contents)
	}
	s.started = false
	s.wireQueue = nil
	s.componentQueue = nil
	return nil
}

func errShapeMismatch(what string) error {
	return &snapshotMismatchError{what: what}
}

type snapshotMismatchError struct{ what string }

func (e *snapshotMismatchError) Error() string {
	return "sim: snapshot " + e.what + " does not match this simulator's graph"
}

// WriteSnapshot gob-encodes a snapshot to w.
func WriteSnapshot(w io.Writer, snap Snapshot) error {
	return gob.NewEncoder(w).Encode(snap)
}

// ReadSnapshot gob-decodes a snapshot from r.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	err := gob.NewDecoder(r).Decode(&snap)
	return snap, err
}

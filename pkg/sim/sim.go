// Package sim is the propagation engine that drives a built graph.Graph to
// a fixed point. It implements the same two-phase wire/component algorithm
// as the original implementation's Simulator (lib.rs), replacing rayon's
// parallel iterators with golang.org/x/sync/errgroup chunked over
// GOMAXPROCS, the same worker-pool shape the teacher used for its search
// workers (pkg/search/worker.go) but with errgroup's Go/Wait instead of
// hand-rolled channels. The phase goroutines return no errors; wire
// conflicts are gathered in a mutex-guarded slice and reported after the
// phase.
package sim

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
	"golang.org/x/sync/errgroup"
)

// minChunkSize mirrors the original implementation's MIN_CHUNK_SIZE: below
// this many queued items, splitting across goroutines isn't worth the
// synchronization overhead.
const minChunkSize = 100

// StepResult classifies the outcome of a single propagation step.
type StepResult int

const (
	Unchanged StepResult = iota
	Changed
)

// RunResult classifies the outcome of RunSim.
type RunResult int

const (
	Settled RunResult = iota
	MaxStepsReached
)

// SimulationError reports one or more wires that received conflicting
// drive from two or more components in the same step.
type SimulationError struct {
	Conflicts []graph.WireID
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("sim: %d wire(s) had conflicting drivers", len(e.Conflicts))
}

// ErrNotStarted is returned by StepSim if BeginSim was never called.
var ErrNotStarted = errors.New("sim: BeginSim must be called before StepSim")

// resettable is implemented by components that carry state surviving
// across propagation steps (RegisterComponent, RAMComponent).
type resettable interface {
	Reset()
}

// Simulator drives a graph.Graph to a fixed point, step by step.
type Simulator struct {
	g *graph.Graph

	wireQueue      []graph.WireID
	componentQueue []graph.ComponentID
	started        bool

	stepsRun          atomic.Uint64
	conflicts         atomic.Uint64
	wiresTouched      atomic.Uint64
	componentsTouched atomic.Uint64
}

// New wraps g in a Simulator, ready for BeginSim. g must not be mutated
// structurally afterward; only the values returned by WireState and
// OutputStates change during simulation.
func New(g *graph.Graph) *Simulator {
	return &Simulator{g: g}
}

// Graph returns the underlying graph, mainly for pkg/trace and
// pkg/dotexport to read names and topology from.
func (s *Simulator) Graph() *graph.Graph {
	return s.g
}

// WireWidth returns the width a wire was built with.
func (s *Simulator) WireWidth(w graph.WireID) (logic.BitWidth, error) {
	if err := s.checkWireID(w); err != nil {
		return 0, err
	}
	return s.g.Wires[w].Width, nil
}

// WireState returns a wire's last-computed combined state.
func (s *Simulator) WireState(w graph.WireID) (logic.LogicState, error) {
	if err := s.checkWireID(w); err != nil {
		return logic.LogicState{}, err
	}
	return s.g.WireStates[w], nil
}

// WireBaseDrive returns a wire's current base drive.
func (s *Simulator) WireBaseDrive(w graph.WireID) (logic.LogicState, error) {
	if err := s.checkWireID(w); err != nil {
		return logic.LogicState{}, err
	}
	return s.g.Wires[w].BaseDrive, nil
}

// SetWireBaseDrive overrides the state a wire carries absent any component
// driver, the mechanism circuit inputs use to feed in stimulus between
// steps.
func (s *Simulator) SetWireBaseDrive(w graph.WireID, drive logic.LogicState) error {
	if err := s.checkWireID(w); err != nil {
		return err
	}
	if drive.Width != s.g.Wires[w].Width {
		return fmt.Errorf("sim: base drive width %d does not match wire width %d", drive.Width, s.g.Wires[w].Width)
	}
	s.g.Wires[w].BaseDrive = drive
	return nil
}

func (s *Simulator) checkWireID(w graph.WireID) error {
	if int(w) >= len(s.g.Wires) {
		return fmt.Errorf("sim: invalid wire id %d", w)
	}
	return nil
}

// Stats reports how many component-update steps have run and how many
// wires/components have been re-evaluated since the simulator was created
// (or last had Reset called, which zeroes these counters), directly modeled on the running atomic
// counters of the teacher's WorkerPool (checked/found/completed).
func (s *Simulator) Stats() (stepsRun int, wiresTouched, componentsTouched uint64) {
	return int(s.stepsRun.Load()), s.wiresTouched.Load(), s.componentsTouched.Load()
}

// Conflicts reports how many conflicting-driver events have been observed
// since the simulator was created or last reset.
func (s *Simulator) Conflicts() uint64 {
	return s.conflicts.Load()
}

// Reset restores every wire and output to HighZ, resets any stateful
// component (registers, RAM) to its power-on state, and zeroes the Stats
// and Conflicts counters. BeginSim must be called again afterward.
func (s *Simulator) Reset() {
	for i := range s.g.WireStates {
		s.g.WireStates[i] = logic.HighZ(s.g.Wires[i].Width)
	}
	for i, oid := range s.g.OutputWire {
		s.g.OutputStates[i] = logic.HighZ(s.g.Wires[oid].Width)
	}
	for _, c := range s.g.Components {
		if r, ok := c.(resettable); ok {
			r.Reset()
		}
	}
	s.started = false
	s.wireQueue = nil
	s.componentQueue = nil
	s.stepsRun.Store(0)
	s.conflicts.Store(0)
	s.wiresTouched.Store(0)
	s.componentsTouched.Store(0)
}

// BeginSim seeds the wire queue with every wire and runs one wire phase,
// then seeds the component queue with every component and runs one
// component phase, whatever the wire phase reported (unless it reported a
// conflict). It returns after that component phase, so the wires the
// components drive are not yet recombined; StepSim or RunSim carries on
// from there. It must be called before StepSim.
func (s *Simulator) BeginSim(ctx context.Context) (StepResult, error) {
	s.wireQueue = make([]graph.WireID, len(s.g.Wires))
	for i := range s.wireQueue {
		s.wireQueue[i] = graph.WireID(i)
	}
	if result, err := s.updateWires(ctx); err != nil {
		s.started = true
		return result, err
	}

	s.componentQueue = make([]graph.ComponentID, len(s.g.Components))
	for i := range s.componentQueue {
		s.componentQueue[i] = graph.ComponentID(i)
	}
	s.started = true
	return s.updateComponents(ctx)
}

// StepSim advances the simulation by one wire-then-component phase using
// the queues left by the previous step. It reports Unchanged once the
// circuit has settled.
func (s *Simulator) StepSim(ctx context.Context) (StepResult, error) {
	if !s.started {
		return Unchanged, ErrNotStarted
	}
	result, err := s.updateWires(ctx)
	if err != nil || result == Unchanged {
		return result, err
	}
	return s.updateComponents(ctx)
}

// RunSim runs BeginSim followed by StepSim until the circuit settles or
// maxSteps steps have elapsed. Calling BeginSim first is not required.
func (s *Simulator) RunSim(ctx context.Context, maxSteps uint64) (RunResult, error) {
	result, err := s.BeginSim(ctx)
	if err != nil {
		return Settled, err
	}
	var step uint64
	for result == Changed {
		if step >= maxSteps {
			return MaxStepsReached, nil
		}
		step++
		result, err = s.StepSim(ctx)
		if err != nil {
			return Settled, err
		}
	}
	return Settled, nil
}

func chunkSize(n int) int {
	if n == 0 {
		return minChunkSize
	}
	numChunks := runtime.GOMAXPROCS(0) * 8
	size := (n + numChunks - 1) / numChunks
	if size < minChunkSize {
		size = minChunkSize
	}
	return size
}

// updateWires recombines every queued wire's driven state in parallel
// chunks, collecting any two-driver conflicts and the set of components
// whose inputs changed as a result.
func (s *Simulator) updateWires(ctx context.Context) (StepResult, error) {
	s.wireQueue = sortDedupWires(s.wireQueue)
	s.wiresTouched.Add(uint64(len(s.wireQueue)))

	var mu sync.Mutex
	var conflicts []graph.WireID
	nextQueue := make([][]graph.ComponentID, len(s.wireQueue)/chunkSize(len(s.wireQueue))+1)

	size := chunkSize(len(s.wireQueue))
	g, _ := errgroup.WithContext(ctx)
	for start := 0; start < len(s.wireQueue); start += size {
		start := start
		end := start + size
		if end > len(s.wireQueue) {
			end = len(s.wireQueue)
		}
		chunkIdx := start / size
		g.Go(func() error {
			var local []graph.ComponentID
			var localConflicts []graph.WireID
			for _, id := range s.wireQueue[start:end] {
				result := s.g.UpdateWire(id)
				switch result {
				case graph.Conflict:
					localConflicts = append(localConflicts, id)
				case graph.Changed:
					local = append(local, s.g.Wires[id].Driving...)
				}
			}
			nextQueue[chunkIdx] = local
			if len(localConflicts) > 0 {
				mu.Lock()
				conflicts = append(conflicts, localConflicts...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Unchanged, err
	}

	s.componentQueue = s.componentQueue[:0]
	for _, chunk := range nextQueue {
		s.componentQueue = append(s.componentQueue, chunk...)
	}

	if len(conflicts) > 0 {
		s.conflicts.Add(uint64(len(conflicts)))
		sort.Slice(conflicts, func(i, j int) bool { return conflicts[i] < conflicts[j] })
		return Unchanged, &SimulationError{Conflicts: conflicts}
	}
	if len(s.componentQueue) == 0 {
		return Unchanged, nil
	}
	return Changed, nil
}

// updateComponents re-evaluates every queued component in parallel chunks,
// collecting the set of wires whose combined drive must be recomputed next.
func (s *Simulator) updateComponents(ctx context.Context) (StepResult, error) {
	s.stepsRun.Add(1)
	s.componentQueue = sortDedupComponents(s.componentQueue)
	s.componentsTouched.Add(uint64(len(s.componentQueue)))

	size := chunkSize(len(s.componentQueue))
	nextQueue := make([][]graph.WireID, len(s.componentQueue)/size+1)

	g, _ := errgroup.WithContext(ctx)
	for start := 0; start < len(s.componentQueue); start += size {
		start := start
		end := start + size
		if end > len(s.componentQueue) {
			end = len(s.componentQueue)
		}
		chunkIdx := start / size
		g.Go(func() error {
			var local []graph.WireID
			for _, id := range s.componentQueue[start:end] {
				local = append(local, s.g.UpdateComponent(id)...)
			}
			nextQueue[chunkIdx] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Unchanged, err
	}

	s.wireQueue = s.wireQueue[:0]
	for _, chunk := range nextQueue {
		s.wireQueue = append(s.wireQueue, chunk...)
	}

	if len(s.wireQueue) == 0 {
		return Unchanged, nil
	}
	return Changed, nil
}

// sortDedupWires sorts ids and removes duplicates in place, mirroring the
// original implementation's par_sort_unstable + dedup on the wire update
// queue (two components can both mark the same wire dirty in one phase).
func sortDedupWires(ids []graph.WireID) []graph.WireID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

func sortDedupComponents(ids []graph.ComponentID) []graph.ComponentID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) == 0 {
		return ids
	}
	out := ids[:1]
	for _, id := range ids[1:] {
		if id != out[len(out)-1] {
			out = append(out, id)
		}
	}
	return out
}

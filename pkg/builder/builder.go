// Package builder assembles a graph.Graph component by component and
// hands off a runnable *sim.Simulator. Once Build() is called the graph's
// structure is frozen; only wire and output state change afterward.
package builder

import (
	"errors"
	"fmt"

	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
	"github.com/oisee/gatesim/pkg/sim"
)

// Errors returned while assembling a circuit. These mirror the original
// implementation's AddComponentError taxonomy, expanded with the
// resource-exhaustion cases spec §7 calls out.
var (
	ErrWireWidthMismatch     = errors.New("builder: wire widths do not match")
	ErrWireWidthIncompatible = errors.New("builder: wire width incompatible with component")
	ErrOffsetOutOfRange      = errors.New("builder: offset out of range for wire width")
	ErrTooFewInputs          = errors.New("builder: too few inputs")
	ErrInvalidInputCount     = errors.New("builder: invalid input count")
	ErrInvalidWireID         = errors.New("builder: invalid wire id")
	ErrTooManyComponents     = errors.New("builder: too many components")
	ErrResourceLimitReached  = errors.New("builder: resource limit reached")
)

// MaxComponents bounds how many components a single builder will accept,
// mirroring the arena's sanity ceiling (pkg/alloc.MaxEntries), applied to
// the component count rather than the state-slot count.
const MaxComponents = 1 << 24

// Builder incrementally assembles a circuit graph.
type Builder struct {
	wireWidths  []logic.BitWidth
	wireBase    []logic.LogicState
	wireDrivers [][]graph.OutputID
	wireDriving [][]graph.ComponentID

	components  []graph.Component
	outputBase  []int
	outputCount int

	wireNames      map[graph.WireID]string
	componentNames map[graph.ComponentID]string
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{
		wireNames:      make(map[graph.WireID]string),
		componentNames: make(map[graph.ComponentID]string),
	}
}

// AddWire adds a new wire of the given width, driven by HighZ until either
// a component drives it or SetWireBaseDrive overrides its base drive.
func (b *Builder) AddWire(width logic.BitWidth) graph.WireID {
	id := graph.WireID(len(b.wireWidths))
	b.wireWidths = append(b.wireWidths, width)
	b.wireBase = append(b.wireBase, logic.HighZ(width))
	b.wireDrivers = append(b.wireDrivers, nil)
	b.wireDriving = append(b.wireDriving, nil)
	return id
}

// SetWireBaseDrive overrides the state a wire carries when none of its
// component drivers contributes anything else (e.g. for circuit inputs
// and constants).
func (b *Builder) SetWireBaseDrive(w graph.WireID, s logic.LogicState) error {
	if err := b.checkWireID(w); err != nil {
		return err
	}
	if s.Width != b.wireWidths[w] {
		return ErrWireWidthMismatch
	}
	b.wireBase[w] = s
	return nil
}

// SetWireName attaches a display name to a wire, consumed by pkg/trace and
// pkg/dotexport.
func (b *Builder) SetWireName(w graph.WireID, name string) error {
	if err := b.checkWireID(w); err != nil {
		return err
	}
	b.wireNames[w] = name
	return nil
}

// WireName looks up a wire's display name, if one was set.
func (b *Builder) WireName(w graph.WireID) (string, bool) {
	name, ok := b.wireNames[w]
	return name, ok
}

// SetComponentName attaches a display name to a component.
func (b *Builder) SetComponentName(c graph.ComponentID, name string) error {
	if int(c) >= len(b.components) {
		return fmt.Errorf("builder: invalid component id %d", c)
	}
	b.componentNames[c] = name
	return nil
}

// ComponentName looks up a component's display name, if one was set.
func (b *Builder) ComponentName(c graph.ComponentID) (string, bool) {
	name, ok := b.componentNames[c]
	return name, ok
}

// WireWidth returns the width a wire was created with.
func (b *Builder) WireWidth(w graph.WireID) (logic.BitWidth, error) {
	if err := b.checkWireID(w); err != nil {
		return 0, err
	}
	return b.wireWidths[w], nil
}

func (b *Builder) checkWireID(w graph.WireID) error {
	if int(w) >= len(b.wireWidths) {
		return fmt.Errorf("%w: %d", ErrInvalidWireID, w)
	}
	return nil
}

func (b *Builder) checkWidthsMatch(wires ...graph.WireID) (logic.BitWidth, error) {
	for _, w := range wires {
		if err := b.checkWireID(w); err != nil {
			return 0, err
		}
	}
	width := b.wireWidths[wires[0]]
	for _, w := range wires[1:] {
		if b.wireWidths[w] != width {
			return 0, ErrWireWidthMismatch
		}
	}
	return width, nil
}

// addComponent registers c, wiring it as a driver of outputWires and a
// reader of inputWires, and returns its ComponentID. outputWires[i]
// receives output slot i.
func (b *Builder) addComponent(c graph.Component, inputWires, outputWires []graph.WireID) (graph.ComponentID, error) {
	if len(b.components) >= MaxComponents {
		return 0, ErrTooManyComponents
	}
	if c.OutputCount() != len(outputWires) {
		return 0, fmt.Errorf("%w: component declares %d outputs, %d wires given", ErrInvalidInputCount, c.OutputCount(), len(outputWires))
	}

	id := graph.ComponentID(len(b.components))
	base := b.outputCount
	b.components = append(b.components, c)
	b.outputBase = append(b.outputBase, base)
	b.outputCount += c.OutputCount()

	seen := make(map[graph.WireID]bool, len(inputWires))
	for _, w := range inputWires {
		if seen[w] {
			continue
		}
		seen[w] = true
		b.wireDriving[w] = append(b.wireDriving[w], id)
	}
	for i, w := range outputWires {
		oid := graph.OutputID(base + i)
		b.wireDrivers[w] = append(b.wireDrivers[w], oid)
	}

	return id, nil
}

// Graph finalizes and returns the built wire/component graph, without
// wrapping it in a Simulator. pkg/trace and pkg/dotexport use this to walk
// topology and names without needing a runnable simulation.
func (b *Builder) Graph() *graph.Graph {
	wires := make([]graph.Wire, len(b.wireWidths))
	wireStates := make([]logic.LogicState, len(b.wireWidths))
	for i := range wires {
		wires[i] = graph.Wire{
			Width:     b.wireWidths[i],
			Drivers:   b.wireDrivers[i],
			Driving:   b.wireDriving[i],
			BaseDrive: b.wireBase[i],
		}
		wireStates[i] = logic.HighZ(b.wireWidths[i])
	}

	outputStates := make([]logic.LogicState, b.outputCount)
	outputWire := make([]graph.WireID, b.outputCount)
	for w, oids := range b.wireDrivers {
		for _, oid := range oids {
			outputStates[oid] = logic.HighZ(b.wireWidths[w])
			outputWire[oid] = graph.WireID(w)
		}
	}

	return &graph.Graph{
		Wires:               wires,
		WireStates:          wireStates,
		Components:          b.components,
		ComponentOutputBase: b.outputBase,
		OutputStates:        outputStates,
		OutputWire:          outputWire,
		WireNames:           b.wireNames,
		ComponentNames:      b.componentNames,
	}
}

// Build finalizes the graph and returns a ready-to-run simulator.
func (b *Builder) Build() *sim.Simulator {
	return sim.New(b.Graph())
}

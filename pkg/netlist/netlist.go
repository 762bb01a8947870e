// Package netlist defines the interface boundary a netlist importer (e.g.
// a Yosys JSON bridge) would target to construct a circuit. No importer is
// implemented here: the JSON schema and cell-type mapping that bridge would
// need are genuinely out of scope for this kernel, exactly as called out
// for the original implementation's Yosys bridge. This package exists so a
// future importer has a typed, stable interface to compile against instead
// of depending on pkg/builder.Builder's concrete type directly.
package netlist

import (
	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
)

// Builder is the subset of pkg/builder.Builder's surface a netlist
// importer needs: wire/gate construction plus the wide operators a
// synthesized netlist is likely to use. pkg/builder.Builder satisfies
// this interface.
type Builder interface {
	AddWire(width logic.BitWidth) graph.WireID
	SetWireBaseDrive(w graph.WireID, s logic.LogicState) error
	SetWireName(w graph.WireID, name string) error

	AddAndGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddOrGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddXorGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddNandGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddNorGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddXnorGate(a, b, out graph.WireID) (graph.ComponentID, error)
	AddNotGate(input, out graph.WireID) (graph.ComponentID, error)
	AddBuffer(input, enable, out graph.WireID) (graph.ComponentID, error)

	AddAdder(a, b, carryIn, sum, carryOut graph.WireID) (graph.ComponentID, error)
	AddSubtractor(a, b, carryIn, diff, carryOut graph.WireID) (graph.ComponentID, error)
	AddMultiplexer(sel graph.WireID, inputs []graph.WireID, out graph.WireID) (graph.ComponentID, error)
	AddRegister(data, clock, enable, out graph.WireID, polarity graph.Edge) (graph.ComponentID, error)
	AddRAM(addr, data, write, clock, out graph.WireID, polarity graph.Edge) (graph.ComponentID, error)
	AddROM(addr, out graph.WireID, initial []logic.LogicState) (graph.ComponentID, error)
}

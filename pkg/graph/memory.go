package graph

import "github.com/oisee/gatesim/pkg/logic"

// Edge selects which clock transition a Register or RAM's write port
// captures on, per spec §4.4's polarity field.
type Edge int

const (
	RisingEdge Edge = iota
	FallingEdge
)

func (e Edge) triggered(prev, cur logic.Bit) bool {
	if e == RisingEdge {
		return prev != cur && cur == logic.Bit1
	}
	return prev != cur && cur == logic.Bit0
}

// RegisterComponent captures Data on Clock's active edge (Polarity), while
// Enable is Logic1. An undefined Clock or Enable poisons the stored value
// to X, since the component cannot tell whether a capture should have
// happened. The previously observed clock bit is tracked so only a change
// of the clock bit into Polarity's active level (Logic1 for RisingEdge,
// Logic0 for FallingEdge) triggers a capture (spec §4.4: edge-triggered
// capture). The power-on previous bit is Z, so a clock already at the
// active level on the first update counts as an edge.
type RegisterComponent struct {
	Data, Clock, Enable WireID
	Width               logic.BitWidth
	Polarity            Edge

	prevClock logic.Bit
	value     logic.LogicState
}

// NewRegisterComponent returns a register reset to all-X, matching an
// un-initialized flip-flop's power-on state.
func NewRegisterComponent(data, clock, enable WireID, width logic.BitWidth, polarity Edge) *RegisterComponent {
	return &RegisterComponent{
		Data: data, Clock: clock, Enable: enable, Width: width, Polarity: polarity,
		prevClock: logic.BitZ,
		value:     logic.Undefined(width),
	}
}

func (c *RegisterComponent) OutputCount() int { return 1 }

func (c *RegisterComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	clock := g.WireStates[c.Clock].Bit(0)
	enable := g.WireStates[c.Enable].Bit(0)

	switch {
	case !clock.Defined() || !enable.Defined():
		c.value = logic.Undefined(c.Width)
	case c.Polarity.triggered(c.prevClock, clock) && enable == logic.Bit1:
		c.value = g.WireStates[c.Data].Clone()
	}
	c.prevClock = clock

	changed := !c.value.Equal(outputs[0])
	outputs[0] = c.value
	return []bool{changed}
}

// Reset restores the register's power-on state (all-X).
func (c *RegisterComponent) Reset() {
	c.prevClock = logic.BitZ
	c.value = logic.Undefined(c.Width)
}

// Value returns the register's currently stored value, for pkg/sim
// snapshotting.
func (c *RegisterComponent) Value() logic.LogicState {
	return c.value
}

// SetValue overwrites the register's stored value, for pkg/sim snapshot
// restore. It does not affect prevClock, so the next clock edge is judged
// against whatever clock state the graph already holds.
func (c *RegisterComponent) SetValue(v logic.LogicState) {
	c.value = v
}

// RAMComponent is a read/write memory addressed by Addr. Reads are
// combinational (async read of the current address); writes are captured
// on Clock's active edge (Polarity) while Write is Logic1. On such an edge,
// an undefined Write control, or an undefined address while Write is
// Logic1, poisons every location to X; an undefined address on read makes
// the output all-X. An undefined clock is never an edge and changes no
// location. Uninitialized locations read back as all-X, matching real SRAM
// power-on behavior.
type RAMComponent struct {
	Addr, Data, Write, Clock WireID
	AddrWidth, DataWidth     logic.BitWidth
	Polarity                 Edge

	contents  []logic.LogicState
	prevClock logic.Bit
}

// NewRAMComponent returns a RAM with every location initialized to all-X.
func NewRAMComponent(addr, data, write, clock WireID, addrWidth, dataWidth logic.BitWidth, polarity Edge) *RAMComponent {
	size := uint64(1) << uint(addrWidth)
	contents := make([]logic.LogicState, size)
	for i := range contents {
		contents[i] = logic.Undefined(dataWidth)
	}
	return &RAMComponent{
		Addr: addr, Data: data, Write: write, Clock: clock,
		AddrWidth: addrWidth, DataWidth: dataWidth, Polarity: polarity,
		contents:  contents,
		prevClock: logic.BitZ,
	}
}

func (c *RAMComponent) OutputCount() int { return 1 }

func (c *RAMComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	addr := g.WireStates[c.Addr]
	clock := g.WireStates[c.Clock].Bit(0)
	write := g.WireStates[c.Write].Bit(0)

	if c.Polarity.triggered(c.prevClock, clock) {
		switch {
		case !write.Defined():
			// An undefined write-enable on a clock edge makes it
			// impossible to know whether a write happened, so every
			// location could now be stale: poison the whole array.
			for i := range c.contents {
				c.contents[i] = logic.Undefined(c.DataWidth)
			}
		case write == logic.Bit1:
			if addr.IsFullyDefined() {
				c.contents[addr.ToUint64()] = g.WireStates[c.Data].Clone()
			} else {
				for i := range c.contents {
					c.contents[i] = logic.Undefined(c.DataWidth)
				}
			}
		}
	}
	c.prevClock = clock

	var result logic.LogicState
	if !addr.IsFullyDefined() {
		result = logic.Undefined(c.DataWidth)
	} else {
		result = c.contents[addr.ToUint64()]
	}

	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

// Reset clears every location back to all-X.
func (c *RAMComponent) Reset() {
	for i := range c.contents {
		c.contents[i] = logic.Undefined(c.DataWidth)
	}
	c.prevClock = logic.BitZ
}

// Contents returns the RAM's current backing storage, for pkg/sim
// snapshotting. The returned slice is owned by the component; callers must
// not mutate it.
func (c *RAMComponent) Contents() []logic.LogicState {
	return c.contents
}

// SetContents overwrites the RAM's backing storage, for pkg/sim snapshot
// restore. contents must have the same length as the RAM's address space.
func (c *RAMComponent) SetContents(contents []logic.LogicState) {
	copy(c.contents, contents)
}

// ROMComponent is a read-only memory with fixed initial contents, set once
// at build time (pkg/builder.AddROM). An undefined address poisons the
// output to X; reading a never-initialized location returns whatever that
// location was set to (all-X, if the builder didn't supply a value there).
type ROMComponent struct {
	Addr                 WireID
	AddrWidth, DataWidth logic.BitWidth
	contents             []logic.LogicState
}

// NewROMComponent returns a ROM backed by initial, padded to the full
// 2^AddrWidth address space with all-X entries where initial is shorter.
func NewROMComponent(addr WireID, addrWidth, dataWidth logic.BitWidth, initial []logic.LogicState) *ROMComponent {
	size := uint64(1) << uint(addrWidth)
	contents := make([]logic.LogicState, size)
	for i := range contents {
		if i < len(initial) {
			contents[i] = initial[i]
		} else {
			contents[i] = logic.Undefined(dataWidth)
		}
	}
	return &ROMComponent{Addr: addr, AddrWidth: addrWidth, DataWidth: dataWidth, contents: contents}
}

func (c *ROMComponent) OutputCount() int { return 1 }

func (c *ROMComponent) Update(g *Graph, outputs []logic.LogicState) []bool {
	addr := g.WireStates[c.Addr]
	var result logic.LogicState
	if !addr.IsFullyDefined() {
		result = logic.Undefined(c.DataWidth)
	} else {
		result = c.contents[addr.ToUint64()]
	}
	changed := !result.Equal(outputs[0])
	outputs[0] = result
	return []bool{changed}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oisee/gatesim/pkg/builder"
	"github.com/oisee/gatesim/pkg/dotexport"
	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
	"github.com/oisee/gatesim/pkg/sim"
	"github.com/oisee/gatesim/pkg/trace"
	"github.com/spf13/cobra"
)

// demoCircuit builds a demonstration circuit and reports which wires to
// report back and (optionally) drive as stimulus.
type demoCircuit struct {
	name    string
	short   string
	build   func() (*builder.Builder, []graph.WireID)
	stimuli func(*sim.Simulator) error
}

func dLatch() (*builder.Builder, []graph.WireID) {
	b := builder.New()
	d := b.AddWire(1)
	enable := b.AddWire(1)
	notD := b.AddWire(1)
	andD := b.AddWire(1)
	andNotD := b.AddWire(1)
	q := b.AddWire(1)
	notQ := b.AddWire(1)

	b.AddNotGate(d, notD)
	b.AddAndGate(d, enable, andD)
	b.AddAndGate(notD, enable, andNotD)
	b.AddNorGate(andNotD, notQ, q)
	b.AddNorGate(andD, q, notQ)

	b.SetWireName(d, "d")
	b.SetWireName(enable, "enable")
	b.SetWireName(q, "q")
	b.SetWireName(notQ, "not_q")

	return b, []graph.WireID{d, enable, q, notQ}
}

func rippleAdder(width logic.BitWidth) func() (*builder.Builder, []graph.WireID) {
	return func() (*builder.Builder, []graph.WireID) {
		b := builder.New()
		a := b.AddWire(width)
		bw := b.AddWire(width)
		cin := b.AddWire(1)
		sum := b.AddWire(width)
		cout := b.AddWire(1)
		b.AddAdder(a, bw, cin, sum, cout)

		b.SetWireName(a, "a")
		b.SetWireName(bw, "b")
		b.SetWireName(cin, "carry_in")
		b.SetWireName(sum, "sum")
		b.SetWireName(cout, "carry_out")

		return b, []graph.WireID{a, bw, cin, sum, cout}
	}
}

func regFile() (*builder.Builder, []graph.WireID) {
	b := builder.New()
	addr := b.AddWire(4)
	data := b.AddWire(8)
	write := b.AddWire(1)
	clock := b.AddWire(1)
	out := b.AddWire(8)
	b.AddRAM(addr, data, write, clock, out, graph.RisingEdge)

	b.SetWireName(addr, "addr")
	b.SetWireName(data, "data")
	b.SetWireName(write, "write")
	b.SetWireName(clock, "clock")
	b.SetWireName(out, "out")

	return b, []graph.WireID{addr, data, write, clock, out}
}

func demos() map[string]demoCircuit {
	return map[string]demoCircuit{
		"dlatch": {
			name:  "dlatch",
			short: "A transparent D-latch built from cross-coupled NOR gates",
			build: dLatch,
			stimuli: func(s *sim.Simulator) error {
				wires := namedWires(dLatch)
				if err := s.SetWireBaseDrive(wires["d"], logic.FromBit(logic.Bit1)); err != nil {
					return err
				}
				return s.SetWireBaseDrive(wires["enable"], logic.FromBit(logic.Bit1))
			},
		},
		"adder": {
			name:  "adder",
			short: "A 32-bit ripple-carry adder",
			build: rippleAdder(32),
			stimuli: func(s *sim.Simulator) error {
				wires := namedWires(rippleAdder(32))
				if err := s.SetWireBaseDrive(wires["a"], logic.FromUint64(0xFFFFFFFF, 32)); err != nil {
					return err
				}
				if err := s.SetWireBaseDrive(wires["b"], logic.FromUint64(1, 32)); err != nil {
					return err
				}
				return s.SetWireBaseDrive(wires["carry_in"], logic.FromBit(logic.Bit0))
			},
		},
		"regfile": {
			name:  "regfile",
			short: "A 16x8 RAM-backed register file",
			build: regFile,
			stimuli: func(s *sim.Simulator) error {
				wires := namedWires(regFile)
				if err := s.SetWireBaseDrive(wires["addr"], logic.FromUint64(2, 4)); err != nil {
					return err
				}
				if err := s.SetWireBaseDrive(wires["data"], logic.FromUint64(42, 8)); err != nil {
					return err
				}
				if err := s.SetWireBaseDrive(wires["write"], logic.FromBit(logic.Bit1)); err != nil {
					return err
				}
				return s.SetWireBaseDrive(wires["clock"], logic.FromBit(logic.Bit0))
			},
		},
	}
}

// namedWires rebuilds a circuit with build and returns its name->WireID
// map, since the demo table only keeps each circuit's build func rather
// than keeping every builder instance alive.
func namedWires(build func() (*builder.Builder, []graph.WireID)) map[string]graph.WireID {
	b, _ := build()
	out := make(map[string]graph.WireID)
	for id := range b.Graph().Wires {
		if name, ok := b.WireName(graph.WireID(id)); ok {
			out[name] = graph.WireID(id)
		}
	}
	return out
}

func main() {
	root := &cobra.Command{
		Use:   "gatesim",
		Short: "A cycle-accurate four-valued digital logic simulator",
	}

	var vcdPath string
	var dotPath string
	var maxSteps uint64

	runCmd := &cobra.Command{
		Use:       "run [dlatch|adder|regfile]",
		Short:     "Build and settle a built-in demo circuit",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dlatch", "adder", "regfile"},
		RunE: func(cmd *cobra.Command, args []string) error {
			demo, ok := demos()[args[0]]
			if !ok {
				return fmt.Errorf("unknown demo circuit %q", args[0])
			}

			fmt.Printf("gatesim: %s\n", demo.short)
			b, reportWires := demo.build()

			if dotPath != "" {
				f, err := os.Create(dotPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := dotexport.Write(f, b); err != nil {
					return fmt.Errorf("writing dot: %w", err)
				}
				fmt.Printf("wrote %s\n", dotPath)
			}

			s := b.Build()
			if err := demo.stimuli(s); err != nil {
				return fmt.Errorf("applying stimulus: %w", err)
			}

			ctx := context.Background()
			result, err := s.RunSim(ctx, maxSteps)
			if err != nil {
				var simErr *sim.SimulationError
				if ok := errorsAs(err, &simErr); ok {
					fmt.Printf("conflict on wire(s): %v\n", simErr.Conflicts)
					return nil
				}
				return err
			}
			if result == sim.MaxStepsReached {
				fmt.Printf("did not settle within %d steps\n", maxSteps)
			} else {
				steps, wires, comps := s.Stats()
				fmt.Printf("settled after %d component-update steps (%d wires, %d components touched)\n", steps, wires, comps)
			}

			for _, w := range reportWires {
				state, err := s.WireState(w)
				if err != nil {
					return err
				}
				name, _ := b.WireName(w)
				fmt.Printf("  %s = %s\n", name, state)
			}

			if vcdPath != "" {
				if err := writeVCD(vcdPath, b, s, reportWires); err != nil {
					return fmt.Errorf("writing vcd: %w", err)
				}
				fmt.Printf("wrote %s\n", vcdPath)
			}

			return nil
		},
	}
	runCmd.Flags().StringVar(&vcdPath, "vcd", "", "Write a VCD trace of the settled state to this path")
	runCmd.Flags().StringVar(&dotPath, "dot", "", "Write a DOT graph of the circuit to this path")
	runCmd.Flags().Uint64Var(&maxSteps, "max-steps", 1000, "Maximum propagation steps before giving up")

	root.AddCommand(runCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeVCD(path string, b *builder.Builder, s *sim.Simulator, wires []graph.WireID) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	named := make([]trace.NamedWire, 0, len(wires))
	for _, w := range wires {
		name, _ := b.WireName(w)
		width, err := s.WireWidth(w)
		if err != nil {
			return err
		}
		named = append(named, trace.NamedWire{ID: w, Name: name, Width: int(width)})
	}
	if err := trace.WriteHeader(f, named, trace.DefaultTimescale, time.Now()); err != nil {
		return err
	}
	return trace.Trace(f, s, wires, 0)
}

func errorsAs(err error, target **sim.SimulationError) bool {
	simErr, ok := err.(*sim.SimulationError)
	if !ok {
		return false
	}
	*target = simErr
	return true
}

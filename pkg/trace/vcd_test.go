package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/oisee/gatesim/pkg/builder"
	"github.com/oisee/gatesim/pkg/graph"
	"github.com/oisee/gatesim/pkg/logic"
)

func TestWriteHeaderListsVars(t *testing.T) {
	var buf bytes.Buffer
	wires := []NamedWire{{ID: 0, Name: "clk", Width: 1}, {ID: 1, Name: "data bus", Width: 8}}
	if err := WriteHeader(&buf, wires, DefaultTimescale, time.Unix(0, 0)); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "$var wire 1 W0 clk $end") {
		t.Fatalf("expected scalar $var line, got:\n%s", out)
	}
	if !strings.Contains(out, "$var wire 8 W1 data_bus[8] $end") {
		t.Fatalf("expected sanitized vector $var line, got:\n%s", out)
	}
	if !strings.Contains(out, "$enddefinitions $end") {
		t.Fatalf("expected $enddefinitions terminator, got:\n%s", out)
	}
}

func TestTraceWritesValueChanges(t *testing.T) {
	b := builder.New()
	a := b.AddWire(4)
	out := b.AddWire(4)
	if _, err := b.AddNotGate(a, out); err != nil {
		t.Fatalf("AddNotGate: %v", err)
	}
	s := b.Build()
	if err := s.SetWireBaseDrive(a, logic.FromUint64(0b0101, 4)); err != nil {
		t.Fatalf("SetWireBaseDrive: %v", err)
	}
	if _, err := s.RunSim(context.Background(), 100); err != nil {
		t.Fatalf("RunSim: %v", err)
	}

	var buf bytes.Buffer
	if err := Trace(&buf, s, []graph.WireID{a, out}, 0); err != nil {
		t.Fatalf("Trace: %v", err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "#0\n") {
		t.Fatalf("expected time marker, got:\n%s", got)
	}
	if !strings.Contains(got, "b0101 W0") {
		t.Fatalf("expected vector value change for wire a, got:\n%s", got)
	}
	if !strings.Contains(got, "b1010 W1") {
		t.Fatalf("expected NOT(0101)=1010, got:\n%s", got)
	}
}

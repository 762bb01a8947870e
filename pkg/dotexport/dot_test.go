package dotexport

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oisee/gatesim/pkg/builder"
)

func TestWriteSimpleGate(t *testing.T) {
	b := builder.New()
	a := b.AddWire(1)
	bw := b.AddWire(1)
	o := b.AddWire(1)
	if _, err := b.AddAndGate(a, bw, o); err != nil {
		t.Fatalf("AddAndGate: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, b); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "digraph gatesim {") {
		t.Fatalf("expected digraph header, got:\n%s", out)
	}
	if !strings.Contains(out, "c0 [shape=box, label=\"BinaryGate\"];") {
		t.Fatalf("expected component node, got:\n%s", out)
	}
	if !strings.Contains(out, "c0 -> w2;") {
		t.Fatalf("expected edge from gate to its output wire, got:\n%s", out)
	}
	if !strings.Contains(out, "w0 -> c0;") || !strings.Contains(out, "w1 -> c0;") {
		t.Fatalf("expected edges from both input wires to the gate, got:\n%s", out)
	}
}

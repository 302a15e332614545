package peg

import (
	"strings"
	"testing"
)

func TestOpcodeString(t *testing.T) {
	for op := Opcode(0); int(op) < len(opcodeNames); op++ {
		if opcodeNames[op] == "" {
			t.Errorf("missing string representation of opcode %d", op)
		}
		if s := op.String(); strings.Contains(s, "illegal") {
			t.Errorf("invalid string representation of opcode %d", op)
		}
	}
	if s := Opcode(255).String(); !strings.Contains(s, "illegal") {
		t.Errorf("expected illegal opcode string, got %q", s)
	}
}

func TestIsOffset(t *testing.T) {
	want := map[Opcode]bool{
		OpChoice:     true,
		OpCommit:     true,
		OpPartCommit: true,
		OpCall:       true,
		OpJump:       true,
	}
	for op := Opcode(0); int(op) < len(opcodeNames); op++ {
		if got := isOffset(op); got != want[op] {
			t.Errorf("isOffset(%s) = %v, want %v", op, got, want[op])
		}
	}
}

package peg

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MaxPattLen is the maximum number of instructions a Pattern may contain. It
// is enforced after every infix composition (Sequence, Choice, Diff); a
// composition that would exceed it fails with a PatternTooLarge error. It is
// a package-level variable rather than a constant so an embedder can raise
// (or lower) it explicitly, the same way the teacher's resolver.Mode and
// parser.Mode are explicit, caller-supplied tuning knobs rather than
// buried constants.
var MaxPattLen = 4096

// Instruction is a single opcode together with whichever of its payload
// fields the opcode uses. Unused fields are left zero. This mirrors the
// flat, non-interface insn struct the teacher's bytecode compiler uses
// (lang/compiler/compiler.go's insn{op, arg}) rather than a payload union
// expressed as distinct Go types per opcode.
type Instruction struct {
	Op Opcode

	// Str holds the literal bytes for OpStr/OpIStr, and the failure message
	// for OpErr.
	Str string

	// Set holds the char-set for OpSet/OpSpan.
	Set CharSet

	// Offset is the signed, relative jump distance for OpChoice, OpCommit,
	// OpPartCommit, OpCall and OpJump: for an instruction at index i, the
	// target lies at index i+Offset within the same Pattern.
	Offset int32

	// Label is the rule name for OpCall/OpJump, retained for debugging and
	// for the later link pass (out of this package's scope) that resolves it
	// to a numeric offset.
	Label string

	// CapKind is the capture kind for OpCapOpen/OpCapClose.
	CapKind CaptureKind

	// CapName is the optional capture name for OpCapOpen (JSON field
	// captures and named string captures carry one; most do not). The
	// matching OpCapClose does not carry it.
	CapName string

	// CapAction is the opaque action payload attached to an OpCapOpen of kind
	// CapAction. The core never interprets it; it is handed through from the
	// AST verbatim (an AST subtree handle, a source span, or a callable
	// reference, depending on the embedding environment).
	CapAction interface{}

	// CapID pairs an OpCapOpen with its OpCapClose without requiring the
	// reader to track a nesting stack. Assigned by whoever builds the
	// capture (see Capture in capture_wrap.go); zero is a valid id.
	CapID int

	// RefName is the capture name for OpBackref.
	RefName string
}

// Pattern is an ordered sequence of Instructions. It has no identity beyond
// its contents: combinators take and return patterns by value, and there is
// no sharing — every combinator that builds a new fragment allocates a fresh
// slice, so callers may freely retain and reuse the patterns they pass in.
type Pattern []Instruction

// Len returns the number of instructions in p.
func (p Pattern) Len() int { return len(p) }

// clone returns a fresh copy of p, safe for a caller that must embed it
// in a larger fragment more than once (e.g. the Plus combinator).
func (p Pattern) clone() Pattern {
	return slices.Clone(p)
}

// checkMaxLen enforces MaxPattLen after an infix composition, as required by
// spec §3.4 and §7 (PatternTooLarge).
func checkMaxLen(p Pattern) (Pattern, error) {
	if len(p) > MaxPattLen {
		return nil, newError(PatternTooLarge, fmt.Sprintf(
			"pattern too large: %d instructions exceeds MaxPattLen (%d); raise peg.MaxPattLen to compile it",
			len(p), MaxPattLen))
	}
	return p, nil
}

// concat appends the instructions of every fragment into one fresh Pattern.
// Because every combinator only ever emits offsets that target an index
// inside the window it just produced, concatenation never needs to rewrite
// any offset: it is a pure, naive buffer append.
func concat(frags ...Pattern) Pattern {
	n := 0
	for _, f := range frags {
		n += len(f)
	}
	out := make(Pattern, 0, n)
	for _, f := range frags {
		out = append(out, f...)
	}
	return out
}

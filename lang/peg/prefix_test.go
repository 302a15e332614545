package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// TestOptionalScenario3 checks scenario 3 from the worked examples:
// ?'a' -> 0: Choice 3 / 1: Str "a" / 2: Commit 3
func TestOptionalScenario3(t *testing.T) {
	p, err := Optional(Str("a"))
	require.NoError(t, err)
	require.Equal(t, Pattern{
		{Op: OpChoice, Offset: 3},
		{Op: OpStr, Str: "a"},
		{Op: OpCommit, Offset: 1},
	}, p)
	require.Equal(t, "000: choice    3\n001: str       \"a\"\n002: commit    3\n", ToString(p, nil))
}

// TestStarScenario4 checks scenario 4: *{'a'..'z'} -> 0: Span {'a'..'z'}
func TestStarScenario4(t *testing.T) {
	var cs CharSet
	cs.AddRange('a', 'z')
	p, err := Star(Set(cs))
	require.NoError(t, err)
	require.Equal(t, Pattern{{Op: OpSpan, Set: cs}}, p)
}

// TestStarScenario5 checks scenario 5: *"ab" -> 0: Choice 3 / 1: Str "ab" / 2: PartCommit 1
func TestStarScenario5(t *testing.T) {
	p, err := Star(Str("ab"))
	require.NoError(t, err)
	require.Equal(t, Pattern{
		{Op: OpChoice, Offset: 3},
		{Op: OpStr, Str: "ab"},
		{Op: OpPartCommit, Offset: -1},
	}, p)
}

func TestPlusClones(t *testing.T) {
	base := Str("x")
	p, err := Plus(base)
	require.NoError(t, err)
	require.Equal(t, Pattern{
		{Op: OpStr, Str: "x"},
		{Op: OpSpan, Set: NewCharSet('x')},
	}, p)
	// base must not have been mutated by the clone-and-embed.
	require.Equal(t, Pattern{{Op: OpStr, Str: "x"}}, base)
	require.True(t, slices.Equal(base, Pattern{{Op: OpStr, Str: "x"}}))
}

func TestCaptureStr(t *testing.T) {
	p := CaptureStr(Str("a"), 7)
	require.Equal(t, Pattern{
		{Op: OpCapOpen, CapKind: CapStr, CapID: 7},
		{Op: OpStr, Str: "a"},
		{Op: OpCapClose, CapKind: CapStr, CapID: 7},
	}, p)
}

func TestNot(t *testing.T) {
	p, err := Not(Str("x"))
	require.NoError(t, err)
	require.Equal(t, Pattern{
		{Op: OpChoice, Offset: 4},
		{Op: OpStr, Str: "x"},
		{Op: OpCommit, Offset: 1},
		{Op: OpFail},
	}, p)
}

// TestAndIsDoubleNot checks the round-trip invariant !!p == &p structurally.
func TestAndIsDoubleNot(t *testing.T) {
	p := Str("x")
	notNot, err := Not(notOf(t, p))
	require.NoError(t, err)

	and, err := And(p)
	require.NoError(t, err)

	require.Equal(t, notNot, and)
}

func notOf(t *testing.T, p Pattern) Pattern {
	t.Helper()
	out, err := Not(p)
	require.NoError(t, err)
	return out
}

// TestSearchScenario9Shape checks the algebraic shape of scenario 9, @'end',
// using the single-instruction Str("end") body the atom constructors
// actually emit (spec §4.B: str(s) -> [Str(s)]) rather than the worked
// table's per-byte index annotation, which is illustrative shorthand, not a
// literal 3-instruction body: a literal atom always compiles to exactly one
// Str instruction regardless of string length.
func TestSearchScenario9Shape(t *testing.T) {
	p, err := Search(Str("end"))
	require.NoError(t, err)
	require.Equal(t, Pattern{
		{Op: OpChoice, Offset: 3},
		{Op: OpStr, Str: "end"},
		{Op: OpCommit, Offset: 3},
		{Op: OpAny},
		{Op: OpJump, Offset: -4},
	}, p)

	// Absolute targets: Choice jumps to index 3 (Any) on failure of the body;
	// Commit jumps to index 5 (past Any+Jump) on success; Jump loops back to
	// index 0 to retry the Choice one byte further along.
	for i, ins := range p {
		if isOffset(ins.Op) {
			target := i + int(ins.Offset)
			require.GreaterOrEqual(t, target, 0)
			require.LessOrEqual(t, target, len(p))
		}
	}
}

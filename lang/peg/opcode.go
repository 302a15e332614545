// Package peg implements the pattern algebra and instruction-sequence
// construction for a Parsing Expression Grammar compiler: the combinators
// that turn literals, character sets, sequences, ordered choices,
// repetitions, predicates and captures into a linear program of
// virtual-machine instructions for a backtracking PEG machine of the
// Ford/LPeg lineage.
//
// The package is a pure, single-threaded computation: no Pattern or CharSet
// is ever mutated after the combinator that produced it returns, and there
// is no shared global mutable state, so independent calls operating on
// disjoint inputs may run concurrently.
package peg

import "fmt"

// Opcode discriminates the payload carried by an Instruction.
type Opcode uint8

const ( //nolint:revive
	OpStr        Opcode = iota // match literal bytes
	OpIStr                     // match literal bytes, ASCII case-insensitive
	OpSet                      // match any single byte in a char-set
	OpSpan                     // greedily match zero or more bytes in a char-set
	OpAny                      // match any single byte
	OpNop                      // always succeeds, consumes nothing
	OpChoice                   // push backtrack frame
	OpCommit                   // pop backtrack frame, jump
	OpPartCommit               // update frame subject position, jump
	OpCall                     // push return address, jump
	OpJump                     // jump
	OpReturn                   // pop return address, jump to it
	OpFail                     // force backtrack to the top frame
	OpCapOpen                  // mark begin of a capture span
	OpCapClose                 // mark end of a capture span
	OpBackref                  // match text last captured under a name
	OpErr                      // unconditional failure emitting a message
)

var opcodeNames = [...]string{
	OpStr:        "str",
	OpIStr:       "istr",
	OpSet:        "set",
	OpSpan:       "span",
	OpAny:        "any",
	OpNop:        "nop",
	OpChoice:     "choice",
	OpCommit:     "commit",
	OpPartCommit: "partcommit",
	OpCall:       "call",
	OpJump:       "jump",
	OpReturn:     "return",
	OpFail:       "fail",
	OpCapOpen:    "capopen",
	OpCapClose:   "capclose",
	OpBackref:    "backref",
	OpErr:        "err",
}

// isOffset reports whether op carries a relative jump offset (Choice,
// Commit, PartCommit, Call, Jump).
func isOffset(op Opcode) bool {
	switch op {
	case OpChoice, OpCommit, OpPartCommit, OpCall, OpJump:
		return true
	default:
		return false
	}
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		if name := opcodeNames[op]; name != "" {
			return name
		}
	}
	return fmt.Sprintf("illegal opcode (%d)", uint8(op))
}

package peg

// Str builds a fragment matching the literal bytes s verbatim.
func Str(s string) Pattern {
	return Pattern{{Op: OpStr, Str: s}}
}

// IStr builds a fragment matching the literal bytes s, ASCII
// case-insensitively.
func IStr(s string) Pattern {
	return Pattern{{Op: OpIStr, Str: s}}
}

// Any builds a fragment matching exactly n arbitrary bytes. For n <= 0 it
// degenerates to a single Nop (an always-succeeding, zero-width match).
func Any(n int) Pattern {
	if n <= 0 {
		return Pattern{{Op: OpNop}}
	}
	p := make(Pattern, n)
	for i := range p {
		p[i] = Instruction{Op: OpAny}
	}
	return p
}

// Set builds a fragment matching any single byte in cs.
func Set(cs CharSet) Pattern {
	return Pattern{{Op: OpSet, Set: cs}}
}

// Call builds a placeholder fragment for a reference to the rule named
// label. Its offset is 0, to be filled in later by the (out of scope) link
// pass once rule addresses are known.
func Call(label string) Pattern {
	return Pattern{{Op: OpCall, Label: label, Offset: 0}}
}

// Backref builds a fragment that matches, at runtime, the text last
// captured under name.
func Backref(name string) Pattern {
	return Pattern{{Op: OpBackref, RefName: name}}
}

// ReturnInst builds a single Return instruction.
func ReturnInst() Pattern {
	return Pattern{{Op: OpReturn}}
}

// Err builds a fragment that unconditionally fails, emitting msg.
func Err(msg string) Pattern {
	return Pattern{{Op: OpErr, Str: msg}}
}

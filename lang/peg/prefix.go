package peg

// Optional builds "?p": if p matches, skip past it; if it fails, resume
// right after it having consumed nothing.
//
//	[Choice(|p|+2), ...p, Commit(1)]
func Optional(p Pattern) (Pattern, error) {
	n := len(p)
	out := make(Pattern, 0, n+2)
	out = append(out, Instruction{Op: OpChoice, Offset: int32(n + 2)})
	out = append(out, p...)
	out = append(out, Instruction{Op: OpCommit, Offset: 1})
	return checkMaxLen(out)
}

// Star builds "*p": zero or more repetitions of p. If p reduces to a single
// Set instruction, this collapses to a single non-backtracking Span
// instruction; otherwise it loops over p reusing the same backtrack frame
// via PartCommit.
//
//	[Span(cs)]                                     (fast path)
//	[Choice(|p|+2), ...p, PartCommit(-|p|)]         (general case)
func Star(p Pattern) (Pattern, error) {
	if cs, ok := ToSet(p); ok {
		return Pattern{{Op: OpSpan, Set: cs}}, nil
	}

	n := len(p)
	out := make(Pattern, 0, n+2)
	out = append(out, Instruction{Op: OpChoice, Offset: int32(n + 2)})
	out = append(out, p...)
	out = append(out, Instruction{Op: OpPartCommit, Offset: int32(-n)})
	return checkMaxLen(out)
}

// Plus builds "+p" as p followed by *p (one-or-more). This clones p by
// value: callers must tolerate p appearing twice in the result (spec §9,
// open question (a): an alternative Choice/PartCommit lowering would avoid
// the clone but needs subtler offset care for captures inside p).
func Plus(p Pattern) (Pattern, error) {
	star, err := Star(p.clone())
	if err != nil {
		return nil, err
	}
	return checkMaxLen(concat(p, star))
}

// CaptureStr builds ">p", the capture-substring combinator: capture(p, Str).
// id is the capture id to stamp on the open/close pair (see Capture).
func CaptureStr(p Pattern, id int) Pattern {
	return Capture(p, CapStr, "", nil, id)
}

// Not builds "!p", the not-predicate: p must fail for this to succeed, and
// neither outcome consumes input.
//
//	[Choice(|p|+3), ...p, Commit(1), Fail]
func Not(p Pattern) (Pattern, error) {
	n := len(p)
	out := make(Pattern, 0, n+3)
	out = append(out, Instruction{Op: OpChoice, Offset: int32(n + 3)})
	out = append(out, p...)
	out = append(out, Instruction{Op: OpCommit, Offset: 1})
	out = append(out, Instruction{Op: OpFail})
	return checkMaxLen(out)
}

// And builds "&p", the and-predicate, defined as !(!p).
func And(p Pattern) (Pattern, error) {
	notP, err := Not(p)
	if err != nil {
		return nil, err
	}
	return Not(notP)
}

// Search builds "@p": advance one byte at a time until p matches, without
// consuming the bytes it matched on success beyond what p itself consumes.
//
//	[Choice(|p|+2), ...p, Commit(3), Any, Jump(-|p|-3)]
func Search(p Pattern) (Pattern, error) {
	n := len(p)
	out := make(Pattern, 0, n+4)
	out = append(out, Instruction{Op: OpChoice, Offset: int32(n + 2)})
	out = append(out, p...)
	out = append(out, Instruction{Op: OpCommit, Offset: 3})
	out = append(out, Instruction{Op: OpAny})
	out = append(out, Instruction{Op: OpJump, Offset: int32(-n - 3)})
	return checkMaxLen(out)
}

package peg

// Capture wraps p with a paired CapOpen/CapClose marker carrying kind, an
// optional name, an optional action payload, and id (used to pair the open
// and close markers; see Instruction.CapID). No offset adjustment inside p
// is required because capture markers contain no jumps of their own.
func Capture(p Pattern, kind CaptureKind, name string, action interface{}, id int) Pattern {
	open := Instruction{Op: OpCapOpen, CapKind: kind, CapName: name, CapAction: action, CapID: id}
	closeIns := Instruction{Op: OpCapClose, CapKind: kind, CapID: id}
	return concat(Pattern{open}, p, Pattern{closeIns})
}

package peg

// Exact builds "p{n}" for n >= 0: n concatenated copies of p. p{0} is the
// empty match (a single Nop, the same pattern Any(0) returns); p{1} == p.
func Exact(p Pattern, n int) (Pattern, error) {
	if n <= 0 {
		return Pattern{{Op: OpNop}}, nil
	}
	if n == 1 {
		return checkMaxLen(p.clone())
	}

	out := make(Pattern, 0, len(p)*n)
	for i := 0; i < n; i++ {
		out = append(out, p...)
	}
	return checkMaxLen(out)
}

// Range builds "p{a..b}" for 0 <= a <= b: p{a} followed by (b-a) copies of
// ?p.
func Range(p Pattern, a, b int) (Pattern, error) {
	if a < 0 || b < a {
		return nil, NewError(UnknownConstruct, "invalid repetition range {%d..%d}: require 0 <= a <= b", a, b)
	}

	head, err := Exact(p, a)
	if err != nil {
		return nil, err
	}

	// b == a: zero copies of ?p, i.e. nothing at all. Exact(opt, 0) is not
	// reused here: it returns a [Nop], meant for the top-level "p{0}"
	// operator, not for "0 instructions", so p{a..a} would otherwise carry a
	// spurious trailing Nop that "p{a}" alone does not have.
	if b == a {
		return checkMaxLen(head)
	}

	opt, err := Optional(p)
	if err != nil {
		return nil, err
	}

	tail, err := Exact(opt, b-a)
	if err != nil {
		return nil, err
	}

	return checkMaxLen(concat(head, tail))
}

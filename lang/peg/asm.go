package peg

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// This file implements a small human-readable/writable assembly format for
// a Pattern, the same role the teacher's lang/compiler/asm.go plays for a
// compiled Funcode: a way to build test and CLI fixtures directly, without
// going through the (out of this package's scope) AST translator.
//
// The format is a single required section:
//
//	code:
//		str "a"
//		choice 3
//		str "a"
//		commit 1
//
// One instruction per line. The first field is the opcode mnemonic (the
// same names Opcode.String() prints); the rest of the line is its operand,
// shaped by the opcode:
//
//	str/istr/err/backref            a quoted string
//	set/span                        a {...} char-set literal, as DumpSet
//	                                renders it, for sets that contain
//	                                neither ' ' nor ',' (the line is split
//	                                on whitespace and the literal on
//	                                commas, so those bytes are rejected)
//	choice/commit/partcommit/jump   a signed relative offset
//	call                            a bare rule name
//	capopen                         a capture-kind name, then an optional
//	                                quoted capture name
//	capclose                        a capture-kind name
//	any/nop/return/fail             no operand
//
// Blank lines and lines starting with # are ignored. Offsets are relative,
// exactly as Instruction.Offset stores them; Asm never resolves or
// rewrites addresses, so a disassembly produced with absolute addresses
// (ToString's operandString) is not itself valid Asm input — Asm fixtures
// are written directly in the mnemonic/relative-offset form shown above.

var mnemonicToOpcode = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeNames))
	for op, name := range opcodeNames {
		if name != "" {
			m[name] = Opcode(op)
		}
	}
	return m
}()

var nameToCaptureKind = func() map[string]CaptureKind {
	m := make(map[string]CaptureKind, len(captureKindNames))
	for k, name := range captureKindNames {
		if name != "" {
			m[name] = CaptureKind(k)
		}
	}
	return m
}()

// Asm parses src in the textual assembly format described above into a
// Pattern.
func Asm(src []byte) (Pattern, error) {
	a := &asmReader{s: bufio.NewScanner(bytes.NewReader(src))}

	fields := a.next()
	if len(fields) == 0 || !strings.EqualFold(fields[0], "code:") {
		return nil, a.sectionErr("code:", fields)
	}

	var p Pattern
	for fields = a.next(); len(fields) != 0; fields = a.next() {
		ins, err := a.instruction(fields)
		if err != nil {
			return nil, err
		}
		p = append(p, ins)
	}
	if a.err != nil {
		return nil, fmt.Errorf("pegasm: %w", a.err)
	}
	return p, nil
}

type asmReader struct {
	s       *bufio.Scanner
	rawLine string
	err     error
}

func (a *asmReader) sectionErr(want string, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("pegasm: expected %s section, found end of input", want)
	}
	return fmt.Errorf("pegasm: expected %s section, found %q", want, fields[0])
}

// next returns the fields of the next non-empty, non-comment line.
func (a *asmReader) next() []string {
	a.rawLine = ""
	if a.err != nil {
		return nil
	}
	for a.s.Scan() {
		line := a.s.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		for i, fld := range fields {
			if strings.HasPrefix(fld, "#") {
				fields = fields[:i]
				break
			}
		}
		a.rawLine = line
		return fields
	}
	a.err = a.s.Err()
	return nil
}

func (a *asmReader) instruction(fields []string) (Instruction, error) {
	op, ok := mnemonicToOpcode[strings.ToLower(fields[0])]
	if !ok {
		return Instruction{}, fmt.Errorf("pegasm: invalid opcode: %s", fields[0])
	}

	switch op {
	case OpStr, OpIStr, OpErr, OpBackref:
		s, err := a.quotedOperand(fields)
		if err != nil {
			return Instruction{}, err
		}
		switch op {
		case OpBackref:
			return Instruction{Op: op, RefName: s}, nil
		default:
			return Instruction{Op: op, Str: s}, nil
		}

	case OpSet, OpSpan:
		if len(fields) != 2 {
			return Instruction{}, fmt.Errorf("pegasm: %s: expected a char-set operand", fields[0])
		}
		cs, err := parseSet(fields[1])
		if err != nil {
			return Instruction{}, fmt.Errorf("pegasm: %s: %w", fields[0], err)
		}
		return Instruction{Op: op, Set: cs}, nil

	case OpChoice, OpCommit, OpPartCommit, OpJump:
		if len(fields) != 2 {
			return Instruction{}, fmt.Errorf("pegasm: %s: expected one offset operand", fields[0])
		}
		n, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return Instruction{}, fmt.Errorf("pegasm: %s: invalid offset %q: %w", fields[0], fields[1], err)
		}
		return Instruction{Op: op, Offset: int32(n)}, nil

	case OpCall:
		if len(fields) != 2 {
			return Instruction{}, fmt.Errorf("pegasm: call: expected a rule-name operand")
		}
		return Instruction{Op: op, Label: fields[1]}, nil

	case OpCapOpen:
		if len(fields) < 2 {
			return Instruction{}, fmt.Errorf("pegasm: capopen: expected a capture-kind operand")
		}
		kind, ok := nameToCaptureKind[strings.ToLower(fields[1])]
		if !ok {
			return Instruction{}, fmt.Errorf("pegasm: capopen: invalid capture kind: %s", fields[1])
		}
		ins := Instruction{Op: op, CapKind: kind}
		if len(fields) > 2 {
			name, err := a.quotedOperand(fields)
			if err != nil {
				return Instruction{}, err
			}
			ins.CapName = name
		}
		return ins, nil

	case OpCapClose:
		if len(fields) != 2 {
			return Instruction{}, fmt.Errorf("pegasm: capclose: expected a capture-kind operand")
		}
		kind, ok := nameToCaptureKind[strings.ToLower(fields[1])]
		if !ok {
			return Instruction{}, fmt.Errorf("pegasm: capclose: invalid capture kind: %s", fields[1])
		}
		return Instruction{Op: op, CapKind: kind}, nil

	default: // OpAny, OpNop, OpReturn, OpFail: no operand
		if len(fields) != 1 {
			return Instruction{}, fmt.Errorf("pegasm: %s: expected no operand, got %d fields", fields[0], len(fields))
		}
		return Instruction{Op: op}, nil
	}
}

var rxQuoted = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)

// quotedOperand extracts the quoted string from the raw source line, so the
// operand may itself contain whitespace that strings.Fields would have
// split on.
func (a *asmReader) quotedOperand(fields []string) (string, error) {
	qs := rxQuoted.FindString(a.rawLine)
	if qs == "" {
		return "", fmt.Errorf("pegasm: %s: expected a quoted operand, got %q", fields[0], a.rawLine)
	}
	s, err := strconv.Unquote(qs)
	if err != nil {
		return "", fmt.Errorf("pegasm: %s: invalid quoted operand %q: %w", fields[0], qs, err)
	}
	return s, nil
}

// parseSet inverts DumpSet: {'a'..'z','_'} or {} for an empty set. The
// literal is split on commas, so a set containing the byte ',' (which
// DumpSet renders as ',') is rejected.
func parseSet(s string) (CharSet, error) {
	var cs CharSet
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return cs, fmt.Errorf("invalid char-set literal: %q", s)
	}
	inner := s[1 : len(s)-1]
	if inner == "" {
		return cs, nil
	}
	for _, tok := range strings.Split(inner, ",") {
		lo, hi, err := parseSetRange(tok)
		if err != nil {
			return cs, err
		}
		cs.AddRange(lo, hi)
	}
	return cs, nil
}

func parseSetRange(tok string) (byte, byte, error) {
	parts := strings.SplitN(tok, "..", 2)
	lo, err := parseSetByte(parts[0])
	if err != nil {
		return 0, 0, err
	}
	if len(parts) == 1 {
		return lo, lo, nil
	}
	hi, err := parseSetByte(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// parseSetByte parses a single 'c' byte literal, the inverse of escapeByte.
func parseSetByte(tok string) (byte, error) {
	if len(tok) < 3 || tok[0] != '\'' || tok[len(tok)-1] != '\'' {
		return 0, fmt.Errorf("invalid char-set byte literal: %q", tok)
	}
	body := tok[1 : len(tok)-1]
	switch body {
	case `\n`:
		return '\n', nil
	case `\r`:
		return '\r', nil
	case `\t`:
		return '\t', nil
	case `\'`:
		return '\'', nil
	case `\\`:
		return '\\', nil
	}
	if strings.HasPrefix(body, `\x`) && len(body) == 4 {
		n, err := strconv.ParseUint(body[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid char-set byte literal: %q: %w", tok, err)
		}
		return byte(n), nil
	}
	if len(body) == 1 {
		return body[0], nil
	}
	return 0, fmt.Errorf("invalid char-set byte literal: %q", tok)
}

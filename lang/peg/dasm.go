package peg

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// ToString renders p as one line per instruction:
//
//	<index>: <opcode>[<padded-name>] <operands>
//
// Choice/Commit/PartCommit/Jump/Call operands are printed as the absolute
// target index (i+offset), not the raw relative offset, to aid reading.
// labels, if non-nil, maps an instruction index to a rule name; a header
// line is printed immediately before any instruction whose index has an
// entry. Since labels holds one name per index, at most one header line
// precedes a given instruction.
func ToString(p Pattern, labels map[int]string) string {
	var sb strings.Builder

	byIndex := make(map[int][]string, len(labels))
	for idx, name := range labels {
		byIndex[idx] = append(byIndex[idx], name)
	}

	for i, ins := range p {
		if names, ok := byIndex[i]; ok {
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(&sb, "%s:\n", name)
			}
		}
		fmt.Fprintf(&sb, "%03d: %-10s%s\n", i, ins.Op, operandString(i, ins))
	}
	return sb.String()
}

func operandString(i int, ins Instruction) string {
	switch ins.Op {
	case OpStr, OpIStr:
		return quoteString(ins.Str)
	case OpSet, OpSpan:
		return DumpSet(ins.Set)
	case OpChoice, OpCommit, OpPartCommit:
		return strconv.Itoa(i + int(ins.Offset))
	case OpCall:
		target := strconv.Itoa(i + int(ins.Offset))
		if ins.Label != "" {
			return target + " " + ins.Label
		}
		return target
	case OpJump:
		return strconv.Itoa(i + int(ins.Offset))
	case OpCapOpen:
		s := ins.CapKind.String()
		if ins.CapName != "" {
			s += " " + quoteString(ins.CapName)
		}
		if ins.CapAction != nil {
			s += ": " + fmt.Sprint(ins.CapAction)
		}
		return s
	case OpCapClose:
		return ins.CapKind.String()
	case OpBackref:
		return quoteString(ins.RefName)
	case OpErr:
		return quoteString(ins.Str)
	default:
		return ""
	}
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteString(hexEscape(b))
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// sortedLabelNames returns the label names in labels, sorted, for callers
// that want a deterministic listing of a symbol table alongside a
// disassembly.
func sortedLabelNames(labels map[int]string) []string {
	names := maps.Values(labels)
	sort.Strings(names)
	return names
}

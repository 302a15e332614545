// Package ast defines the node types for a Parsing Expression Grammar
// expressed in the algebraic notation the translator (package translate)
// consumes: literals, character classes, sequence, ordered choice,
// repetition, predicates, captures and rule references. Building this tree
// from PEG surface syntax is a front-end concern out of this module's
// scope; values are constructed directly (by a parser living elsewhere, or
// by hand in tests).
package ast

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mna/pegc/lang/token"
)

// Node represents any node in the AST.
type Node interface {
	// Every Node implements fmt.Formatter so it can print a description of
	// itself. Supported verbs are 'v' and 's'; a width truncates or
	// left/right-pads (via '-') the label, and '#' appends child counts.
	fmt.Formatter

	// Span reports the start and end position of the node.
	Span() (start, end token.Pos)

	// Walk enters each child node to implement the Visitor pattern.
	Walk(v Visitor)
}

// Expr represents a PEG expression node.
type Expr interface {
	Node
	expr()
}

type (
	// LiteralExpr represents a literal string or single character, e.g. 'a'
	// or "ab". CaseInsensitive is set for the i"..." prefixed form.
	LiteralExpr struct {
		Start           token.Pos
		Value           string
		CaseInsensitive bool
	}

	// IntExpr represents a non-negative integer literal used as a
	// fixed-width "match n bytes" atom, e.g. the bare 3 in 3 * 'x'.
	IntExpr struct {
		Start token.Pos
		Value int
	}

	// IdentExpr represents a rule-name reference, e.g. digit.
	IdentExpr struct {
		Start token.Pos
		Name  string
	}

	// CharClassExpr represents a character-class literal, e.g.
	// {'a'..'z','_'}.
	CharClassExpr struct {
		Lbrace token.Pos
		Items  []CharClassItem
		Rbrace token.Pos
	}

	// CharClassItem is a single element of a CharClassExpr: either a lone
	// byte (Lo == Hi) or an inclusive range.
	CharClassItem struct {
		Lo, Hi byte
	}

	// PrefixExpr represents a prefix combinator application: ?, *, +, !, &,
	// >, @ applied to Right.
	PrefixExpr struct {
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// InfixExpr represents an infix combinator application: Left Op Right,
	// for Op in *, |, -, %. For Op == PERCENT, Right is the action payload
	// attached to Left rather than a pattern operand in its own right.
	InfixExpr struct {
		Left  Expr
		Op    token.Token
		OpPos token.Pos
		Right Expr
	}

	// GroupExpr represents a parenthesized sub-expression, optionally
	// carrying a second, action child (the two-child form of §4.G's
	// "parenthesized/block" rule): (Body) or (Body => Action).
	GroupExpr struct {
		Lparen token.Pos
		Body   Expr
		Action Expr // nil for the single-child form
		Rparen token.Pos
	}

	// RepeatExpr represents a curly-brace repetition: Body{N} (Exact) or
	// Body{From..To} (range).
	RepeatExpr struct {
		Body   Expr
		Exact  bool
		N      int
		From   int
		To     int
		Lbrace token.Pos
		Rbrace token.Pos
	}

	// JSONCaptureExpr represents a call-shaped JSON-capture node: Js(p),
	// Ji(p), Jf(p), Ja(p), Jo(p) (unary forms) or Jt(name, p) /
	// Jt(nameExpr, p) (the field-capture forms, distinguished by whether
	// Name is a string literal or an arbitrary expression).
	JSONCaptureExpr struct {
		Fn     string // "Js", "Ji", "Jf", "Ja", "Jo", "Jt"
		Lparen token.Pos
		Name   Expr // non-nil only for Fn == "Jt"
		Body   Expr
		Rparen token.Pos
	}

	// BackrefExpr represents a reference to text previously captured under
	// Name, e.g. =quote.
	BackrefExpr struct {
		Start token.Pos
		Name  string
	}

	// ErrExpr represents an explicit, unconditional-failure construct
	// carrying a diagnostic message, e.g. err("unterminated string").
	ErrExpr struct {
		Start token.Pos
		Msg   string
	}

	// BadExpr represents a node whose shape the translator could not
	// recognize; carried through so error reporting can still print a span.
	BadExpr struct {
		Start, End token.Pos
	}
)

func (*LiteralExpr) expr()     {}
func (*IntExpr) expr()         {}
func (*IdentExpr) expr()       {}
func (*CharClassExpr) expr()   {}
func (*PrefixExpr) expr()      {}
func (*InfixExpr) expr()       {}
func (*GroupExpr) expr()       {}
func (*RepeatExpr) expr()      {}
func (*JSONCaptureExpr) expr() {}
func (*BackrefExpr) expr()     {}
func (*ErrExpr) expr()         {}
func (*BadExpr) expr()         {}

func (n *LiteralExpr) Span() (token.Pos, token.Pos) {
	line, col := n.Start.LineCol()
	return n.Start, token.MakePos(line, col+len(n.Value))
}
func (n *LiteralExpr) Walk(Visitor) {}
func (n *LiteralExpr) Format(f fmt.State, verb rune) {
	label := fmt.Sprintf("%q", n.Value)
	if n.CaseInsensitive {
		label = "i" + label
	}
	format(f, verb, n, label, nil)
}

func (n *IntExpr) Span() (token.Pos, token.Pos) { return n.Start, n.Start }
func (n *IntExpr) Walk(Visitor)                 {}
func (n *IntExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("%d", n.Value), nil)
}

func (n *IdentExpr) Span() (token.Pos, token.Pos) { return n.Start, n.Start }
func (n *IdentExpr) Walk(Visitor)                 {}
func (n *IdentExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Name, nil)
}

func (n *CharClassExpr) Span() (token.Pos, token.Pos) { return n.Lbrace, n.Rbrace }
func (n *CharClassExpr) Walk(Visitor)                 {}
func (n *CharClassExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "charclass", map[string]int{"items": len(n.Items)})
}

func (n *PrefixExpr) Span() (token.Pos, token.Pos) {
	_, end := n.Right.Span()
	return n.OpPos, end
}
func (n *PrefixExpr) Walk(v Visitor) { Walk(v, n.Right) }
func (n *PrefixExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "prefix("+n.Op.String()+")", nil)
}

func (n *InfixExpr) Span() (token.Pos, token.Pos) {
	start, _ := n.Left.Span()
	_, end := n.Right.Span()
	return start, end
}
func (n *InfixExpr) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}
func (n *InfixExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "infix("+n.Op.String()+")", nil)
}

func (n *GroupExpr) Span() (token.Pos, token.Pos) { return n.Lparen, n.Rparen }
func (n *GroupExpr) Walk(v Visitor) {
	Walk(v, n.Body)
	if n.Action != nil {
		Walk(v, n.Action)
	}
}
func (n *GroupExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "group", map[string]int{"action": boolToInt(n.Action != nil)})
}

func (n *RepeatExpr) Span() (token.Pos, token.Pos) { return n.Lbrace, n.Rbrace }
func (n *RepeatExpr) Walk(v Visitor)               { Walk(v, n.Body) }
func (n *RepeatExpr) Format(f fmt.State, verb rune) {
	label := fmt.Sprintf("repeat{%d}", n.N)
	if !n.Exact {
		label = fmt.Sprintf("repeat{%d..%d}", n.From, n.To)
	}
	format(f, verb, n, label, nil)
}

func (n *JSONCaptureExpr) Span() (token.Pos, token.Pos) { return n.Lparen, n.Rparen }
func (n *JSONCaptureExpr) Walk(v Visitor) {
	if n.Name != nil {
		Walk(v, n.Name)
	}
	Walk(v, n.Body)
}
func (n *JSONCaptureExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, n.Fn+"(...)", nil)
}

func (n *BackrefExpr) Span() (token.Pos, token.Pos) {
	line, col := n.Start.LineCol()
	return n.Start, token.MakePos(line, col+len(n.Name)+1)
}
func (n *BackrefExpr) Walk(Visitor) {}
func (n *BackrefExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "="+n.Name, nil)
}

func (n *ErrExpr) Span() (token.Pos, token.Pos) { return n.Start, n.Start }
func (n *ErrExpr) Walk(Visitor)                 {}
func (n *ErrExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, fmt.Sprintf("err(%q)", n.Msg), nil)
}

func (n *BadExpr) Span() (token.Pos, token.Pos) { return n.Start, n.End }
func (n *BadExpr) Walk(Visitor)                 {}
func (n *BadExpr) Format(f fmt.State, verb rune) {
	format(f, verb, n, "bad", nil)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func format(f fmt.State, verb rune, n Node, label string, counts map[string]int) {
	if verb != 'v' && verb != 's' {
		fmt.Fprintf(f, "%%!%c(%T)", verb, n)
		return
	}

	label = strings.ReplaceAll(label, "\n", "⏎")
	label = strings.ReplaceAll(label, "\t", "⭾")

	if w, ok := f.Width(); ok {
		minus, plus := f.Flag('-'), f.Flag('+')
		runes := []rune(label)
		if len(runes) >= w {
			runes = runes[:w]
		} else if minus {
			runes = append(runes, []rune(strings.Repeat(" ", w-len(runes)))...)
		} else if !plus {
			runes = append([]rune(strings.Repeat(" ", w-len(runes))), runes...)
		}
		label = string(runes)
	}

	fmt.Fprint(f, label)
	if f.Flag('#') && len(counts) > 0 {
		keys := make([]string, 0, len(counts))
		for k := range counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprint(f, " {")
		for i, k := range keys {
			if i > 0 {
				fmt.Fprint(f, ", ")
			}
			fmt.Fprintf(f, "%s=%d", k, counts[k])
		}
		fmt.Fprint(f, "}")
	}
}

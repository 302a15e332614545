package translate

import (
	"github.com/mna/pegc/lang/ast"
	"github.com/mna/pegc/lang/peg"
	"github.com/mna/pegc/lang/token"
)

// Translate walks n and produces the Pattern it denotes, consulting syms to
// inline already-compiled rules instead of re-emitting a Call. syms may be
// nil, equivalent to an empty table (every identifier becomes a Call).
//
// Capture ids are assigned by a counter local to this call: every
// invocation of Translate starts counting from zero, so ids are unique
// within one translated rule but not across rules. There is no global
// mutable state (spec §9's recursive-translation design note).
func Translate(n ast.Expr, syms *SymbolTable) (peg.Pattern, error) {
	t := &translator{syms: syms}
	return t.translate(n)
}

type translator struct {
	syms      *SymbolTable
	nextCapID int
}

func (t *translator) capID() int {
	id := t.nextCapID
	t.nextCapID++
	return id
}

func (t *translator) translate(n ast.Expr) (peg.Pattern, error) {
	switch n := n.(type) {
	case *ast.LiteralExpr:
		return t.translateLiteral(n)
	case *ast.IntExpr:
		return peg.Any(n.Value), nil
	case *ast.IdentExpr:
		return t.translateIdent(n)
	case *ast.CharClassExpr:
		return t.translateCharClass(n)
	case *ast.PrefixExpr:
		return t.translatePrefix(n)
	case *ast.InfixExpr:
		return t.translateInfix(n)
	case *ast.GroupExpr:
		return t.translateGroup(n)
	case *ast.RepeatExpr:
		return t.translateRepeat(n)
	case *ast.JSONCaptureExpr:
		return t.translateJSONCapture(n)
	case *ast.BackrefExpr:
		return peg.Backref(n.Name), nil
	case *ast.ErrExpr:
		return peg.Err(n.Msg), nil
	default:
		return nil, peg.NewError(peg.UnknownConstruct, "unrecognized AST node %T", n)
	}
}

func (t *translator) translateLiteral(n *ast.LiteralExpr) (peg.Pattern, error) {
	if n.CaseInsensitive {
		return peg.IStr(n.Value), nil
	}
	return peg.Str(n.Value), nil
}

func (t *translator) translateIdent(n *ast.IdentExpr) (peg.Pattern, error) {
	if t.syms != nil {
		if p, ok := t.syms.Lookup(n.Name); ok {
			return p, nil
		}
	}
	return peg.Call(n.Name), nil
}

func (t *translator) translateCharClass(n *ast.CharClassExpr) (peg.Pattern, error) {
	var cs peg.CharSet
	for _, item := range n.Items {
		if item.Lo > item.Hi {
			return nil, peg.NewError(peg.MalformedCharClass,
				"invalid char-class range %q..%q: low > high", item.Lo, item.Hi)
		}
		cs.AddRange(item.Lo, item.Hi)
	}
	if cs.Empty() {
		return peg.Any(1), nil
	}
	return peg.Set(cs), nil
}

func (t *translator) translatePrefix(n *ast.PrefixExpr) (peg.Pattern, error) {
	body, err := t.translate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case token.QMARK:
		return peg.Optional(body)
	case token.STAR:
		return peg.Star(body)
	case token.PLUS:
		return peg.Plus(body)
	case token.BANG:
		return peg.Not(body)
	case token.AMP:
		return peg.And(body)
	case token.GT:
		return peg.CaptureStr(body, t.capID()), nil
	case token.AT:
		return peg.Search(body)
	default:
		return nil, peg.NewError(peg.UnknownConstruct, "unrecognized prefix operator %q", n.Op)
	}
}

// translateInfix dispatches *, |, - to the corresponding combinator. % is
// special: its right operand is not itself translated to a pattern; it is
// the opaque action payload attached to the left operand's capture (spec
// §4.G: "Operator % emits capture(aux(lhs), Action) with the RHS node
// attached as capAction on the open marker").
func (t *translator) translateInfix(n *ast.InfixExpr) (peg.Pattern, error) {
	if n.Op == token.PERCENT {
		left, err := t.translate(n.Left)
		if err != nil {
			return nil, err
		}
		return peg.Capture(left, peg.CapAction, "", n.Right, t.capID()), nil
	}

	left, err := t.translate(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.translate(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case token.STAR:
		return peg.Sequence(left, right)
	case token.PIPE:
		return peg.Choice(left, right)
	case token.MINUS:
		return peg.Diff(left, right)
	default:
		return nil, peg.NewError(peg.UnknownConstruct, "unrecognized infix operator %q", n.Op)
	}
}

// translateGroup handles the parenthesized/block forms: a single child
// simply recurses, and a two-child form wraps the first child as an action
// capture carrying the second (spec §4.G).
func (t *translator) translateGroup(n *ast.GroupExpr) (peg.Pattern, error) {
	body, err := t.translate(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Action == nil {
		return body, nil
	}
	return peg.Capture(body, peg.CapAction, "", n.Action, t.capID()), nil
}

func (t *translator) translateRepeat(n *ast.RepeatExpr) (peg.Pattern, error) {
	body, err := t.translate(n.Body)
	if err != nil {
		return nil, err
	}
	if n.Exact {
		return peg.Exact(body, n.N)
	}
	return peg.Range(body, n.From, n.To)
}

// translateJSONCapture handles the call-shaped Jx(p) nodes. Js/Ji/Jf/Ja/Jo
// are unary and map directly to a JSON capture kind; Jt is the field-name
// form, binary, distinguished by whether its name operand is a plain
// (non-case-insensitive) string literal — a fixed field name — or any
// other expression, in which case the name is evaluated at runtime and
// carried through as an opaque payload the same way action capAction is
// (spec §9's capAction-opacity note; see DESIGN.md for why "Jt" rather than
// the literal spec text's "Jf" is used for the field form, to avoid
// colliding with the unary Jf/JFloat name).
func (t *translator) translateJSONCapture(n *ast.JSONCaptureExpr) (peg.Pattern, error) {
	body, err := t.translate(n.Body)
	if err != nil {
		return nil, err
	}

	switch n.Fn {
	case "Js":
		return peg.Capture(body, peg.CapJString, "", nil, t.capID()), nil
	case "Ji":
		return peg.Capture(body, peg.CapJInt, "", nil, t.capID()), nil
	case "Jf":
		return peg.Capture(body, peg.CapJFloat, "", nil, t.capID()), nil
	case "Ja":
		return peg.Capture(body, peg.CapJArray, "", nil, t.capID()), nil
	case "Jo":
		return peg.Capture(body, peg.CapJObject, "", nil, t.capID()), nil
	case "Jt":
		if n.Name == nil {
			return nil, peg.NewError(peg.MalformedCapture, "Jt requires a field-name argument")
		}
		if lit, ok := n.Name.(*ast.LiteralExpr); ok && !lit.CaseInsensitive {
			return peg.Capture(body, peg.CapJFieldFixed, lit.Value, nil, t.capID()), nil
		}
		return peg.Capture(body, peg.CapJFieldDynamic, "", n.Name, t.capID()), nil
	default:
		return nil, peg.NewError(peg.MalformedCapture, "unknown JSON capture kind %q", n.Fn)
	}
}

package ast

import (
	"fmt"
	"testing"

	"github.com/mna/pegc/lang/token"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	lit := &LiteralExpr{Value: "ab"}
	require.Equal(t, `"ab"`, fmt.Sprintf("%v", lit))

	ilit := &LiteralExpr{Value: "ab", CaseInsensitive: true}
	require.Equal(t, `i"ab"`, fmt.Sprintf("%v", ilit))

	id := &IdentExpr{Name: "digit"}
	require.Equal(t, "digit", fmt.Sprintf("%s", id))
}

// TestWalkVisitsChildren checks that a Visitor whose Visit returns itself
// recurses through InfixExpr/PrefixExpr into every descendant node, in
// depth-first enter order.
func TestWalkVisitsChildren(t *testing.T) {
	tree := &InfixExpr{
		Left:  &LiteralExpr{Value: "a"},
		Op:    token.PIPE,
		Right: &PrefixExpr{Op: token.STAR, Right: &IdentExpr{Name: "x"}},
	}

	var visited []Node
	var v VisitorFunc
	v = func(n Node, dir VisitDirection) Visitor {
		if dir == VisitEnter {
			visited = append(visited, n)
			return v
		}
		return nil
	}
	Walk(v, tree)

	require.Equal(t, []Node{tree, tree.Left, tree.Right, tree.Right.(*PrefixExpr).Right}, visited)
}

func TestGroupExprSpan(t *testing.T) {
	g := &GroupExpr{
		Lparen: token.MakePos(1, 1),
		Body:   &LiteralExpr{Value: "a"},
		Rparen: token.MakePos(1, 5),
	}
	start, end := g.Span()
	require.Equal(t, g.Lparen, start)
	require.Equal(t, g.Rparen, end)
}

package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestGoString(t *testing.T) {
	require.Equal(t, "'?'", QMARK.GoString())
	require.Equal(t, "identifier", IDENT.GoString())
}

func TestIsPrefixOp(t *testing.T) {
	for _, tok := range []Token{QMARK, STAR, PLUS, BANG, AMP, GT, AT} {
		require.True(t, tok.IsPrefixOp(), tok.String())
	}
	for _, tok := range []Token{IDENT, INT, STRING, PIPE, MINUS, PERCENT, LPAREN} {
		require.False(t, tok.IsPrefixOp(), tok.String())
	}
}

func TestIsInfixOp(t *testing.T) {
	for _, tok := range []Token{STAR, PIPE, MINUS, PERCENT} {
		require.True(t, tok.IsInfixOp(), tok.String())
	}
	for _, tok := range []Token{QMARK, PLUS, BANG, AMP, GT, AT, IDENT} {
		require.False(t, tok.IsInfixOp(), tok.String())
	}
}

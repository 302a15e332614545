package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtoms(t *testing.T) {
	require.Equal(t, Pattern{{Op: OpStr, Str: "ab"}}, Str("ab"))
	require.Equal(t, Pattern{{Op: OpIStr, Str: "ab"}}, IStr("ab"))
	require.Equal(t, Pattern{{Op: OpSet, Set: NewCharSet('x')}}, Set(NewCharSet('x')))
	require.Equal(t, Pattern{{Op: OpCall, Label: "rule"}}, Call("rule"))
	require.Equal(t, Pattern{{Op: OpBackref, RefName: "n"}}, Backref("n"))
	require.Equal(t, Pattern{{Op: OpReturn}}, ReturnInst())
	require.Equal(t, Pattern{{Op: OpErr, Str: "bad"}}, Err("bad"))
}

func TestAny(t *testing.T) {
	require.Equal(t, Pattern{{Op: OpNop}}, Any(0))
	require.Equal(t, Pattern{{Op: OpNop}}, Any(-1))
	require.Equal(t, Pattern{{Op: OpAny}, {Op: OpAny}, {Op: OpAny}}, Any(3))
}

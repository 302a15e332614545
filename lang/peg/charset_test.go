package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharSetAddContains(t *testing.T) {
	var cs CharSet
	require.True(t, cs.Empty())
	cs.Add('a')
	cs.AddRange('0', '9')
	require.True(t, cs.Contains('a'))
	require.True(t, cs.Contains('5'))
	require.False(t, cs.Contains('b'))
	require.Equal(t, 11, cs.Len())
}

func TestCharSetUnionDiff(t *testing.T) {
	a := NewCharSet('a', 'b', 'c')
	b := NewCharSet('b', 'c', 'd')

	u := a.Union(b)
	require.Equal(t, []byte{'a', 'b', 'c', 'd'}, sortedBytes(u))

	d := a.Diff(b)
	require.Equal(t, []byte{'a'}, sortedBytes(d))
}

func TestCharSetEqualSingleton(t *testing.T) {
	require.True(t, NewCharSet('x').Equal(NewCharSet('x')))
	require.False(t, NewCharSet('x').Equal(NewCharSet('y')))

	b, ok := NewCharSet('z').Singleton()
	require.True(t, ok)
	require.Equal(t, byte('z'), b)

	_, ok = NewCharSet('y', 'z').Singleton()
	require.False(t, ok)
}

func TestAnyByte(t *testing.T) {
	for i := 0; i < 256; i++ {
		require.True(t, AnyByte.Contains(byte(i)))
	}
	require.Equal(t, 256, AnyByte.Len())
}

func TestDumpSet(t *testing.T) {
	cases := []struct {
		desc string
		cs   CharSet
		want string
	}{
		{"empty", CharSet{}, "{}"},
		{"singleton", NewCharSet('a'), "{'a'}"},
		{"range", func() CharSet { var cs CharSet; cs.AddRange('a', 'z'); return cs }(), "{'a'..'z'}"},
		{"two ranges", func() CharSet {
			var cs CharSet
			cs.AddRange('a', 'z')
			cs.AddRange('0', '9')
			return cs
		}(), "{'0'..'9','a'..'z'}"},
		{"escapes", NewCharSet('\n', '\t'), "{'\\t'..'\\n'}"},
		{"non printable", NewCharSet(0x01), `{'\x01'}`},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, DumpSet(tc.cs))
		})
	}
}

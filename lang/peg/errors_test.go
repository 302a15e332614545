package peg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "unknown construct", UnknownConstruct.String())
	require.Equal(t, "malformed capture", MalformedCapture.String())
	require.Equal(t, "malformed char class", MalformedCharClass.String())
	require.Equal(t, "pattern too large", PatternTooLarge.String())
	require.Contains(t, ErrorKind(99).String(), "unknown error kind")
}

func TestNewError(t *testing.T) {
	err := NewError(MalformedCapture, "bad capture %q", "foo")
	require.EqualError(t, err, `bad capture "foo"`)
	require.Equal(t, MalformedCapture, err.Kind)
}

func TestMaxPattLen(t *testing.T) {
	orig := MaxPattLen
	defer func() { MaxPattLen = orig }()

	MaxPattLen = 2
	_, err := Exact(Str("a"), 3)
	require.Error(t, err)
	var pegErr *Error
	require.ErrorAs(t, err, &pegErr)
	require.Equal(t, PatternTooLarge, pegErr.Kind)
}

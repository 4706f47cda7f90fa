package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumDeterministic(t *testing.T) {
	require := require.New(t)

	a := Sum([]byte("parent-sig"), []byte("generator-pubkey"))
	b := Sum([]byte("parent-sig"), []byte("generator-pubkey"))
	require.Equal(a, b)
}

func TestSumOrderMatters(t *testing.T) {
	require := require.New(t)

	a := Sum([]byte("aaa"), []byte("bbb"))
	b := Sum([]byte("bbb"), []byte("aaa"))
	require.NotEqual(a, b)
}

func TestSumConcatenationNotSeparated(t *testing.T) {
	// Sum("ab", "c") and Sum("a", "bc") both hash "abc": the primitive is
	// defined over the concatenation, with no length-prefix separator.
	require := require.New(t)

	a := Sum([]byte("ab"), []byte("c"))
	b := Sum([]byte("a"), []byte("bc"))
	require.Equal(a, b)
}

func TestSumEmptyInput(t *testing.T) {
	require := require.New(t)

	var out [Size]byte
	require.NotPanics(func() {
		out = Sum()
	})
	require.NotEqual([Size]byte{}, out, "Keccak-256 of the empty string is a well-known non-zero constant")
}

package fast

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWriter_AccumulatesSequentialAndBulkWrites checks a run of single-byte
// and bulk writes followed by one Bytes() read; digest.Sum uses the bulk
// Write and Bytes half of that surface.
func TestWriter_AccumulatesSequentialAndBulkWrites(t *testing.T) {
	require := require.New(t)
	const N = 100
	extraData := []byte{0, 0, 0xFF, 9, 0}

	w := NewWriter(make([]byte, 0, N/2))
	for i := byte(0); i < N; i++ {
		w.WriteByte(i)
	}
	require.Equal(N, len(w.Bytes()), "Writer should contain N bytes")

	w.Write(extraData)
	require.Equal(N+len(extraData), len(w.Bytes()), "Writer should contain N + extra bytes")

	for i := byte(0); i < N; i++ {
		require.Equal(i, w.Bytes()[i])
	}
	require.Equal(extraData, w.Bytes()[N:])
}

func TestWriter_NilInitialSlice(t *testing.T) {
	w := NewWriter(nil)
	w.WriteByte(0xAA)
	require.Equal(t, []byte{0xAA}, w.Bytes())
}

// Benchmark compares the custom Writer against the standard library's
// bytes.Buffer for single-byte appends.
func Benchmark(b *testing.B) {
	b.Run("Std", func(b *testing.B) {
		w := bytes.NewBuffer(make([]byte, 0, b.N))
		for i := 0; i < b.N; i++ {
			w.WriteByte(byte(i))
		}
		require.Equal(b, b.N, len(w.Bytes()))
	})
	b.Run("Fast", func(b *testing.B) {
		w := NewWriter(make([]byte, 0, b.N))
		for i := 0; i < b.N; i++ {
			w.WriteByte(byte(i))
		}
		require.Equal(b, b.N, len(w.Bytes()))
	})
}

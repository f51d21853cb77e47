package compression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	in := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog ", 50))

	compressed, err := Compress(in)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(in))

	out, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEmptyInput(t *testing.T) {
	compressed, err := Compress(nil)
	require.NoError(t, err)

	out, err := Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecompressGarbageFails(t *testing.T) {
	_, err := Decompress([]byte{0xff, 0xff, 0xff, 0xff})
	require.Error(t, err)
}

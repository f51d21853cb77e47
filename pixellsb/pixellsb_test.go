package pixellsb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newWhiteRGBA(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 0xFF
	}
	return buf
}

func TestPixelLSBRoundTripText(t *testing.T) {
	img := newWhiteRGBA(10, 10)
	require.NoError(t, EmbedText(img, "Hello", 1))

	got, err := ExtractText(img, 1)
	require.NoError(t, err)
	require.Equal(t, "Hello", got)

	// Alpha channel must remain untouched.
	for i := 3; i < len(img); i += 4 {
		require.EqualValues(t, 0xFF, img[i], "alpha byte at offset %d was modified", i)
	}
}

func TestPixelLSBRoundTripData(t *testing.T) {
	for _, depth := range []int{1, 2, 3, 4} {
		img := newWhiteRGBA(10, 10)
		data := []byte{0x00, 0x01, 0xFE, 0xFF, 0x42}
		require.NoError(t, EmbedData(img, data, depth))

		got, err := ExtractData(img, len(data), depth)
		require.NoError(t, err)
		require.Equal(t, data, got)
	}
}

func TestCalculateCapacity(t *testing.T) {
	require.EqualValues(t, 3750, CalculateCapacity(100, 100, 1))
	require.EqualValues(t, 7500, CalculateCapacity(100, 100, 2))
	require.EqualValues(t, 15000, CalculateCapacity(100, 100, 4))
}

func TestInvalidBitDepth(t *testing.T) {
	img := newWhiteRGBA(4, 4)
	require.Error(t, EmbedData(img, []byte("x"), 0))
	require.Error(t, EmbedData(img, []byte("x"), 5))
}

func TestCapacityExceeded(t *testing.T) {
	img := newWhiteRGBA(2, 2) // capacity at depth 1: floor(4*3*1/8) = 1 byte
	err := EmbedData(img, []byte{1, 2}, 1)
	require.Error(t, err)
}

func TestCapacityExactFits(t *testing.T) {
	img := newWhiteRGBA(100, 100) // 3750 bytes capacity at depth 1
	data := make([]byte, 3750)
	require.NoError(t, EmbedData(img, data, 1))
}

func TestFileHeaderRoundTrip(t *testing.T) {
	header, err := EncodeFileHeader("notes.txt", 4096)
	require.NoError(t, err)

	name, size, consumed, err := DecodeFileHeader(header)
	require.NoError(t, err)
	require.Equal(t, "notes.txt", name)
	require.EqualValues(t, 4096, size)
	require.Equal(t, len(header), consumed)
}

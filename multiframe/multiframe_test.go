package multiframe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/stegerrors"
)

func whiteFrame(w, h int) []byte {
	buf := make([]byte, w*h*4)
	for i := range buf {
		buf[i] = 0xFF
	}
	return buf
}

func TestEmbedFirstExtract(t *testing.T) {
	frames := [][]byte{whiteFrame(20, 20), whiteFrame(20, 20), whiteFrame(20, 20)}
	payload, err := frame.EncodePayload(frame.TypeText, []byte("hello frame"), "")
	require.NoError(t, err)

	out, err := EmbedFirst(frames, payload, 1)
	require.NoError(t, err)

	got, err := ExtractFirstOrAll(out, 0, 1)
	require.NoError(t, err)

	typ, raw, err := frame.DecodePayload(got, "", nil)
	require.NoError(t, err)
	require.Equal(t, frame.TypeText, typ)
	require.Equal(t, "hello frame", string(raw))

	// other frames untouched
	require.Equal(t, frames[1], out[1])
	require.Equal(t, frames[2], out[2])
}

func TestEmbedAllExtractFromAnyFrame(t *testing.T) {
	frames := [][]byte{whiteFrame(20, 20), whiteFrame(20, 20), whiteFrame(20, 20)}
	payload, err := frame.EncodePayload(frame.TypeText, []byte("same everywhere"), "")
	require.NoError(t, err)

	out, err := EmbedAll(frames, payload, 1)
	require.NoError(t, err)

	for i := range out {
		got, err := ExtractFirstOrAll(out, i, 1)
		require.NoError(t, err)
		_, raw, err := frame.DecodePayload(got, "", nil)
		require.NoError(t, err)
		require.Equal(t, "same everywhere", string(raw))
	}
}

func TestEmbedSplitAcrossFrames(t *testing.T) {
	// Small frames force the payload to split across more than one.
	frames := make([][]byte, 5)
	for i := range frames {
		frames[i] = whiteFrame(16, 16)
	}
	big := make([]byte, 300)
	for i := range big {
		big[i] = byte(i)
	}
	payload, err := frame.EncodePayload(frame.TypeBinary, big, "")
	require.NoError(t, err)

	out, err := EmbedSplit(frames, payload, 2)
	require.NoError(t, err)

	require.True(t, DetectSplit(out, 2))

	got, err := ExtractSplit(out, 2)
	require.NoError(t, err)

	typ, raw, err := frame.DecodePayload(got, "", nil)
	require.NoError(t, err)
	require.Equal(t, frame.TypeBinary, typ)
	require.Equal(t, big, raw)
}

func TestEmbedSplitMissingFrameFails(t *testing.T) {
	frames := make([][]byte, 5)
	for i := range frames {
		frames[i] = whiteFrame(6, 6)
	}
	big := make([]byte, 300)
	payload, err := frame.EncodePayload(frame.TypeBinary, big, "")
	require.NoError(t, err)

	out, err := EmbedSplit(frames, payload, 2)
	require.NoError(t, err)

	truncated := append([][]byte{}, out[1:]...)
	got, err := ExtractSplit(truncated, 2)
	require.True(t, err != nil || string(got) != string(payload),
		"omitting a chunk frame must not silently round-trip the original payload")
}

func TestNoUsableFrames(t *testing.T) {
	frames := [][]byte{make([]byte, 4), make([]byte, 4)} // 1x1 RGBA: 0 usable bytes
	_, err := EmbedFirst(frames, []byte{1, 2, 3}, 1)
	require.ErrorIs(t, err, stegerrors.ErrNoUsableFrames)
}

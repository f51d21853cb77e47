package frame

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiddenbyte/stegano/stegerrors"
)

func TestEncodeDecodePayloadNoPassword(t *testing.T) {
	raw := []byte("hello, hidden world")
	framed, err := EncodePayload(TypeText, raw, "")
	require.NoError(t, err)

	typ, out, err := DecodePayload(framed, "", nil)
	require.NoError(t, err)
	require.Equal(t, TypeText, typ)
	require.Equal(t, raw, out)
}

func TestEncodeDecodePayloadWithPassword(t *testing.T) {
	raw := []byte("a binary-ish payload \x00\x01\x02\x03")
	framed, err := EncodePayload(TypeBinary, raw, "hunter2")
	require.NoError(t, err)

	typ, out, err := DecodePayload(framed, "hunter2", nil)
	require.NoError(t, err)
	require.Equal(t, TypeBinary, typ)
	require.Equal(t, raw, out)
}

func TestDecodePayloadWrongPasswordFails(t *testing.T) {
	raw := []byte("super secret")
	framed, err := EncodePayload(TypeText, raw, "right")
	require.NoError(t, err)

	_, _, err = DecodePayload(framed, "wrong", nil)
	require.Error(t, err)
}

func TestDecodePayloadTypeMismatch(t *testing.T) {
	framed, err := EncodePayload(TypeBinary, []byte("x"), "")
	require.NoError(t, err)

	want := TypeText
	_, _, err = DecodePayload(framed, "", &want)
	require.Error(t, err)
}

func TestDecodePayloadTruncated(t *testing.T) {
	framed, err := EncodePayload(TypeText, []byte("longer than it looks"), "")
	require.NoError(t, err)

	_, _, err = DecodePayload(framed[:len(framed)-5], "", nil)
	require.Error(t, err)
}

func TestDecodePayloadUndersizedEncryptedBodyIsInvalidArgument(t *testing.T) {
	body := make([]byte, 10) // well under cryptbox.MinEncryptedLength (33)
	framed := make([]byte, 0, HeaderLength+len(body))
	framed = append(framed, byte(TypeText))
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(body)))
	framed = append(framed, lenBuf[:]...)
	framed = append(framed, body...)

	_, _, err := DecodePayload(framed, "any password", nil)
	require.Error(t, err)
	var invalid *stegerrors.InvalidArgumentError
	require.ErrorAs(t, err, &invalid)
}

func TestChunkHeaderRoundTrip(t *testing.T) {
	h := ChunkHeader{ChunkIndex: 2, TotalChunks: 5, ChunkSize: 1024}
	got, err := UnmarshalChunkHeader(h.Marshal())
	require.NoError(t, err)
	require.Equal(t, h, got)
	require.True(t, got.IsPlausible())
}

func TestChunkHeaderImplausible(t *testing.T) {
	h := ChunkHeader{ChunkIndex: 5, TotalChunks: 5, ChunkSize: 1024}
	require.False(t, h.IsPlausible(), "chunk_index must be < total_chunks")

	h2 := ChunkHeader{ChunkIndex: 0, TotalChunks: 1, ChunkSize: MaxPlausibleChunkSize + 1}
	require.False(t, h2.IsPlausible())
}

func TestImageHeaderRoundTrip(t *testing.T) {
	b := ImageHeaderBytes(12345)
	got, err := ParseImageHeaderBytes(b)
	require.NoError(t, err)
	require.EqualValues(t, 12345, got)
}

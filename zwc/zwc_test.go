package zwc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiddenbyte/stegano/frame"
)

func TestEncodeBytesDecodeRunesRoundTrip(t *testing.T) {
	data := []byte{0, 1, 42, 255, 128, 7}
	encoded := EncodeBytes(data)
	decoded, err := DecodeRunes([]rune(encoded))
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestDecodeRunesRejectsBadLength(t *testing.T) {
	_, err := DecodeRunes([]rune{Alphabet[0], Alphabet[1]})
	require.Error(t, err)
}

func TestEncodeDecodeAppendedNoPassword(t *testing.T) {
	cover := "The quick brown fox jumps over the lazy dog."
	carrier, err := Encode(cover, frame.TypeText, []byte("hidden message"), EncodeOptions{})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(carrier, cover))

	typ, payload, err := Decode(carrier, "")
	require.NoError(t, err)
	require.Equal(t, frame.TypeText, typ)
	require.Equal(t, "hidden message", string(payload))
}

func TestEncodeDecodeWithPassword(t *testing.T) {
	cover := "Meet me at noon."
	carrier, err := Encode(cover, frame.TypeText, []byte("top secret"), EncodeOptions{Password: "hunter2"})
	require.NoError(t, err)

	_, _, err = Decode(carrier, "wrong-password")
	require.Error(t, err)

	typ, payload, err := Decode(carrier, "hunter2")
	require.NoError(t, err)
	require.Equal(t, frame.TypeText, typ)
	require.Equal(t, "top secret", string(payload))
}

func TestEncodeDecodeDistributed(t *testing.T) {
	cover := "One, two, three. Four; five: six! Seven? Eight.\nNine, ten."
	carrier, err := Encode(cover, frame.TypeText, []byte("scattered payload across many points"), EncodeOptions{Distributed: true})
	require.NoError(t, err)

	require.True(t, HasHiddenData(carrier))

	typ, payload, err := Decode(carrier, "")
	require.NoError(t, err)
	require.Equal(t, frame.TypeText, typ)
	require.Equal(t, "scattered payload across many points", string(payload))

	require.Equal(t, cover, StripZWC(carrier))
}

func TestDistributedFallsBackToAppendedWithoutSeparators(t *testing.T) {
	cover := "nopunctuationhere"
	carrier, err := Encode(cover, frame.TypeText, []byte("x"), EncodeOptions{Distributed: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(carrier, cover))

	_, payload, err := Decode(carrier, "")
	require.NoError(t, err)
	require.Equal(t, "x", string(payload))
}

func TestHasHiddenDataFalseForPlainText(t *testing.T) {
	require.False(t, HasHiddenData("just an ordinary sentence."))
}

func TestHasHiddenDataRequiresEnoughCharactersAfterStart(t *testing.T) {
	short := string(Start[:]) + string(Alphabet[0])
	require.False(t, HasHiddenData(short))
}

func TestStripZWCRemovesSentinelsToo(t *testing.T) {
	cover := "hello world"
	carrier, err := Encode(cover, frame.TypeText, []byte("y"), EncodeOptions{})
	require.NoError(t, err)
	require.Equal(t, cover, StripZWC(carrier))
}

func TestVisualizeLabelsSentinelsAndDigits(t *testing.T) {
	cover := "abc"
	carrier, err := Encode(cover, frame.TypeText, []byte("z"), EncodeOptions{})
	require.NoError(t, err)

	tokens := Visualize(carrier)
	require.NotEmpty(t, tokens)
	require.Equal(t, "START", tokens[0].Symbol)
	require.Equal(t, "END", tokens[len(tokens)-1].Symbol)
	for _, tok := range tokens[1 : len(tokens)-1] {
		require.Contains(t, []string{"ZWSP", "ZWNJ", "ZWJ", "BOM", "WJ", "FUN"}, tok.Symbol)
	}
}

func TestDecodeMissingStartFails(t *testing.T) {
	_, _, err := Decode("no hidden data here", "")
	require.Error(t, err)
}

func TestDecodeTruncatedPayloadFails(t *testing.T) {
	cover := "hello"
	carrier, err := Encode(cover, frame.TypeText, []byte("a longer message than it looks"), EncodeOptions{})
	require.NoError(t, err)

	runes := []rune(carrier)
	truncated := string(runes[:len(runes)-10])
	_, _, err = Decode(truncated, "")
	require.Error(t, err)
}

func TestCapacityHeuristic(t *testing.T) {
	require.EqualValues(t, 0, CapacityHeuristic(0))
	require.EqualValues(t, 0, CapacityHeuristic(26))
	require.EqualValues(t, (1000-26)/4, CapacityHeuristic(1000))
}

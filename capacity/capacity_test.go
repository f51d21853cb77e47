package capacity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDimensions(t *testing.T) {
	require.NoError(t, ValidateDimensions(100, 100))
	require.Error(t, ValidateDimensions(0, 100))
	require.Error(t, ValidateDimensions(100, -1))
	require.Error(t, ValidateDimensions(MaxImageDimension+1, 1))
	require.NoError(t, ValidateDimensions(MaxImageDimension, MaxImageDimension))
}

func TestCheckCapacityStrictFails(t *testing.T) {
	opts := Options{StrictCapacity: true}
	_, err := CheckCapacity(1000, 100, opts)
	require.Error(t, err)
}

func TestCheckCapacityNonStrictWarns(t *testing.T) {
	opts := Options{StrictCapacity: false, MaxPayloadBytes: 100}
	warning, err := CheckCapacity(500, 10000, opts)
	require.NoError(t, err)
	require.NotEmpty(t, warning)
}

func TestCheckCapacityWithinBoundsNoWarning(t *testing.T) {
	opts := DefaultOptions()
	warning, err := CheckCapacity(100, 1000, opts)
	require.NoError(t, err)
	require.Empty(t, warning)
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "file", SanitizeFilename(""))
	require.Equal(t, "file", SanitizeFilename("..."))
	require.Equal(t, "notes.txt", SanitizeFilename("notes.txt"))
	require.Equal(t, "etcpasswd", SanitizeFilename("/etc/passwd"))
	require.Equal(t, "evil.txt", SanitizeFilename("../../evil.txt"))
	require.NotContains(t, SanitizeFilename(`a/b\c?d%e*f:g|h"i<j>k`), "/")
}

func TestSanitizeFilenameTruncatesPreservingExtension(t *testing.T) {
	longName := strings.Repeat("a", 300) + ".txt"
	out := SanitizeFilename(longName)
	require.LessOrEqual(t, len(out), MaxFilenameLength)
	require.True(t, strings.HasSuffix(out, ".txt"))
}

func TestEstimatePostProcessSize(t *testing.T) {
	require.EqualValues(t, 600, EstimatePostProcessSize(1000, true, false))
	require.EqualValues(t, 632, EstimatePostProcessSize(1000, true, true))
	require.EqualValues(t, 700, EstimatePostProcessSize(1000, false, false))
}

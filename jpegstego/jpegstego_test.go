package jpegstego

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hiddenbyte/stegano/internal/bitstream"
	"github.com/hiddenbyte/stegano/internal/jpegcoeff"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// syntheticCoefficients builds a coefficient tree with nBlocks blocks in a
// single luma component, each block's 63 AC positions filled with a mix of
// usable (|v|>=2) and unusable (-1,0,1) values so capacity counting and
// skip-on-unusable logic both get exercised.
func syntheticCoefficients(nBlocks int) *jpegcoeff.Coefficients {
	r := rand.New(rand.NewSource(1))
	row := make([]jpegcoeff.Block, nBlocks)
	for b := range row {
		var block jpegcoeff.Block
		block[0] = 10 // DC, never touched
		for i := 1; i < jpegcoeff.BlockSize; i++ {
			switch r.Intn(4) {
			case 0:
				block[i] = 0
			case 1:
				block[i] = 1
			case 2:
				block[i] = -1
			default:
				block[i] = int32(2 + r.Intn(50))
				if r.Intn(2) == 0 {
					block[i] = -block[i]
				}
			}
		}
		row[b] = block
	}
	return &jpegcoeff.Coefficients{
		Components: []jpegcoeff.Component{
			{ID: 1, Blocks: [][]jpegcoeff.Block{row}},
		},
	}
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	coeffs := syntheticCoefficients(60)
	cap := Capacity(coeffs, false)
	require.GreaterOrEqual(t, cap, int64(50), "need enough usable ACs for the test payload")

	payload := make([]byte, 50)
	for i := range payload {
		payload[i] = byte(i * 7)
	}
	bits := bitstream.ToBits(payload)

	working := Clone(coeffs)
	require.NoError(t, Embed(working, bits, false))

	gotBits, err := Extract(working, len(bits), false)
	require.NoError(t, err)
	require.Equal(t, payload, bitstream.FromBits(gotBits))
}

func TestEmbedPreservesSign(t *testing.T) {
	coeffs := &jpegcoeff.Coefficients{
		Components: []jpegcoeff.Component{
			{ID: 1, Blocks: [][]jpegcoeff.Block{{func() jpegcoeff.Block {
				var b jpegcoeff.Block
				b[1] = -10
				b[2] = 10
				return b
			}()}}},
		},
	}
	require.NoError(t, Embed(coeffs, []byte{1, 1}, false))
	require.Less(t, coeffs.Components[0].Blocks[0][0][1], int32(0))
	require.Greater(t, coeffs.Components[0].Blocks[0][0][2], int32(0))
}

func TestEmbedKeepsUsableCoefficientsUsable(t *testing.T) {
	// value 2 with bit 0: (2 &^ 1) | 0 = 2, still usable. A coefficient can
	// only become 0/1 if its LSB-cleared value is 0, i.e. |v| in {0,1},
	// which usable() already excludes from visitation. This test documents
	// that invariant: every usable coefficient stays usable after a write.
	coeffs := &jpegcoeff.Coefficients{
		Components: []jpegcoeff.Component{
			{ID: 1, Blocks: [][]jpegcoeff.Block{{func() jpegcoeff.Block {
				var b jpegcoeff.Block
				b[1] = 2
				return b
			}()}}},
		},
	}
	require.NoError(t, Embed(coeffs, []byte{0}, false))
	require.True(t, usable(coeffs.Components[0].Blocks[0][0][1]))
}

func TestChromaSkippedWhenDisabled(t *testing.T) {
	coeffs := &jpegcoeff.Coefficients{
		Components: []jpegcoeff.Component{
			{ID: 1, Blocks: [][]jpegcoeff.Block{{func() jpegcoeff.Block {
				var b jpegcoeff.Block
				b[1] = 5
				return b
			}()}}},
			{ID: 2, Blocks: [][]jpegcoeff.Block{{func() jpegcoeff.Block {
				var b jpegcoeff.Block
				b[1] = 5
				return b
			}()}}},
		},
	}
	require.EqualValues(t, 0, Capacity(coeffs, false)) // 1 usable AC / 8 = 0
	require.EqualValues(t, 0, Capacity(coeffs, true))  // 2 usable ACs / 8 = 0, but both counted
}

func TestCapacityExceededReportsCounts(t *testing.T) {
	coeffs := syntheticCoefficients(1)
	cap := Capacity(coeffs, false)
	tooMany := bitstream.ToBits(make([]byte, int(cap)+50))

	err := Embed(coeffs, tooMany, false)
	require.Error(t, err)
	var capErr *stegerrors.CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	require.EqualValues(t, len(tooMany), capErr.Required)
	require.Less(t, capErr.Available, capErr.Required)
}

func TestCloneIsIndependent(t *testing.T) {
	coeffs := syntheticCoefficients(10)
	clone := Clone(coeffs)
	require.Equal(t, coeffs.Checksum(), clone.Checksum())

	clone.Components[0].Blocks[0][0][1] = 99
	require.NotEqual(t, coeffs.Checksum(), clone.Checksum())
}

package imagecodec

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkerboard(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{R: 20, G: 20, B: 20, A: 255}
			if (x/8+y/8)%2 == 0 {
				c = color.RGBA{R: 230, G: 230, B: 230, A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPNGRoundTrip(t *testing.T) {
	img := checkerboard(16, 16)
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), decoded.Bounds())
	require.Equal(t, img.Pix, decoded.Pix)
}

func TestDetectFormatPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, checkerboard(8, 8)))
	format, err := DetectFormat(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, FormatPNG, format)
}

func TestDetectFormatUnsupported(t *testing.T) {
	_, err := DetectFormat([]byte("not an image"))
	require.Error(t, err)
}

func TestGIFFramesRoundTrip(t *testing.T) {
	var g gif.GIF
	for i := 0; i < 3; i++ {
		img := checkerboard(16, 16)
		paletted := image.NewPaletted(img.Bounds(), palette256(img))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				paletted.Set(x, y, img.At(x, y))
			}
		}
		g.Image = append(g.Image, paletted)
		g.Delay = append(g.Delay, 10)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	g.Config = image.Config{Width: 16, Height: 16, ColorModel: color.Palette(nil)}

	var buf bytes.Buffer
	require.NoError(t, gif.EncodeAll(&buf, &g))

	frames, err := DecodeFrames(&buf)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for _, f := range frames {
		require.Equal(t, image.Rect(0, 0, 16, 16), f.Bounds())
	}
}

func TestEncodeFramesProducesDecodableGIF(t *testing.T) {
	frames := []*image.RGBA{checkerboard(16, 16), checkerboard(16, 16)}
	var buf bytes.Buffer
	require.NoError(t, EncodeFrames(&buf, frames, 10))

	decoded, err := DecodeFrames(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, decoded, 2)
}

func TestEncodeFramesRejectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, EncodeFrames(&buf, nil, 10))
}

func TestExtractAndEncodeFromCoefficientsRoundTripIsVisuallyClose(t *testing.T) {
	img := checkerboard(32, 32)
	coeffs := ExtractCoefficients(img, 90, false)

	rebuilt := EncodeFromCoefficients(coeffs, 32, 32, 90)
	require.Equal(t, image.Rect(0, 0, 32, 32), rebuilt.Bounds())

	// Lossy DCT round trip: pixels should be close, not necessarily exact.
	var maxDiff int
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			_, _, origB, _ := img.At(x, y).RGBA()
			_, _, gotB, _ := rebuilt.At(x, y).RGBA()
			diff := int(origB>>8) - int(gotB>>8)
			if diff < 0 {
				diff = -diff
			}
			if diff > maxDiff {
				maxDiff = diff
			}
		}
	}
	require.Less(t, maxDiff, 80)
}

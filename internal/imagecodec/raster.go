/*
 * Copyright (c) 2026, stegano contributors
 * All rights reserved.
 *
 * Redistribution and use in source and binary forms, with or without
 * modification, are permitted provided that the following conditions are met:
 *
 *  * Redistributions of source code must retain the above copyright notice,
 *    this list of conditions and the following disclaimer.
 *
 *  * Redistributions in binary form must reproduce the above copyright notice,
 *    this list of conditions and the following disclaimer in the documentation
 *    and/or other materials provided with the distribution.
 *
 * THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
 * AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
 * IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
 * ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
 * LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
 * CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
 * SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
 * INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
 * CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
 * ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
 * POSSIBILITY OF SUCH DAMAGE.
 */

// Package imagecodec is the external collaborator the carrier engines lean
// on for container format I/O: decoding and encoding whole images and
// multi-frame containers into the raw RGBA pixel buffers pixellsb and
// multiframe operate on. It knows nothing about steganography; it only
// moves pixels in and out of files.
package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/hiddenbyte/stegano/stegerrors"
)

// Format identifies a decoded container's on-disk encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatGIF  Format = "gif"
	FormatJPEG Format = "jpeg"
	FormatTIFF Format = "tiff"
	FormatWebP Format = "webp"
)

// DetectFormat sniffs a format from the leading bytes of data, the way
// image.DecodeConfig does, without fully decoding it.
func DetectFormat(data []byte) (Format, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return "", fmt.Errorf("imagecodec: detect format: %w", stegerrors.ErrUnsupportedFormat)
		}
		return "", fmt.Errorf("imagecodec: detect format: %w", err)
	}
	switch format {
	case "png":
		return FormatPNG, nil
	case "gif":
		return FormatGIF, nil
	case "jpeg":
		return FormatJPEG, nil
	case "tiff":
		return FormatTIFF, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", fmt.Errorf("imagecodec: %w: %q", stegerrors.ErrUnsupportedFormat, format)
	}
}

// ToRGBA converts any image.Image into a freshly allocated *image.RGBA with
// the same bounds, copying pixels if necessary.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}

// Decode reads a single still image (PNG, JPEG, TIFF, or WebP) and returns
// it as RGBA.
func Decode(r io.Reader) (*image.RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode: %w", err)
	}
	return ToRGBA(img), nil
}

// EncodePNG writes img as a lossless PNG. PNG is the only format pixellsb
// carriers should round-trip through, since JPEG and lossy WebP re-encoding
// would destroy the embedded LSBs.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("imagecodec: encode png: %w", err)
	}
	return nil
}

// DecodeFrames reads a multi-frame GIF and returns each frame composited
// onto the full canvas as RGBA, in display order — the representation
// multiframe operates on.
func DecodeFrames(r io.Reader) ([]*image.RGBA, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode gif: %w", err)
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	canvas := image.NewRGBA(bounds)
	if bg, ok := g.Config.ColorModel.(color.Palette); ok && len(bg) > 0 {
		draw.Draw(canvas, bounds, &image.Uniform{C: bg[g.BackgroundIndex]}, image.Point{}, draw.Src)
	}

	frames := make([]*image.RGBA, len(g.Image))
	for i, paletted := range g.Image {
		draw.Draw(canvas, paletted.Bounds(), paletted, paletted.Bounds().Min, draw.Over)
		frame := image.NewRGBA(bounds)
		draw.Draw(frame, bounds, canvas, bounds.Min, draw.Src)
		frames[i] = frame

		if i < len(g.Disposal) && g.Disposal[i] == gif.DisposalBackground {
			draw.Draw(canvas, paletted.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
		}
	}
	return frames, nil
}

// EncodeFrames re-encodes frames as an animated GIF, using delay (in 100ths
// of a second) for every frame.
func EncodeFrames(w io.Writer, frames []*image.RGBA, delay int) error {
	if len(frames) == 0 {
		return stegerrors.NewInvalidArgument("no frames to encode")
	}
	g := &gif.GIF{}
	for _, f := range frames {
		paletted := image.NewPaletted(f.Bounds(), palette256(f))
		draw.Draw(paletted, f.Bounds(), f, f.Bounds().Min, draw.Src)
		g.Image = append(g.Image, paletted)
		g.Delay = append(g.Delay, delay)
		g.Disposal = append(g.Disposal, gif.DisposalNone)
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return fmt.Errorf("imagecodec: encode gif: %w", err)
	}
	return nil
}

// palette256 returns the fixed 256-colour Plan9 palette from
// image/color/palette for every frame; img is not inspected, so frames
// whose colours are not in that palette are quantized to their nearest
// entries.
func palette256(img *image.RGBA) color.Palette {
	return palette.Plan9
}

// DecodeTIFF reads a (single-page) TIFF image.
func DecodeTIFF(r io.Reader) (*image.RGBA, error) {
	img, err := tiff.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode tiff: %w", err)
	}
	return ToRGBA(img), nil
}

// EncodeTIFF writes img as an uncompressed TIFF.
func EncodeTIFF(w io.Writer, img image.Image) error {
	if err := tiff.Encode(w, img, nil); err != nil {
		return fmt.Errorf("imagecodec: encode tiff: %w", err)
	}
	return nil
}

// DecodeWebP reads a (lossy or lossless) WebP image. x/image/webp is
// decode-only; there is no EncodeWebP.
func DecodeWebP(r io.Reader) (*image.RGBA, error) {
	img, err := webp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode webp: %w", err)
	}
	return ToRGBA(img), nil
}

// DecodeJPEG decodes a JPEG to RGBA using the standard library's baseline
// decoder, for callers that only need pixels (e.g. previewing a
// coefficient-domain embed's visual result) rather than coefficient access.
func DecodeJPEG(r io.Reader) (*image.RGBA, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imagecodec: decode jpeg: %w", err)
	}
	return ToRGBA(img), nil
}

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

package stegano

import (
	"image"

	"github.com/hiddenbyte/stegano/capacity"
	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/internal/bitstream"
	"github.com/hiddenbyte/stegano/internal/imagecodec"
	"github.com/hiddenbyte/stegano/internal/jpegcoeff"
	"github.com/hiddenbyte/stegano/internal/xorkey"
	"github.com/hiddenbyte/stegano/jpegstego"
	"github.com/hiddenbyte/stegano/multiframe"
	"github.com/hiddenbyte/stegano/pixellsb"
	"github.com/hiddenbyte/stegano/stegerrors"
	"github.com/hiddenbyte/stegano/zwc"
)

// obfuscate runs the C2 cyclic-key XOR scrambler over b, keyed by password.
// It sits between framing and bit-level embedding for every image engine
// (pixel LSB, multi-frame, JPEG): a cheap scramble layered on top of the
// optional C4 AES encryption, so a plaintext length-prefix header never sits
// untouched in the carrier just because the caller skipped a password. It is
// its own inverse and the identity when password is "".
func obfuscate(b []byte, password string) []byte {
	return xorkey.Apply(b, []byte(password))
}

// Options configures every Encode/Decode pair in this package. Fields not
// relevant to a given carrier are ignored.
type Options struct {
	// Password enables payload encryption (package internal/cryptbox) when
	// non-empty. Must match between Encode and Decode.
	Password string
	// BitDepth is the number of low-order bits used per R/G/B channel byte
	// for pixel-LSB carriers. Defaults to 1 (pixellsb.MinBitDepth) when zero.
	BitDepth int
	// UseChroma enables embedding in chroma (Cb/Cr) AC coefficients in
	// addition to luma, for JPEG carriers.
	UseChroma bool
	// Distributed selects scattered placement for ZWC text carriers;
	// otherwise the payload is appended after the cover text.
	Distributed bool
	// Quality is the JPEG quantization quality (1-100) used for the
	// coefficient-domain forward/inverse transform. Defaults to 85.
	Quality int
	// AllowCapacityOverrun, when true, demotes a capacity overrun from an
	// error to a warning that is silently ignored by this package's
	// Encode* helpers (use package capacity directly to see the warning
	// text). Zero value keeps the strict default: overruns fail.
	AllowCapacityOverrun bool
}

func (o Options) capacityOpts() capacity.Options {
	return capacity.Options{StrictCapacity: !o.AllowCapacityOverrun}
}

func (o Options) bitDepth() int {
	if o.BitDepth == 0 {
		return pixellsb.MinBitDepth
	}
	return o.BitDepth
}

func (o Options) quality() int {
	if o.Quality == 0 {
		return 85
	}
	return o.Quality
}

// EncodeImage hides payload inside img's pixel LSBs, returning a new RGBA
// image. img is never modified.
func EncodeImage(img image.Image, payloadType frame.Type, payload []byte, opts Options) (*image.RGBA, error) {
	bitDepth := opts.bitDepth()
	src := imagecodec.ToRGBA(img)
	if err := capacity.ValidateDimensions(src.Bounds().Dx(), src.Bounds().Dy()); err != nil {
		return nil, err
	}
	if err := capacity.ValidateLength(len(payload), capacity.MaxMessageLength, "message"); err != nil {
		return nil, err
	}

	available := pixellsb.CalculateCapacity(src.Bounds().Dx(), src.Bounds().Dy(), bitDepth)
	estimate := capacity.EstimatePostProcessSize(len(payload), payloadType == frame.TypeText, opts.Password != "")
	if _, err := capacity.CheckCapacity(estimate, available, opts.capacityOpts()); err != nil {
		return nil, err
	}

	framed, err := frame.EncodePayload(payloadType, payload, opts.Password)
	if err != nil {
		return nil, err
	}
	body := append(frame.ImageHeaderBytes(uint32(len(framed))), framed...)

	if _, err := capacity.CheckCapacity(int64(len(body)), available, opts.capacityOpts()); err != nil {
		return nil, err
	}

	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	if err := pixellsb.EmbedData(out.Pix, obfuscate(body, opts.Password), bitDepth); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeImage extracts a payload embedded by EncodeImage from img's pixel
// LSBs.
func DecodeImage(img image.Image, opts Options) (frame.Type, []byte, error) {
	bitDepth := opts.bitDepth()
	src := imagecodec.ToRGBA(img)

	headerBytes, err := pixellsb.ExtractData(src.Pix, 4, bitDepth)
	if err != nil {
		return 0, nil, err
	}
	length, err := frame.ParseImageHeaderBytes(obfuscate(headerBytes, opts.Password))
	if err != nil {
		return 0, nil, err
	}

	raw, err := pixellsb.ExtractData(src.Pix, 4+int(length), bitDepth)
	if err != nil {
		return 0, nil, err
	}
	body := obfuscate(raw, opts.Password)
	return frame.DecodePayload(body[4:], opts.Password, nil)
}

// EncodeJPEG runs a forward DCT over img and hides payload in the LSBs of
// the resulting quantized AC coefficients, returning the coefficient tree
// for re-encoding by a caller that owns the actual JPEG bitstream writer
// (RenderJPEGPreview reconstructs its pixels).
func EncodeJPEG(img image.Image, payloadType frame.Type, payload []byte, opts Options) (*jpegcoeff.Coefficients, error) {
	if err := capacity.ValidateLength(len(payload), capacity.MaxMessageLength, "message"); err != nil {
		return nil, err
	}

	coeffs := imagecodec.ExtractCoefficients(img, opts.quality(), opts.UseChroma)
	availableBytes := jpegstego.Capacity(coeffs, opts.UseChroma)
	estimate := capacity.EstimatePostProcessSize(len(payload), payloadType == frame.TypeText, opts.Password != "")
	if _, err := capacity.CheckCapacity(estimate, availableBytes, opts.capacityOpts()); err != nil {
		return nil, err
	}

	framed, err := frame.EncodePayload(payloadType, payload, opts.Password)
	if err != nil {
		return nil, err
	}
	body := append(frame.ImageHeaderBytes(uint32(len(framed))), framed...)
	bits := bitstream.ToBits(obfuscate(body, opts.Password))

	available := availableBytes * 8
	if _, err := capacity.CheckCapacity(int64(len(bits)), available, opts.capacityOpts()); err != nil {
		return nil, err
	}
	if err := jpegstego.Embed(coeffs, bits, opts.UseChroma); err != nil {
		return nil, err
	}
	return coeffs, nil
}

// DecodeJPEG extracts a payload embedded by EncodeJPEG from a coefficient
// tree (as produced by the image-codec collaborator's JPEG coefficient
// extraction).
func DecodeJPEG(coeffs *jpegcoeff.Coefficients, opts Options) (frame.Type, []byte, error) {
	headerBits, err := jpegstego.Extract(coeffs, 32, opts.UseChroma)
	if err != nil {
		return 0, nil, err
	}
	length, err := frame.ParseImageHeaderBytes(obfuscate(bitstream.FromBits(headerBits), opts.Password))
	if err != nil {
		return 0, nil, err
	}

	allBits, err := jpegstego.Extract(coeffs, 32+int(length)*8, opts.UseChroma)
	if err != nil {
		return 0, nil, err
	}
	body := obfuscate(bitstream.FromBits(allBits), opts.Password)
	return frame.DecodePayload(body[4:], opts.Password, nil)
}

// RenderJPEGPreview reconstructs the RGBA pixels a coefficient tree encodes,
// for previewing EncodeJPEG's visual result without a full JPEG bitstream
// round trip.
func RenderJPEGPreview(coeffs *jpegcoeff.Coefficients, width, height int, opts Options) *image.RGBA {
	return imagecodec.EncodeFromCoefficients(coeffs, width, height, opts.quality())
}

// EncodeFrames hides payload across a multi-frame carrier's pixel LSBs
// under the given placement mode. frames is never modified.
func EncodeFrames(frames []image.Image, payloadType frame.Type, payload []byte, mode multiframe.Mode, opts Options) ([]*image.RGBA, error) {
	bitDepth := opts.bitDepth()

	if err := capacity.ValidateLength(len(payload), capacity.MaxMessageLength, "message"); err != nil {
		return nil, err
	}
	var totalAvailable int64
	for _, f := range frames {
		totalAvailable += pixellsb.CapacityBytesForBuffer(imagecodec.ToRGBA(f).Pix, bitDepth)
	}
	estimate := capacity.EstimatePostProcessSize(len(payload), payloadType == frame.TypeText, opts.Password != "")
	if _, err := capacity.CheckCapacity(estimate, totalAvailable, opts.capacityOpts()); err != nil {
		return nil, err
	}

	framed, err := frame.EncodePayload(payloadType, payload, opts.Password)
	if err != nil {
		return nil, err
	}

	var body []byte
	if mode == multiframe.ModeSplit {
		body = framed // chunk headers already self-describe length per frame
	} else {
		body = append(frame.ImageHeaderBytes(uint32(len(framed))), framed...)
	}
	body = obfuscate(body, opts.Password)

	sources := make([]*image.RGBA, len(frames))
	buffers := make([][]byte, len(frames))
	for i, f := range frames {
		sources[i] = imagecodec.ToRGBA(f)
		buffers[i] = append([]byte(nil), sources[i].Pix...)
	}

	var outBuffers [][]byte
	switch mode {
	case multiframe.ModeFirst:
		outBuffers, err = multiframe.EmbedFirst(buffers, body, bitDepth)
	case multiframe.ModeAll:
		outBuffers, err = multiframe.EmbedAll(buffers, body, bitDepth)
	case multiframe.ModeSplit:
		outBuffers, err = multiframe.EmbedSplit(buffers, body, bitDepth)
	default:
		err = stegerrors.NewInvalidArgument("unknown multi-frame mode %d", mode)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*image.RGBA, len(frames))
	for i := range out {
		img := image.NewRGBA(sources[i].Bounds())
		copy(img.Pix, outBuffers[i])
		out[i] = img
	}
	return out, nil
}

// DecodeFrames extracts a payload embedded by EncodeFrames. frameIndex is
// only consulted for ModeFirst/ModeAll (the frame the caller expects to
// hold the payload); ModeSplit reassembles from every frame regardless.
func DecodeFrames(frames []image.Image, mode multiframe.Mode, frameIndex int, opts Options) (frame.Type, []byte, error) {
	bitDepth := opts.bitDepth()
	buffers := make([][]byte, len(frames))
	for i, f := range frames {
		buffers[i] = imagecodec.ToRGBA(f).Pix
	}

	var framed []byte
	switch mode {
	case multiframe.ModeFirst, multiframe.ModeAll:
		raw, err := multiframe.ExtractFirstOrAll(buffers, frameIndex, bitDepth)
		if err != nil {
			return 0, nil, err
		}
		if len(raw) < 4 {
			return 0, nil, &stegerrors.TruncatedError{Declared: 4, Available: int64(len(raw))}
		}
		length, err := frame.ParseImageHeaderBytes(obfuscate(raw[:4], opts.Password))
		if err != nil {
			return 0, nil, err
		}
		if len(raw) < 4+int(length) {
			return 0, nil, &stegerrors.TruncatedError{Declared: int64(4 + length), Available: int64(len(raw))}
		}
		body := obfuscate(raw[:4+int(length)], opts.Password)
		framed = body[4:]
	case multiframe.ModeSplit:
		raw, err := multiframe.ExtractSplit(buffers, bitDepth)
		if err != nil {
			return 0, nil, err
		}
		framed = obfuscate(raw, opts.Password)
	default:
		return 0, nil, stegerrors.NewInvalidArgument("unknown multi-frame mode %d", mode)
	}

	return frame.DecodePayload(framed, opts.Password, nil)
}

// DetectMultiFrameMode guesses whether frames were embedded with ModeSplit
// (vs. ModeFirst/ModeAll), per spec's first-five-frames probe.
func DetectMultiFrameMode(frames []image.Image, bitDepth int) multiframe.Mode {
	if bitDepth == 0 {
		bitDepth = pixellsb.MinBitDepth
	}
	buffers := make([][]byte, len(frames))
	for i, f := range frames {
		buffers[i] = imagecodec.ToRGBA(f).Pix
	}
	if multiframe.DetectSplit(buffers, bitDepth) {
		return multiframe.ModeSplit
	}
	return multiframe.ModeFirst
}

// EncodeText hides payload inside cover text using zero-width code points.
func EncodeText(cover string, payloadType frame.Type, payload []byte, opts Options) (string, error) {
	if err := capacity.ValidateLength(len(cover), capacity.MaxCoverLength, "cover"); err != nil {
		return "", err
	}
	if err := capacity.ValidateLength(len(payload), capacity.MaxSecretLength, "secret"); err != nil {
		return "", err
	}
	// zwc's capacity heuristic (spec §4.9) is advisory only — appended mode
	// can always fit a payload regardless of cover length — so the estimate
	// check here is forced non-strict: it can only ever produce a warning
	// (currently discarded), never block a legitimate short-cover embed.
	estimate := capacity.EstimatePostProcessSize(len(payload), payloadType == frame.TypeText, opts.Password != "")
	if _, err := capacity.CheckCapacity(estimate, zwc.CapacityHeuristic(len(cover)), capacity.Options{StrictCapacity: false}); err != nil {
		return "", err
	}

	return zwc.Encode(cover, payloadType, payload, zwc.EncodeOptions{
		Password:    opts.Password,
		Distributed: opts.Distributed,
	})
}

// DecodeText extracts a payload embedded by EncodeText.
func DecodeText(carrier string, opts Options) (frame.Type, []byte, error) {
	return zwc.Decode(carrier, opts.Password)
}

// HasHiddenText reports whether carrier looks like it was produced by
// EncodeText, without fully decoding it.
func HasHiddenText(carrier string) bool {
	return zwc.HasHiddenData(carrier)
}

// StripHiddenText removes every zero-width code point EncodeText could have
// inserted into carrier, returning the plain text.
func StripHiddenText(carrier string) string {
	return zwc.StripZWC(carrier)
}

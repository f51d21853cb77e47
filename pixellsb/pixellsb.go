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

// Package pixellsb embeds and extracts bit streams in the low-order bits of
// the R, G, B channels of an RGBA pixel buffer. The alpha channel is never
// touched: this is load bearing for PNG transparency and for transparent
// GIF frames, and holds even when the buffer is iterated as a flat byte
// slice rather than through an image.Image.
package pixellsb

import (
	"fmt"

	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/internal/bitstream"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// MinBitDepth and MaxBitDepth bound the valid bit-depth range.
const (
	MinBitDepth = 1
	MaxBitDepth = 4
)

func validateBitDepth(d int) error {
	if d < MinBitDepth || d > MaxBitDepth {
		return stegerrors.NewInvalidArgument("bit depth %d out of range [%d,%d]", d, MinBitDepth, MaxBitDepth)
	}
	return nil
}

// channelBytes returns the number of RGB (non-alpha) bytes available in an
// RGBA buffer of the given length.
func channelBytes(rgbaLen int) int {
	return (rgbaLen / 4) * 3
}

// CalculateCapacity returns floor(width*height*3*bitDepth/8), the number of
// payload bytes that fit at the given bit depth.
func CalculateCapacity(width, height, bitDepth int) int64 {
	return int64(width) * int64(height) * 3 * int64(bitDepth) / 8
}

// CapacityBytesForBuffer returns the byte capacity of an already-flattened
// RGBA buffer at the given bit depth, used by the multi-frame orchestrator
// to size frames without knowing their width/height separately.
func CapacityBytesForBuffer(pixels []byte, bitDepth int) int64 {
	return int64(channelBytes(len(pixels))) * int64(bitDepth) / 8
}

// EmbedBits writes bits (one bit per element, value 0 or 1) into the low
// bitDepth bits of each R,G,B byte of pixels, skipping every 4th (alpha)
// byte. pixels is modified in place. It fails with CapacityExceededError if
// bits does not fit.
func EmbedBits(pixels []byte, bits []byte, bitDepth int) error {
	if err := validateBitDepth(bitDepth); err != nil {
		return err
	}

	capacityBits := int64(channelBytes(len(pixels))) * int64(bitDepth)
	if int64(len(bits)) > capacityBits {
		return &stegerrors.CapacityExceededError{
			Required:  int64(len(bits)),
			Available: capacityBits,
			Remedy:    "shorten the message, use a larger image, or raise the bit depth",
		}
	}

	mask := byte(0xFF << uint(bitDepth))
	pos := 0
	for i := 0; i < len(pixels) && pos < len(bits); i++ {
		if i%4 == 3 {
			continue // alpha
		}
		var chunk byte
		for b := 0; b < bitDepth && pos < len(bits); b++ {
			if bits[pos] != 0 {
				chunk |= 1 << uint(b)
			}
			pos++
		}
		pixels[i] = (pixels[i] & mask) | chunk
	}
	return nil
}

// ExtractBits reads numBits bits back out of pixels at the given bit depth,
// in the same R,G,B (alpha-skipping) order EmbedBits writes them.
func ExtractBits(pixels []byte, numBits int, bitDepth int) ([]byte, error) {
	if err := validateBitDepth(bitDepth); err != nil {
		return nil, err
	}

	capacityBits := int64(channelBytes(len(pixels))) * int64(bitDepth)
	if int64(numBits) > capacityBits {
		return nil, &stegerrors.TruncatedError{Declared: int64(numBits), Available: capacityBits}
	}

	bits := make([]byte, 0, numBits)
	for i := 0; i < len(pixels) && len(bits) < numBits; i++ {
		if i%4 == 3 {
			continue
		}
		for b := 0; b < bitDepth && len(bits) < numBits; b++ {
			bits = append(bits, (pixels[i]>>uint(b))&1)
		}
	}
	return bits, nil
}

// EmbedText prepends a 4-byte little-endian length header to the UTF-8
// bytes of message and embeds header+message into pixels.
func EmbedText(pixels []byte, message string, bitDepth int) error {
	msgBytes := []byte(message)
	header := frame.ImageHeaderBytes(uint32(len(msgBytes)))
	payload := append(header, msgBytes...)
	return EmbedBits(pixels, bitstream.ToBits(payload), bitDepth)
}

// ExtractText reads the 32-bit header, then the declared number of message
// bytes starting at bit offset 32, and returns the UTF-8 message.
func ExtractText(pixels []byte, bitDepth int) (string, error) {
	headerBits, err := ExtractBits(pixels, 32, bitDepth)
	if err != nil {
		return "", err
	}
	length, err := frame.ParseImageHeaderBytes(bitstream.FromBits(headerBits))
	if err != nil {
		return "", err
	}

	totalBits := 32 + int(length)*8
	allBits, err := ExtractBits(pixels, totalBits, bitDepth)
	if err != nil {
		return "", err
	}
	msgBits := allBits[32:]
	return string(bitstream.FromBits(msgBits)), nil
}

// EmbedData embeds data into pixels with no internal header; the caller
// must remember len(data) to extract it again.
func EmbedData(pixels []byte, data []byte, bitDepth int) error {
	return EmbedBits(pixels, bitstream.ToBits(data), bitDepth)
}

// ExtractData reads back exactly length bytes previously embedded by
// EmbedData.
func ExtractData(pixels []byte, length int, bitDepth int) ([]byte, error) {
	bits, err := ExtractBits(pixels, length*8, bitDepth)
	if err != nil {
		return nil, err
	}
	return bitstream.FromBits(bits), nil
}

// FileHeaderMagic is byte 0 of the file-embedding header (spec §6).
const FileHeaderMagic = 0x55

// EncodeFileHeader builds the magic‖name_len‖name‖file_size header used by
// binary helpers that self-describe a file.
func EncodeFileHeader(name string, fileSize uint32) ([]byte, error) {
	if len(name) > 255 {
		return nil, stegerrors.NewInvalidArgument("file name too long: %d bytes", len(name))
	}
	out := make([]byte, 0, 2+len(name)+4)
	out = append(out, FileHeaderMagic, byte(len(name)))
	out = append(out, []byte(name)...)
	var sizeBuf [4]byte
	for i := 0; i < 4; i++ {
		sizeBuf[i] = byte(fileSize >> uint(8*i))
	}
	out = append(out, sizeBuf[:]...)
	return out, nil
}

// DecodeFileHeader parses the magic‖name_len‖name‖file_size header,
// returning the file name, declared size, and number of bytes consumed.
func DecodeFileHeader(b []byte) (name string, fileSize uint32, consumed int, err error) {
	if len(b) < 2 || b[0] != FileHeaderMagic {
		return "", 0, 0, fmt.Errorf("pixellsb: bad file header magic")
	}
	nameLen := int(b[1])
	if len(b) < 2+nameLen+4 {
		return "", 0, 0, &stegerrors.TruncatedError{Declared: int64(2 + nameLen + 4), Available: int64(len(b))}
	}
	name = string(b[2 : 2+nameLen])
	sizeBytes := b[2+nameLen : 2+nameLen+4]
	for i := 3; i >= 0; i-- {
		fileSize = fileSize<<8 | uint32(sizeBytes[i])
	}
	return name, fileSize, 2 + nameLen + 4, nil
}

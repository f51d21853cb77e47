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

// Package frame implements the payload framing shared by every carrier
// engine: the payload type/length header, compression, optional password
// encryption, and the auxiliary image/chunk headers used by the pixel and
// multi-frame engines.
package frame

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hiddenbyte/stegano/internal/compression"
	"github.com/hiddenbyte/stegano/internal/cryptbox"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// Type identifies the kind of payload bytes a frame carries.
type Type byte

const (
	// TypeText marks a UTF-8 text payload.
	TypeText Type = 0x01
	// TypeBinary marks an opaque binary payload.
	TypeBinary Type = 0x02
)

// HeaderLength is the size in bytes of the [type][len] frame header.
const HeaderLength = 1 + 4

// EncodePayload compresses raw, optionally encrypts it under password, and
// prepends the 5-byte [type:u8][len(x):u32 LE] header. len is measured
// after compression and encryption, per spec.
func EncodePayload(t Type, raw []byte, password string) ([]byte, error) {
	x, err := compression.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("frame: compress: %w", err)
	}
	if password != "" {
		x, err = cryptbox.Encrypt(x, password)
		if err != nil {
			return nil, fmt.Errorf("frame: encrypt: %w", err)
		}
	}

	out := make([]byte, 0, HeaderLength+len(x))
	out = append(out, byte(t))
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(x)))
	out = append(out, lenBuf[:]...)
	out = append(out, x...)
	return out, nil
}

// DecodePayload reads the frame header from framed, validates expectedType
// when non-nil, reads exactly the declared length, and reverses encryption
// (if password is non-empty) and compression. It never guesses boundaries:
// fewer bytes than declared is always Truncated.
func DecodePayload(framed []byte, password string, expectedType *Type) (Type, []byte, error) {
	if len(framed) < HeaderLength {
		return 0, nil, &stegerrors.TruncatedError{Declared: HeaderLength, Available: int64(len(framed))}
	}

	t := Type(framed[0])
	if expectedType != nil && t != *expectedType {
		return 0, nil, &stegerrors.PayloadTypeMismatchError{Want: byte(*expectedType), Got: byte(t)}
	}

	length := binary.LittleEndian.Uint32(framed[1:5])
	body := framed[HeaderLength:]
	if uint32(len(body)) < length {
		return 0, nil, &stegerrors.TruncatedError{Declared: int64(length), Available: int64(len(body))}
	}
	x := body[:length]

	var err error
	if password != "" {
		x, err = cryptbox.Decrypt(x, password)
		if err != nil {
			var tooShort cryptbox.ErrEncryptedTooShort
			if errors.As(err, &tooShort) {
				return 0, nil, stegerrors.NewInvalidArgument("frame: encrypted body too short: %v", tooShort)
			}
			return 0, nil, fmt.Errorf("%w: %v", stegerrors.ErrDecryptionFailed, err)
		}
	}

	raw, err := compression.Decompress(x)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", stegerrors.ErrDecompressionFailed, err)
	}
	return t, raw, nil
}

// ImageHeaderBytes returns the 4-byte little-endian length header used by
// the pixel-LSB text helper (spec §3 "Image frame header").
func ImageHeaderBytes(length uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, length)
	return b
}

// ParseImageHeaderBytes reads the 4-byte little-endian length header.
func ParseImageHeaderBytes(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, &stegerrors.TruncatedError{Declared: 4, Available: int64(len(b))}
	}
	return binary.LittleEndian.Uint32(b[:4]), nil
}

// ChunkHeaderLength is the size in bytes of a multi-frame chunk header.
const ChunkHeaderLength = 12

// ChunkHeader is the 12-byte split-mode chunk header (spec §3).
type ChunkHeader struct {
	ChunkIndex  uint32
	TotalChunks uint32
	ChunkSize   uint32
}

// Marshal encodes h as three little-endian uint32 fields.
func (h ChunkHeader) Marshal() []byte {
	b := make([]byte, ChunkHeaderLength)
	binary.LittleEndian.PutUint32(b[0:4], h.ChunkIndex)
	binary.LittleEndian.PutUint32(b[4:8], h.TotalChunks)
	binary.LittleEndian.PutUint32(b[8:12], h.ChunkSize)
	return b
}

// UnmarshalChunkHeader decodes a 12-byte chunk header.
func UnmarshalChunkHeader(b []byte) (ChunkHeader, error) {
	if len(b) < ChunkHeaderLength {
		return ChunkHeader{}, &stegerrors.TruncatedError{Declared: ChunkHeaderLength, Available: int64(len(b))}
	}
	return ChunkHeader{
		ChunkIndex:  binary.LittleEndian.Uint32(b[0:4]),
		TotalChunks: binary.LittleEndian.Uint32(b[4:8]),
		ChunkSize:   binary.LittleEndian.Uint32(b[8:12]),
	}, nil
}

// Plausible bounds for a chunk header, used by the multi-frame orchestrator
// to auto-detect split mode (spec §4.7).
const (
	MaxPlausibleChunkSize   = 1000000
	MaxPlausibleTotalChunks = 10000
)

// IsPlausible reports whether h could be a genuine chunk header, per the
// bounds spec §4.7 requires the decoder to validate.
func (h ChunkHeader) IsPlausible() bool {
	return h.ChunkSize > 0 &&
		h.ChunkSize <= MaxPlausibleChunkSize &&
		h.TotalChunks > 0 &&
		h.TotalChunks < MaxPlausibleTotalChunks &&
		h.ChunkIndex < h.TotalChunks
}

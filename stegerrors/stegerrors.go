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

// Package stegerrors is the shared error taxonomy for every stegano engine.
// Sentinel errors cover conditions with no attached detail; typed errors
// carry the numbers callers need (required/available counts, a suggested
// remedy) the same way framing.InvalidPayloadLengthError does in the
// teacher this package is modeled on.
package stegerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNoUsableFrames is returned when every frame of a multi-frame
	// carrier falls below the minimum usable capacity (8 bytes).
	ErrNoUsableFrames = errors.New("stegano: no usable frames in carrier")

	// ErrInvalidZwcLength is returned when a ZWC digit run is not divisible
	// by four.
	ErrInvalidZwcLength = errors.New("stegano: zwc digit count not divisible by four")

	// ErrUnsupportedFormat is returned when an image format is not
	// recognised by any registered format handler.
	ErrUnsupportedFormat = errors.New("stegano: unsupported image format")

	// ErrDecryptionFailed wraps failures surfaced from internal/cryptbox.
	ErrDecryptionFailed = errors.New("stegano: decryption failed")

	// ErrDecompressionFailed wraps failures surfaced from internal/compression.
	ErrDecompressionFailed = errors.New("stegano: decompression failed")
)

// InvalidArgumentError covers bad bit depths, bad dimensions, invalid
// filenames, oversized cover/secret inputs, and undersized encrypted blobs.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("stegano: invalid argument: %s", e.Reason)
}

// NewInvalidArgument builds an InvalidArgumentError with a formatted reason.
func NewInvalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Reason: fmt.Sprintf(format, args...)}
}

// CapacityExceededError is returned when a message will not fit in the
// available carrier bits/coefficients. Remedy is a short human-readable
// suggestion (shorter message, larger image, higher bit depth, enable
// chroma, raise maxPayloadBytes).
type CapacityExceededError struct {
	Required  int64
	Available int64
	Remedy    string
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("stegano: capacity exceeded: need %d, have %d (%s)", e.Required, e.Available, e.Remedy)
}

// TruncatedError is returned when a declared payload length exceeds what
// the carrier actually delivers.
type TruncatedError struct {
	Declared  int64
	Available int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("stegano: truncated: declared length %d exceeds available %d", e.Declared, e.Available)
}

// PayloadTypeMismatchError is returned when the caller requests a specific
// payload type but the carrier holds another.
type PayloadTypeMismatchError struct {
	Want byte
	Got  byte
}

func (e *PayloadTypeMismatchError) Error() string {
	return fmt.Sprintf("stegano: payload type mismatch: want 0x%02x got 0x%02x", e.Want, e.Got)
}

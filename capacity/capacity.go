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

// Package capacity holds the pre-flight sizing and validation guards shared
// by every engine: configurable upper bounds, image dimension checks, a
// rough pre-compression size estimate vs. calculated capacity, and
// filename sanitization for the file-embedding header.
package capacity

import (
	"strings"

	"github.com/hiddenbyte/stegano/stegerrors"
)

// Default upper bounds (spec.md §6).
const (
	MaxSecretLength   = 50000
	MaxCoverLength    = 100000
	MaxMessageLength  = 10485760
	MaxEmbedFileSize  = 10485760
	MaxImageSize      = 52428800
	MaxImageDimension = 10000
	MaxFilenameLength = 255
)

// Options configures the pre-flight checks. StrictCapacity defaults to true
// (matching spec.md §4.10): when false, capacity overruns are demoted from
// errors to warnings and the caller proceeds at its own risk.
type Options struct {
	StrictCapacity  bool
	MaxPayloadBytes int64
}

// DefaultOptions returns the spec's default: strict capacity checking, no
// explicit payload cap beyond calculated carrier capacity.
func DefaultOptions() Options {
	return Options{StrictCapacity: true}
}

// ValidateDimensions checks that width and height are positive and within
// MaxImageDimension per side, and that the total pixel count is within
// MaxImageDimension^2.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return stegerrors.NewInvalidArgument("image dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxImageDimension || height > MaxImageDimension {
		return stegerrors.NewInvalidArgument("image dimension exceeds maximum %d, got %dx%d", MaxImageDimension, width, height)
	}
	if int64(width)*int64(height) > int64(MaxImageDimension)*int64(MaxImageDimension) {
		return stegerrors.NewInvalidArgument("image pixel count exceeds maximum %d", MaxImageDimension*MaxImageDimension)
	}
	return nil
}

// ValidateLength checks a cover or secret length against its configured
// maximum.
func ValidateLength(length, max int, label string) error {
	if length > max {
		return stegerrors.NewInvalidArgument("%s length %d exceeds maximum %d", label, length, max)
	}
	return nil
}

// EstimatePostProcessSize heuristically estimates the size of a payload
// after compression and (optional) encryption, before either actually
// runs: ceil(0.6*len)+32 for text, ceil(0.7*len)+32 for binary, where the
// +32 only applies when encryption is requested.
func EstimatePostProcessSize(rawLength int, isText bool, encrypted bool) int64 {
	ratio := 0.7
	if isText {
		ratio = 0.6
	}
	estimate := int64(float64(rawLength)*ratio + 0.999999) // ceil
	if encrypted {
		estimate += 32
	}
	return estimate
}

// CheckCapacity compares an estimate (or, on the final pass, an exact post-
// processing size) against the calculated carrier capacity. With
// opts.StrictCapacity true (the default) an overrun is a CapacityExceededError;
// with it false, CheckCapacity returns a non-empty warning string and a nil
// error, and the caller proceeds.
func CheckCapacity(estimate, available int64, opts Options) (warning string, err error) {
	limit := available
	if opts.MaxPayloadBytes > 0 && opts.MaxPayloadBytes < limit {
		limit = opts.MaxPayloadBytes
	}
	if estimate <= limit {
		return "", nil
	}
	remedy := "shorten the message, use a larger carrier, raise the bit depth, enable chroma, or raise maxPayloadBytes"
	if !opts.StrictCapacity {
		return warningText(estimate, limit, remedy), nil
	}
	return "", &stegerrors.CapacityExceededError{Required: estimate, Available: limit, Remedy: remedy}
}

func warningText(estimate, limit int64, remedy string) string {
	return "capacity warning: estimated " + itoa(estimate) + " bytes exceeds available " + itoa(limit) + " bytes (" + remedy + ")"
}

func itoa(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// sanitizeChars are stripped from filenames wholesale.
const sanitizeChars = `/\?%*:|"<>`

// SanitizeFilename strips characters unsafe for a filesystem path, strips
// leading dots, truncates to MaxFilenameLength while preserving the
// extension, and defaults an empty result to "file".
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(sanitizeChars, r) {
			continue
		}
		b.WriteRune(r)
	}
	cleaned := strings.TrimLeft(b.String(), ".")

	if len(cleaned) > MaxFilenameLength {
		ext := ""
		if idx := strings.LastIndex(cleaned, "."); idx > 0 {
			ext = cleaned[idx:]
		}
		keep := MaxFilenameLength - len(ext)
		if keep < 0 {
			keep = 0
		}
		if keep > len(cleaned) {
			keep = len(cleaned)
		}
		cleaned = cleaned[:keep] + ext
		if len(cleaned) > MaxFilenameLength {
			cleaned = cleaned[:MaxFilenameLength]
		}
	}

	if cleaned == "" {
		return "file"
	}
	return cleaned
}

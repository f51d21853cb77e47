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

// Package jpegstego embeds and extracts bit streams in the LSBs of usable
// AC coefficients of a quantized JPEG's blocks. It does not add its own
// header: callers frame the payload with package frame and pass the framed
// bytes as the bit source.
//
// Embed mutates its Coefficients argument in place, for efficiency;
// jpegcoeff.Coefficients.Clone exists precisely so callers that need to
// keep the original can clone before calling Embed.
package jpegstego

import (
	"github.com/hiddenbyte/stegano/internal/jpegcoeff"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// Clone deep-copies coeffs so the caller can retain the original while
// Embed mutates a working copy in place.
func Clone(coeffs *jpegcoeff.Coefficients) *jpegcoeff.Coefficients {
	return coeffs.Clone()
}

// usable reports whether a coefficient value can carry a bit: anything
// other than -1, 0, or +1.
func usable(v int32) bool {
	return v != -1 && v != 0 && v != 1
}

// visit calls fn for every usable AC coefficient (index 1..63) of every
// block of every selected component, in component/row/block/index order —
// the iteration order the encoder and decoder must agree on bit-for-bit.
// fn returns (newValue, stop); visit writes newValue back and halts early
// if stop is true.
func visit(coeffs *jpegcoeff.Coefficients, useChroma bool, fn func(v int32) (int32, bool)) {
	for ci := range coeffs.Components {
		comp := &coeffs.Components[ci]
		if !useChroma && comp.ID != 1 {
			continue
		}
		for r := range comp.Blocks {
			row := comp.Blocks[r]
			for b := range row {
				block := &row[b]
				for i := 1; i < jpegcoeff.BlockSize; i++ {
					if !usable(block[i]) {
						continue
					}
					newV, stop := fn(block[i])
					block[i] = newV
					if stop {
						return
					}
				}
			}
		}
	}
}

// Capacity returns the number of payload bytes that fit in the usable AC
// coefficients of the selected components: floor(usableCount / 8).
func Capacity(coeffs *jpegcoeff.Coefficients, useChroma bool) int64 {
	var count int64
	visit(coeffs, useChroma, func(v int32) (int32, bool) {
		count++
		return v, false
	})
	return count / 8
}

// Embed writes bits (one bit per element, 0 or 1) into the LSBs of usable
// AC coefficients. A coefficient whose LSB-forced value would fall into
// the unusable range {0,1} is skipped without consuming a bit, preserving
// the set of usable coefficients as seen on extraction. Returns
// CapacityExceededError (with both required and available bit counts) if
// bits does not fully fit.
func Embed(coeffs *jpegcoeff.Coefficients, bits []byte, useChroma bool) error {
	pos := 0
	visit(coeffs, useChroma, func(v int32) (int32, bool) {
		if pos >= len(bits) {
			return v, true
		}
		b := int32(bits[pos])
		a := v
		sign := int32(1)
		if a < 0 {
			sign = -1
			a = -a
		}
		aPrime := (a &^ 1) | b
		if aPrime == 0 || aPrime == 1 {
			// Writing this bit would make the coefficient unusable; skip
			// without consuming it.
			return v, false
		}
		pos++
		return sign * aPrime, false
	})

	if pos < len(bits) {
		return &stegerrors.CapacityExceededError{
			Required:  int64(len(bits)),
			Available: int64(pos),
			Remedy:    "shorten the message, enable chroma components, or raise maxPayloadBytes",
		}
	}
	return nil
}

// Extract reads numBits bits back out of coeffs, in the same order Embed
// wrote them: the LSB of the absolute value of each usable AC coefficient.
func Extract(coeffs *jpegcoeff.Coefficients, numBits int, useChroma bool) ([]byte, error) {
	bits := make([]byte, 0, numBits)
	visit(coeffs, useChroma, func(v int32) (int32, bool) {
		if len(bits) >= numBits {
			return v, true
		}
		a := v
		if a < 0 {
			a = -a
		}
		bits = append(bits, byte(a&1))
		return v, false
	})
	if len(bits) < numBits {
		return nil, &stegerrors.TruncatedError{Declared: int64(numBits), Available: int64(len(bits))}
	}
	return bits, nil
}

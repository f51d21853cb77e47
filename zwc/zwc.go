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

// Package zwc encodes a byte sequence as base-6 sequences of six zero-width
// code points, bracketed by sentinels and either appended to or scattered
// through a cover text. It never adds its own header: the bytes it ZWC-
// encodes are whatever package frame already framed (type + length +
// compressed/encrypted body), so decoding reads the first 20 ZWC characters
// as that same 5-byte frame header before it knows how many more to expect.
package zwc

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// Alphabet is the ordered sextuple of zero-width code points; index
// position gives the base-6 digit value.
var Alphabet = [6]rune{0x200B, 0x200C, 0x200D, 0xFEFF, 0x2060, 0x2061}

// Symbolic names for each alphabet member, in Alphabet order.
var symbolNames = [6]string{"ZWSP", "ZWNJ", "ZWJ", "BOM", "WJ", "FUN"}

// Start and End are the sentinel rune triples bracketing an embedded
// region. Both are themselves drawn entirely from Alphabet, so stripping
// every Alphabet rune from a carrier also removes the sentinels.
var (
	Start = [3]rune{0x200B, 0x200C, 0x200B}
	End   = [3]rune{0x200C, 0x200B, 0x200C}
)

var digitIndex = func() map[rune]byte {
	m := make(map[rune]byte, 6)
	for i, r := range Alphabet {
		m[r] = byte(i)
	}
	return m
}()

func isAlphabet(r rune) bool {
	_, ok := digitIndex[r]
	return ok
}

// encodeByte writes the four base-6 digits of v (most significant first)
// as Alphabet runes into out.
func encodeByte(v byte, out *strings.Builder) {
	out.WriteRune(Alphabet[(v/216)%6])
	out.WriteRune(Alphabet[(v/36)%6])
	out.WriteRune(Alphabet[(v/6)%6])
	out.WriteRune(Alphabet[v%6])
}

// EncodeBytes returns the ZWC rune sequence for data: four Alphabet runes
// per byte, most-significant digit first.
func EncodeBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 4 * 3) // runes are up to 3 bytes in UTF-8
	for _, v := range data {
		encodeByte(v, &b)
	}
	return b.String()
}

// DecodeRunes decodes a sequence of ZWC runes (already filtered to
// Alphabet members) back into bytes, four runes per byte, most-significant
// digit first. Returns ErrInvalidZwcLength if the count is not a multiple
// of four.
func DecodeRunes(runes []rune) ([]byte, error) {
	if len(runes)%4 != 0 {
		return nil, stegerrors.ErrInvalidZwcLength
	}
	out := make([]byte, len(runes)/4)
	for i := 0; i < len(out); i++ {
		var v int
		for j := 0; j < 4; j++ {
			d, ok := digitIndex[runes[i*4+j]]
			if !ok {
				return nil, stegerrors.ErrInvalidZwcLength
			}
			v = v*6 + int(d)
		}
		out[i] = byte(v)
	}
	return out, nil
}

// separators are the cover-text positions distributed mode may insert
// after.
const separators = "\n .,;:!?\t"

func insertionPoints(cover []rune) []int {
	var points []int
	for i, r := range cover {
		if strings.ContainsRune(separators, r) {
			points = append(points, i+1)
		}
	}
	return points
}

// EncodeOptions configures Encode.
type EncodeOptions struct {
	Password    string
	Distributed bool
}

// Encode hides payload (framed via package frame with the given type and
// optional password) inside cover, returning the resulting carrier text.
func Encode(cover string, payloadType frame.Type, payload []byte, opts EncodeOptions) (string, error) {
	framed, err := frame.EncodePayload(payloadType, payload, opts.Password)
	if err != nil {
		return "", err
	}
	zwc := []rune(EncodeBytes(framed))

	if !opts.Distributed {
		var b strings.Builder
		b.WriteString(cover)
		b.WriteRune(Start[0])
		b.WriteRune(Start[1])
		b.WriteRune(Start[2])
		b.WriteString(string(zwc))
		b.WriteRune(End[0])
		b.WriteRune(End[1])
		b.WriteRune(End[2])
		return b.String(), nil
	}

	coverRunes := []rune(norm.NFC.String(cover))
	points := insertionPoints(coverRunes)
	if len(points) == 0 {
		var b strings.Builder
		b.WriteString(cover)
		b.WriteRune(Start[0])
		b.WriteRune(Start[1])
		b.WriteRune(Start[2])
		b.WriteString(string(zwc))
		b.WriteRune(End[0])
		b.WriteRune(End[1])
		b.WriteRune(End[2])
		return b.String(), nil
	}

	chunksPerPoint := (len(zwc) + len(points) - 1) / len(points)

	var b strings.Builder
	b.WriteRune(Start[0])
	b.WriteRune(Start[1])
	b.WriteRune(Start[2])

	pointSet := make(map[int]bool, len(points))
	for _, p := range points {
		pointSet[p] = true
	}

	zwcPos := 0
	for i, r := range coverRunes {
		b.WriteRune(r)
		if pointSet[i+1] && zwcPos < len(zwc) {
			end := zwcPos + chunksPerPoint
			if end > len(zwc) {
				end = len(zwc)
			}
			b.WriteString(string(zwc[zwcPos:end]))
			zwcPos = end
		}
	}
	// Any remainder (rounding) goes at the very end, before the sentinel.
	if zwcPos < len(zwc) {
		b.WriteString(string(zwc[zwcPos:]))
	}

	b.WriteRune(End[0])
	b.WriteRune(End[1])
	b.WriteRune(End[2])
	return b.String(), nil
}

func startIndex(carrier []rune) int {
	for i := 0; i+2 < len(carrier); i++ {
		if carrier[i] == Start[0] && carrier[i+1] == Start[1] && carrier[i+2] == Start[2] {
			return i
		}
	}
	return -1
}

// HasHiddenData reports whether t contains the Start sentinel followed by
// at least 16 ZWC characters.
func HasHiddenData(t string) bool {
	runes := []rune(t)
	idx := startIndex(runes)
	if idx < 0 {
		return false
	}
	count := 0
	for i := idx + 3; i < len(runes) && count < 16; i++ {
		if isAlphabet(runes[i]) {
			count++
		}
	}
	return count >= 16
}

// headerZwcLength is the number of ZWC runes the 5-byte frame header
// encodes to.
const headerZwcLength = frame.HeaderLength * 4

// Decode locates the Start sentinel, decodes the 5-byte frame header from
// the first 20 ZWC characters that follow it, reads the declared number of
// additional ZWC characters, and passes the result through
// frame.DecodePayload.
func Decode(carrier string, password string) (frame.Type, []byte, error) {
	runes := []rune(carrier)
	idx := startIndex(runes)
	if idx < 0 {
		return 0, nil, stegerrors.NewInvalidArgument("no start sentinel found in carrier")
	}

	var zwcRunes []rune
	needed := headerZwcLength
	haveHeader := false
	for i := idx + 3; i < len(runes); i++ {
		if !isAlphabet(runes[i]) {
			continue
		}
		zwcRunes = append(zwcRunes, runes[i])
		if !haveHeader && len(zwcRunes) == headerZwcLength {
			headerBytes, err := DecodeRunes(zwcRunes)
			if err != nil {
				return 0, nil, err
			}
			bodyLen, err := frame.ParseImageHeaderBytes(headerBytes[1:5])
			if err != nil {
				return 0, nil, err
			}
			needed = headerZwcLength + int(bodyLen)*4
			haveHeader = true
		}
		if haveHeader && len(zwcRunes) >= needed {
			break
		}
	}

	if len(zwcRunes) < headerZwcLength {
		return 0, nil, stegerrors.NewInvalidArgument("fewer than one header's worth of zwc characters found")
	}
	if len(zwcRunes) < needed {
		return 0, nil, &stegerrors.TruncatedError{Declared: int64(needed), Available: int64(len(zwcRunes))}
	}

	framed, err := DecodeRunes(zwcRunes[:needed])
	if err != nil {
		return 0, nil, err
	}
	return frame.DecodePayload(framed, password, nil)
}

// StripZWC removes every Alphabet code point from t, regardless of
// sentinels, returning the plain text.
func StripZWC(t string) string {
	var b strings.Builder
	for _, r := range t {
		if isAlphabet(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// VisualToken is one annotated element of a Visualize result.
type VisualToken struct {
	Symbol string
	Rune   rune
}

// Visualize returns every ZWC code point of t annotated with a symbolic
// name, recognising the first Start sentinel triple and the last End
// sentinel triple after it as single tokens. Payload digits that happen to
// spell a sentinel pattern are labelled as digits.
func Visualize(t string) []VisualToken {
	runes := []rune(t)
	startAt := startIndex(runes)
	endAt, lowest := -1, 0
	if startAt >= 0 {
		lowest = startAt + 3
	}
	for i := len(runes) - 3; i >= lowest; i-- {
		if runes[i] == End[0] && runes[i+1] == End[1] && runes[i+2] == End[2] {
			endAt = i
			break
		}
	}
	var out []VisualToken
	for i := 0; i < len(runes); i++ {
		if !isAlphabet(runes[i]) {
			continue
		}
		if i == startAt {
			out = append(out, VisualToken{Symbol: "START", Rune: runes[i]})
			i += 2
			continue
		}
		if i == endAt {
			out = append(out, VisualToken{Symbol: "END", Rune: runes[i]})
			i += 2
			continue
		}
		out = append(out, VisualToken{Symbol: symbolNames[digitIndex[runes[i]]], Rune: runes[i]})
	}
	return out
}

// CapacityHeuristic implements spec.md §4.9's advisory capacity formula:
// max(floor(|cover|*0.1), |cover|) - 26, divided by 4, in bytes. Note that
// for any non-empty cover the max(...) term always equals |cover| (0.1x is
// never larger than x), so this heuristic is effectively just
// (|cover|-26)/4 — loose by construction. It is advisory only: Encode does
// not refuse to exceed it.
func CapacityHeuristic(coverLength int) int64 {
	scaled := int64(float64(coverLength) * 0.1)
	m := scaled
	if int64(coverLength) > m {
		m = int64(coverLength)
	}
	remaining := m - 26
	if remaining < 0 {
		return 0
	}
	return remaining / 4
}

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

// Package multiframe applies the pixel-LSB engine across the frames of an
// animated/paged carrier (animated GIF, multi-page TIFF) under one of
// three modes: embed into the first usable frame, embed the same payload
// into every frame with sufficient capacity, or split one payload across
// several frames' worth of capacity.
//
// Frames are opaque RGBA byte buffers to this package; the caller (the
// image-codec collaborator) is responsible for decoding a container into
// frames and re-encoding the modified frames back, preserving whatever
// disposal/palette metadata belongs to each frame unchanged.
package multiframe

import (
	"sort"

	"github.com/hiddenbyte/stegano/frame"
	"github.com/hiddenbyte/stegano/internal/bitstream"
	"github.com/hiddenbyte/stegano/pixellsb"
	"github.com/hiddenbyte/stegano/stegerrors"
)

// Mode selects how a payload is spread across a multi-frame carrier.
type Mode int

const (
	// ModeFirst embeds the full payload into the first usable frame only.
	ModeFirst Mode = iota
	// ModeAll embeds the full payload into every frame with sufficient
	// capacity.
	ModeAll
	// ModeSplit partitions the payload across usable frames, each carrying
	// a 12-byte chunk header.
	ModeSplit
)

// minUsableBytes is the minimum per-frame byte capacity (at the caller's
// chosen bit depth) for a frame to be considered usable at all.
const minUsableBytes = 8

func cloneFrames(frames [][]byte) [][]byte {
	out := make([][]byte, len(frames))
	for i, f := range frames {
		cp := make([]byte, len(f))
		copy(cp, f)
		out[i] = cp
	}
	return out
}

// usableFrameIndices returns, in order, the indices of frames whose byte
// capacity at bitDepth is at least minUsableBytes.
func usableFrameIndices(frames [][]byte, bitDepth int) []int {
	var idx []int
	for i, f := range frames {
		if pixellsb.CapacityBytesForBuffer(f, bitDepth) >= minUsableBytes {
			idx = append(idx, i)
		}
	}
	return idx
}

// EmbedFirst embeds payload into the first usable frame of frames; all
// other frames are returned unchanged. Returns ErrNoUsableFrames if none of
// the frames meet the minimum usable capacity.
func EmbedFirst(frames [][]byte, payload []byte, bitDepth int) ([][]byte, error) {
	usable := usableFrameIndices(frames, bitDepth)
	if len(usable) == 0 {
		return nil, stegerrors.ErrNoUsableFrames
	}
	out := cloneFrames(frames)
	if err := pixellsb.EmbedBits(out[usable[0]], bitstream.ToBits(payload), bitDepth); err != nil {
		return nil, err
	}
	return out, nil
}

// EmbedAll embeds payload into every frame whose capacity is sufficient to
// hold it whole; frames with insufficient capacity pass through unchanged.
// Returns ErrNoUsableFrames if no frame meets the minimum usable capacity,
// and CapacityExceededError if no frame can hold the whole payload.
func EmbedAll(frames [][]byte, payload []byte, bitDepth int) ([][]byte, error) {
	usable := usableFrameIndices(frames, bitDepth)
	if len(usable) == 0 {
		return nil, stegerrors.ErrNoUsableFrames
	}

	out := cloneFrames(frames)
	bits := bitstream.ToBits(payload)
	embedded := 0
	for _, idx := range usable {
		if pixellsb.CapacityBytesForBuffer(out[idx], bitDepth) < int64(len(payload)) {
			continue
		}
		if err := pixellsb.EmbedBits(out[idx], bits, bitDepth); err != nil {
			return nil, err
		}
		embedded++
	}
	if embedded == 0 {
		return nil, &stegerrors.CapacityExceededError{
			Required: int64(len(payload)),
			Remedy:   "no single frame has sufficient capacity; shrink the payload or raise the bit depth",
		}
	}
	return out, nil
}

type chunkPlan struct {
	frameIdx    int
	payloadFrom int
	size        int
}

// EmbedSplit partitions payload across the usable frames, reserving a
// 12-byte chunk header at the start of each chosen frame's bit stream and
// packing as many payload bytes as the frame's remaining capacity allows.
// Chunk indices are assigned in embed (frame) order.
func EmbedSplit(frames [][]byte, payload []byte, bitDepth int) ([][]byte, error) {
	usable := usableFrameIndices(frames, bitDepth)
	if len(usable) == 0 {
		return nil, stegerrors.ErrNoUsableFrames
	}

	var plans []chunkPlan
	offset := 0
	for _, idx := range usable {
		if offset >= len(payload) {
			break
		}
		avail := pixellsb.CapacityBytesForBuffer(frames[idx], bitDepth) - frame.ChunkHeaderLength
		if avail <= 0 {
			continue
		}
		size := int(avail)
		if remaining := len(payload) - offset; size > remaining {
			size = remaining
		}
		plans = append(plans, chunkPlan{frameIdx: idx, payloadFrom: offset, size: size})
		offset += size
	}
	if offset < len(payload) {
		return nil, &stegerrors.CapacityExceededError{
			Required:  int64(len(payload)),
			Available: int64(offset),
			Remedy:    "shorten the message, add more usable frames, or raise the bit depth",
		}
	}

	out := cloneFrames(frames)
	total := len(plans)
	for i, p := range plans {
		h := frame.ChunkHeader{
			ChunkIndex:  uint32(i),
			TotalChunks: uint32(total),
			ChunkSize:   uint32(p.size),
		}
		chunkBytes := append(h.Marshal(), payload[p.payloadFrom:p.payloadFrom+p.size]...)
		if err := pixellsb.EmbedBits(out[p.frameIdx], bitstream.ToBits(chunkBytes), bitDepth); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// DetectSplit probes up to the first five frames for a plausible chunk
// header, per spec §4.7's mode-detection heuristic. It is probabilistic:
// exposing an explicit mode parameter to callers (as ExtractFirstOrAll and
// ExtractSplit do) is the escape hatch when this guesses wrong.
func DetectSplit(frames [][]byte, bitDepth int) bool {
	probeCount := len(frames)
	if probeCount > 5 {
		probeCount = 5
	}
	for i := 0; i < probeCount; i++ {
		h, ok := readChunkHeader(frames[i], bitDepth)
		if ok && h.IsPlausible() {
			return true
		}
	}
	return false
}

func readChunkHeader(f []byte, bitDepth int) (frame.ChunkHeader, bool) {
	if pixellsb.CapacityBytesForBuffer(f, bitDepth) < frame.ChunkHeaderLength {
		return frame.ChunkHeader{}, false
	}
	bits, err := pixellsb.ExtractBits(f, frame.ChunkHeaderLength*8, bitDepth)
	if err != nil {
		return frame.ChunkHeader{}, false
	}
	h, err := frame.UnmarshalChunkHeader(bitstream.FromBits(bits))
	if err != nil {
		return frame.ChunkHeader{}, false
	}
	return h, true
}

// ExtractFirstOrAll reads the framed payload back out of frames[frameIndex],
// for carriers embedded with EmbedFirst or EmbedAll.
func ExtractFirstOrAll(frames [][]byte, frameIndex int, bitDepth int) ([]byte, error) {
	if frameIndex < 0 || frameIndex >= len(frames) {
		return nil, stegerrors.NewInvalidArgument("frame index %d out of range [0,%d)", frameIndex, len(frames))
	}
	f := frames[frameIndex]
	capBytes := pixellsb.CapacityBytesForBuffer(f, bitDepth)
	bits, err := pixellsb.ExtractBits(f, int(capBytes)*8, bitDepth)
	if err != nil {
		return nil, err
	}
	return bitstream.FromBits(bits), nil
}

// ExtractSplit scans every frame for a plausible chunk header, validates
// bounds, sorts by chunk index, and concatenates the payloads back into one
// framed payload. Omitting a frame that held a chunk causes a short or
// invalid result, surfaced as the error the concatenated bytes fail to
// parse as (not detected here, since chunk headers carry no checksum).
func ExtractSplit(frames [][]byte, bitDepth int) ([]byte, error) {
	type found struct {
		header frame.ChunkHeader
		data   []byte
	}
	var chunks []found

	for _, f := range frames {
		h, ok := readChunkHeader(f, bitDepth)
		if !ok || !h.IsPlausible() {
			continue
		}
		totalBits := (frame.ChunkHeaderLength + int(h.ChunkSize)) * 8
		capBytes := pixellsb.CapacityBytesForBuffer(f, bitDepth)
		if int64(frame.ChunkHeaderLength+int(h.ChunkSize)) > capBytes {
			continue
		}
		bits, err := pixellsb.ExtractBits(f, totalBits, bitDepth)
		if err != nil {
			continue
		}
		raw := bitstream.FromBits(bits)
		chunks = append(chunks, found{header: h, data: raw[frame.ChunkHeaderLength:]})
	}

	if len(chunks) == 0 {
		return nil, stegerrors.ErrNoUsableFrames
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].header.ChunkIndex < chunks[j].header.ChunkIndex })

	var out []byte
	for _, c := range chunks {
		out = append(out, c.data...)
	}
	return out, nil
}

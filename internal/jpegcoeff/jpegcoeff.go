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

// Package jpegcoeff holds the in-memory representation of a parsed JPEG's
// quantized DCT coefficients: a list of components, each a 2D grid of 8x8
// blocks. It plays the role of the "already-parsed JPEG coefficient object"
// spec.md §4.8 treats as an external collaborator — the structure mirrors
// the component/block layout Go's own image/jpeg decoder builds internally
// (see the pack's progjpeg fork of it), since no ecosystem package exposes
// raw quantized coefficients without a cgo dependency on libjpeg.
package jpegcoeff

import (
	"github.com/cespare/xxhash/v2"
)

// BlockSize is the number of coefficients in one 8x8 DCT block.
const BlockSize = 64

// Block holds one 8x8 block's 64 quantized coefficients in natural (not
// zig-zag) order; index 0 is the DC term, 1..63 are AC.
type Block [BlockSize]int32

// Component is one colour component's grid of blocks.
type Component struct {
	// ID is the JPEG component identifier; by convention 1 is luma (Y).
	ID int
	// Blocks is indexed [row][col].
	Blocks [][]Block
}

// Coefficients is a full parsed JPEG's component/block tree.
type Coefficients struct {
	Components []Component
}

// Clone returns a deep copy of c. Callers that need to retain the original
// coefficients across an in-place embed must clone first: jpegstego.Embed
// mutates its argument for efficiency, exactly as documented in spec.md §3.
func (c *Coefficients) Clone() *Coefficients {
	if c == nil {
		return nil
	}
	out := &Coefficients{Components: make([]Component, len(c.Components))}
	for i, comp := range c.Components {
		cc := Component{ID: comp.ID, Blocks: make([][]Block, len(comp.Blocks))}
		for r, row := range comp.Blocks {
			rowCopy := make([]Block, len(row))
			copy(rowCopy, row)
			cc.Blocks[r] = rowCopy
		}
		out.Components[i] = cc
	}
	return out
}

// Checksum returns a fast, non-cryptographic digest of every coefficient in
// c, in component/row/block/index order. It exists only so tests can
// cheaply assert that a Clone matches its original (or, after extraction,
// that coefficients were left exactly as embedded) without comparing the
// full nested structure by hand; it carries no integrity guarantee for
// payload data, which spec.md §7 deliberately leaves unauthenticated.
func (c *Coefficients) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for _, comp := range c.Components {
		for _, row := range comp.Blocks {
			for _, block := range row {
				for _, v := range block {
					u := uint32(v)
					buf[0], buf[1], buf[2], buf[3] = byte(u), byte(u>>8), byte(u>>16), byte(u>>24)
					h.Write(buf[:4])
				}
			}
		}
	}
	return h.Sum64()
}

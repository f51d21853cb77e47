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

// Package stegano hides arbitrary payloads inside raster images and plain
// text, and gets them back out again.
//
// Four kinds of carrier are supported:
//
//   - Still raster images (PNG, WebP, TIFF): payload bits go into the low
//     order bits of the R, G, B channels (package pixellsb).
//   - JPEG images: payload bits go into the LSBs of usable quantized AC
//     DCT coefficients (package jpegstego), reached through a component
//     that runs the forward/inverse transform itself (internal/imagecodec)
//     since no dependency-free library exposes raw coefficients.
//   - Multi-frame containers (animated GIF, multi-page TIFF): the pixel
//     engine is applied per frame under one of three placement strategies
//     (package multiframe).
//   - Unicode text: payload bits go into zero-width code points threaded
//     through or appended to a cover string (package zwc).
//
// Every carrier shares one payload framing layer (package frame): a
// type/length header, DEFLATE compression, and optional password-based
// encryption. This package wires that framing to each carrier's raw
// bit-level engine and to the image-codec collaborator, so callers reach
// for one Encode/Decode pair per carrier kind instead of composing the
// subpackages by hand.
//
// The three image engines (pixel LSB, multi-frame, JPEG) additionally run
// the header and framed payload through a cyclic-key XOR scramble (package
// internal/xorkey) keyed by the same password, so a carrier's length-prefix
// header is never left in the clear just because the caller skipped full
// encryption. The ZWC text engine does not use this step.
package stegano

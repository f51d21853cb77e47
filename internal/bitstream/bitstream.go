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

// Package bitstream converts between byte slices and LSB-first bit streams.
//
// Every carrier engine in stegano consumes and produces a []bit stream
// (represented here as a []byte of 0/1 values, one bit per element) via the
// two functions in this package. The LSB-first convention is load bearing:
// ToBits and FromBits must agree bit-for-bit with every engine that embeds
// or extracts on their own iteration order.
package bitstream

// ToBits expands each byte of b into 8 bits, LSB first: for byte v, the
// emitted order is v>>0&1, v>>1&1, ..., v>>7&1.
func ToBits(b []byte) []byte {
	bits := make([]byte, 0, len(b)*8)
	for _, v := range b {
		for i := uint(0); i < 8; i++ {
			bits = append(bits, (v>>i)&1)
		}
	}
	return bits
}

// FromBits reassembles bits (LSB first, 8 per byte) into a byte slice. A
// trailing partial byte (len(bits) not a multiple of 8) is dropped.
func FromBits(bits []byte) []byte {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var v byte
		for j := uint(0); j < 8; j++ {
			if bits[i*8+int(j)]&1 != 0 {
				v |= 1 << j
			}
		}
		out[i] = v
	}
	return out
}

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

// Package xorkey implements the cyclic-key XOR obfuscator used by the pixel
// and multi-frame image engines as a lightweight, non-cryptographic
// scrambler. It is not a substitute for the password encryption in
// internal/cryptbox; it exists only so a short password can visibly perturb
// a carrier without paying for AES/PBKDF2 on every embed.
package xorkey

// Apply returns d XOR p[i mod len(p)] for every byte of d. An empty key
// returns d unchanged (the identity case required by the XOR-is-its-own-
// inverse law). Apply is its own inverse: Apply(Apply(d, p), p) == d.
func Apply(d []byte, p []byte) []byte {
	if len(p) == 0 {
		out := make([]byte, len(d))
		copy(out, d)
		return out
	}
	out := make([]byte, len(d))
	for i, v := range d {
		out[i] = v ^ p[i%len(p)]
	}
	return out
}

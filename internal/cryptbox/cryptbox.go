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

// Package cryptbox implements password-based confidentiality: PBKDF2-SHA256
// key derivation followed by AES-256-CTR encryption. There is no integrity
// tag; a wrong password decrypts to garbage that almost always fails
// downstream decompression or UTF-8 decoding. Encryption here provides
// confidentiality only; this is a deliberate scope limit, not an oversight.
package cryptbox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength       = 16
	counterLength    = 16
	keyLength        = 32
	pbkdf2Iterations = 100000

	// MinEncryptedLength is the smallest a salt‖counter‖ciphertext blob can
	// legally be: salt, counter, and at least one byte of ciphertext.
	MinEncryptedLength = saltLength + counterLength + 1
)

// ErrEncryptedTooShort is returned by Decrypt when the blob is shorter than
// MinEncryptedLength.
type ErrEncryptedTooShort int

func (e ErrEncryptedTooShort) Error() string {
	return fmt.Sprintf("cryptbox: encrypted data too short: %d bytes (minimum %d)", int(e), MinEncryptedLength)
}

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, pbkdf2Iterations, keyLength, sha256.New)
}

// Encrypt derives a 256-bit key from password via PBKDF2-SHA256 with a fresh
// random 16-byte salt, then encrypts plaintext with AES-256-CTR under a
// fresh random 128-bit counter block. The output is salt(16) ‖ counter(16)
// ‖ ciphertext.
func Encrypt(plaintext []byte, password string) ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("cryptbox: salt: %w", err)
	}
	counter := make([]byte, counterLength)
	if _, err := io.ReadFull(rand.Reader, counter); err != nil {
		return nil, fmt.Errorf("cryptbox: counter: %w", err)
	}

	key := deriveKey(password, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptbox: new cipher: %w", err)
	}

	ciphertext := make([]byte, len(plaintext))
	stream := cipher.NewCTR(block, counter)
	stream.XORKeyStream(ciphertext, plaintext)

	out := make([]byte, 0, saltLength+counterLength+len(ciphertext))
	out = append(out, salt...)
	out = append(out, counter...)
	out = append(out, ciphertext...)
	return out, nil
}

// Decrypt reverses Encrypt. Blobs shorter than MinEncryptedLength fail with
// ErrEncryptedTooShort. A wrong password is not detected here: it simply
// yields incorrect plaintext.
func Decrypt(blob []byte, password string) ([]byte, error) {
	if len(blob) < MinEncryptedLength {
		return nil, ErrEncryptedTooShort(len(blob))
	}

	salt := blob[:saltLength]
	counter := blob[saltLength : saltLength+counterLength]
	ciphertext := blob[saltLength+counterLength:]

	key := deriveKey(password, salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cryptbox: new cipher: %w", err)
	}

	plaintext := make([]byte, len(ciphertext))
	stream := cipher.NewCTR(block, counter)
	stream.XORKeyStream(plaintext, ciphertext)
	return plaintext, nil
}

package xorkey

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	pw := []byte("correct horse battery staple")

	enc := Apply(data, pw)
	if bytes.Equal(enc, data) {
		t.Fatalf("encrypted output should differ from input")
	}
	dec := Apply(enc, pw)
	if !bytes.Equal(dec, data) {
		t.Fatalf("round trip mismatch: got %v want %v", dec, data)
	}
}

func TestEmptyPasswordIsIdentity(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	out := Apply(data, nil)
	if !bytes.Equal(out, data) {
		t.Fatalf("empty password should be identity: got %v want %v", out, data)
	}
}

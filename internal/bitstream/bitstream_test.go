package bitstream

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0x00},
		{0xFF},
		{0x01, 0x80, 0x55, 0xAA},
		[]byte("Hello, stegano"),
	}
	for _, c := range cases {
		got := FromBits(ToBits(c))
		if !bytes.Equal(got, c) && !(len(got) == 0 && len(c) == 0) {
			t.Fatalf("round trip mismatch: in=%v out=%v", c, got)
		}
	}
}

func TestToBitsOrderIsLSBFirst(t *testing.T) {
	bits := ToBits([]byte{0b00000010})
	want := []byte{0, 1, 0, 0, 0, 0, 0, 0}
	if len(bits) != 8 {
		t.Fatalf("expected 8 bits, got %d", len(bits))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d: got %d want %d", i, bits[i], want[i])
		}
	}
}

func TestFromBitsDropsPartialByte(t *testing.T) {
	bits := ToBits([]byte{0xAB})
	bits = bits[:5]
	got := FromBits(bits)
	if len(got) != 0 {
		t.Fatalf("expected trailing partial byte to be dropped, got %v", got)
	}
}

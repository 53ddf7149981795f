package krypt

import (
	"context"
	"math/big"
	"testing"
)

func TestDecodeAllPreservesOrder(t *testing.T) {
	srcs := []Readable{
		NewMemoryReader([]byte{0x02, 0x01, 0x01}),
		NewMemoryReader([]byte{0x02, 0x01, 0x02}),
		NewMemoryReader([]byte{0x02, 0x01, 0x03}),
	}
	vs, err := DecodeAll(context.Background(), srcs)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	for i, v := range vs {
		sem, err := v.Decoded()
		if err != nil {
			t.Fatalf("Decoded[%d]: %v", i, err)
		}
		want := int64(i + 1)
		if sem.(*big.Int).Int64() != want {
			t.Fatalf("vs[%d] = %v, want %d", i, sem, want)
		}
	}
}

func TestDecodeAllStopsOnFirstError(t *testing.T) {
	srcs := []Readable{
		NewMemoryReader([]byte{0x02, 0x01, 0x01}),
		NewMemoryReader([]byte{0x02, 0x80}), // indefinite on primitive: illegal
	}
	if _, err := DecodeAll(context.Background(), srcs); err == nil {
		t.Fatalf("expected DecodeAll to surface the malformed source's error")
	}
}

func TestEncodeAllPreservesOrder(t *testing.T) {
	v1, _ := NewInteger(1)
	v2, _ := NewInteger(2)
	out, err := EncodeAll(context.Background(), []*Value{v1, v2})
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	if len(out) != 2 || out[0][2] != 0x01 || out[1][2] != 0x02 {
		t.Fatalf("unexpected EncodeAll output: %v", out)
	}
}

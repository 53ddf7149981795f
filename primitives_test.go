package krypt

import (
	"bytes"
	"testing"
)

func TestBooleanRoundTrip(t *testing.T) {
	v := NewBoolean(true)
	raw, err := ToBytes(v)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(raw, []byte{0x01, 0x01, 0xFF}) {
		t.Fatalf("BOOLEAN true encoding = % x", raw)
	}

	decoded, err := Decode(NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sem, err := decoded.Decoded()
	if err != nil {
		t.Fatalf("Decoded: %v", err)
	}
	if sem.(bool) != true {
		t.Fatalf("decoded = %v, want true", sem)
	}
}

func TestBooleanAcceptsAnyNonZeroOctetOnDecode(t *testing.T) {
	raw := []byte{0x01, 0x01, 0x7A}
	decoded, err := Decode(NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sem, err := decoded.Decoded()
	if err != nil {
		t.Fatalf("Decoded: %v", err)
	}
	if sem.(bool) != true {
		t.Fatalf("any non-zero octet should decode true, got %v", sem)
	}
}

func TestNullRoundTrip(t *testing.T) {
	v := NewNull()
	raw, err := ToBytes(v)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if !bytes.Equal(raw, []byte{0x05, 0x00}) {
		t.Fatalf("NULL encoding = % x", raw)
	}
}

func TestNullRejectsNonEmptyContent(t *testing.T) {
	raw := []byte{0x05, 0x01, 0x00}
	decoded, err := Decode(NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if _, err := decoded.Decoded(); err == nil {
		t.Fatalf("expected error decoding non-empty NULL content")
	}
}

func TestBitStringUnusedBitsRoundTrip(t *testing.T) {
	v, err := NewBitString([]byte{0b10110000}, 4)
	if err != nil {
		t.Fatalf("NewBitString: %v", err)
	}
	raw, err := ToBytes(v)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	want := []byte{0x03, 0x02, 0x04, 0b10110000}
	if !bytes.Equal(raw, want) {
		t.Fatalf("BIT STRING encoding = % x, want % x", raw, want)
	}

	decoded, err := Decode(NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sem, err := decoded.Decoded()
	if err != nil {
		t.Fatalf("Decoded: %v", err)
	}
	bs := sem.(BitStringValue)
	if bs.UnusedBits != 4 || !bytes.Equal(bs.Bytes, []byte{0b10110000}) {
		t.Fatalf("decoded BitStringValue = %+v", bs)
	}
}

func TestBitStringRejectsUnusedBitsOutOfRange(t *testing.T) {
	if _, err := NewBitString([]byte{0x00}, 8); err == nil {
		t.Fatalf("expected error for unused-bits count out of [0,7]")
	}
}

func TestBitStringRejectsNonzeroUnusedOnEmptyContent(t *testing.T) {
	if _, err := NewBitString(nil, 3); err == nil {
		t.Fatalf("expected error: nonzero unused-bit count with empty content")
	}
}

func TestObjectIdentifierRoundTrip(t *testing.T) {
	// 1.2.840.113549 (the RSADSI arc).
	v, err := NewObjectIdentifier([]int64{1, 2, 840, 113549})
	if err != nil {
		t.Fatalf("NewObjectIdentifier: %v", err)
	}
	raw, err := ToBytes(v)
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}

	decoded, err := Decode(NewMemoryReader(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sem, err := decoded.Decoded()
	if err != nil {
		t.Fatalf("Decoded: %v", err)
	}
	oid := sem.(ObjectIdentifier)
	if oid.String() != "1.2.840.113549" {
		t.Fatalf("oid = %s, want 1.2.840.113549", oid.String())
	}
}

func TestParseOIDMatchesNewObjectIdentifier(t *testing.T) {
	oid, err := ParseOID("1.2.840.113549")
	if err != nil {
		t.Fatalf("ParseOID: %v", err)
	}
	v, err := NewObjectIdentifier([]int64{1, 2, 840, 113549})
	if err != nil {
		t.Fatalf("NewObjectIdentifier: %v", err)
	}
	want, _ := ToBytes(v)

	raw, err := oidCodec{}.Encode(oid)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(raw, want[2:]) {
		t.Fatalf("ParseOID encoding mismatch: % x vs % x", raw, want[2:])
	}
}

func TestObjectIdentifierRejectsSecondArcTooLargeUnderLowFirstArc(t *testing.T) {
	v, err := NewObjectIdentifier([]int64{0, 40})
	if err == nil {
		t.Fatalf("expected error, got %v", v)
	}
}

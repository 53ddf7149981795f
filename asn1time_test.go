package krypt

import (
	"testing"
	"time"
)

func TestUTCTimeRoundTrip(t *testing.T) {
	want := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	v := NewUTCTime(want)
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
	got := sem.(time.Time)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGeneralizedTimeRoundTrip(t *testing.T) {
	want := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
	v := NewGeneralizedTime(want)
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
	got := sem.(time.Time)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestUTCTimeTwoDigitYearPivot(t *testing.T) {
	// "500101000000Z" pivots to 1950, not 2050.
	sem, err := (timeCodec{}).Decode([]byte("500101000000Z"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sem.(time.Time).Year() != 1950 {
		t.Fatalf("year = %d, want 1950", sem.(time.Time).Year())
	}

	sem, err = (timeCodec{}).Decode([]byte("490101000000Z"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if sem.(time.Time).Year() != 2049 {
		t.Fatalf("year = %d, want 2049", sem.(time.Time).Year())
	}
}

func TestGeneralizedTimeRejectsMalformedValue(t *testing.T) {
	if _, err := (timeCodec{generalized: true}).Decode([]byte("not-a-time")); err == nil {
		t.Fatalf("expected error decoding malformed GeneralizedTime")
	}
}

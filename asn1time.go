package krypt

/*
asn1time.go implements the ASN.1 UTCTime (tag 23) and GeneralizedTime
(tag 24) codecs, grounded on the teacher's time.go. Both wrap the same
wall-clock instant semantic value; they differ only in their textual
form (spec.md §4.3's table).
*/

import (
	"strconv"
	"time"
)

type timeCodec struct{ generalized bool }

func (c timeCodec) Decode(raw []byte) (any, error) {
	s := string(raw)
	if c.generalized {
		return parseGeneralizedTime(s)
	}
	return parseUTCTime(s)
}

func (c timeCodec) Encode(sem any) ([]byte, error) {
	t, ok := sem.(time.Time)
	if !ok {
		return nil, newSerializeError("expected time.Time")
	}
	if c.generalized {
		return []byte(t.UTC().Format("20060102150405Z")), nil
	}
	return []byte(t.UTC().Format("060102150405Z")), nil
}

// parseUTCTime parses "YYMMDDhhmm[ss]Z" or with a "+hhmm"/"-hhmm"
// offset in place of "Z" (spec.md §4.3).
func parseUTCTime(s string) (time.Time, error) {
	layouts := []string{"0601021504Z0700", "060102150405Z0700"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, normalizeZuluOffset(s)); err == nil {
			// RFC: two-digit years 50-99 => 19xx, 00-49 => 20xx.
			// time.Parse maps 69-99 to 19xx and 00-68 to 20xx, so
			// 50-68 are moved back a century.
			if t.Year() >= 2050 {
				t = t.AddDate(-100, 0, 0)
			}
			return t, nil
		}
	}
	return time.Time{}, newParseError("UTCTime: malformed value " + strconv.Quote(s))
}

// parseGeneralizedTime parses
// "YYYYMMDDhhmm[ss[.fff]][Z|+-hhmm]" (spec.md §4.3).
func parseGeneralizedTime(s string) (time.Time, error) {
	s = normalizeZuluOffset(s)
	layouts := []string{
		"20060102150405Z0700",
		"200601021504Z0700",
		"20060102150405.999Z0700",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, newParseError("GeneralizedTime: malformed value " + strconv.Quote(s))
}

// normalizeZuluOffset turns a bare trailing "Z" into the "+0000" Go's
// time package expects for the Z0700 layout verb family, while
// leaving an explicit +-hhmm offset untouched.
func normalizeZuluOffset(s string) string {
	if len(s) > 0 && s[len(s)-1] == 'Z' {
		return s[:len(s)-1] + "+0000"
	}
	return s
}

func init() {
	registerCodec(TagUTCTime, timeCodec{generalized: false})
	registerCodec(TagGeneralizedTime, timeCodec{generalized: true})
}

// NewUTCTime constructs a UTCTime Value (spec.md §6).
func NewUTCTime(t time.Time, opts ...TagOverride) *Value {
	raw, _ := (timeCodec{generalized: false}).Encode(t)
	return newTaggedPrimitive(TagUTCTime, raw, opts)
}

// NewGeneralizedTime constructs a GeneralizedTime Value (spec.md §6).
func NewGeneralizedTime(t time.Time, opts ...TagOverride) *Value {
	raw, _ := (timeCodec{generalized: true}).Encode(t)
	return newTaggedPrimitive(TagGeneralizedTime, raw, opts)
}

package krypt

/*
strings.go implements the ASN.1 string-alphabet family (tags 12,
18-22, 25-28, 30 per spec.md §4.3's table). The teacher splits each
type into its own file (ps.go, ia5.go, utf8.go, vs.go, gs.go, ns.go,
t61.go, us.go, bmp.go); this module collapses them into one
table-driven codec since, per spec.md, "alphabet validation is
optional, off by default" and the wire encoding is identity for every
member — the only per-type difference worth keeping is the optional
alphabet validator, which a lookup table expresses more directly than
ten near-duplicate files.
*/

// StringKind names one of the ASN.1 text string types sharing the
// identity-encoding codec.
type StringKind int

const (
	KindNumericString StringKind = iota
	KindPrintableString
	KindT61String
	KindVideotexString
	KindIA5String
	KindGraphicString
	KindVisibleString
	KindGeneralString
	KindUniversalString
	KindCharacterString
	KindBMPString
	KindUTF8String
)

var stringKindTag = map[StringKind]int{
	KindNumericString:   TagNumericString,
	KindPrintableString: TagPrintableString,
	KindT61String:       TagT61String,
	KindVideotexString:  TagVideotexString,
	KindIA5String:       TagIA5String,
	KindGraphicString:   TagGraphicString,
	KindVisibleString:   TagVisibleString,
	KindGeneralString:   TagGeneralString,
	KindUniversalString: TagUniversalString,
	KindCharacterString: TagCharacterString,
	KindBMPString:       TagBMPString,
	KindUTF8String:      TagUTF8String,
}

// alphabetValidators optionally restrict a string type's legal
// character set. Off by default (spec.md §4.3); enable per-kind with
// EnableAlphabetValidation.
var alphabetValidators = map[StringKind]func(byte) bool{
	KindNumericString:   func(b byte) bool { return (b >= '0' && b <= '9') || b == ' ' },
	KindPrintableString: isPrintableStringByte,
	KindIA5String:       func(b byte) bool { return b < 0x80 },
	KindVisibleString:   func(b byte) bool { return b >= 0x20 && b < 0x7F },
}

func isPrintableStringByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

var alphabetEnabled = map[StringKind]bool{}

// EnableAlphabetValidation turns on content validation for kind on
// decode and encode (spec.md §4.3: "alphabet validation is optional,
// off by default").
func EnableAlphabetValidation(kind StringKind) { alphabetEnabled[kind] = true }

type textStringCodec struct{ kind StringKind }

func (c textStringCodec) validate(raw []byte) error {
	if !alphabetEnabled[c.kind] {
		return nil
	}
	v, ok := alphabetValidators[c.kind]
	if !ok {
		return nil
	}
	for _, b := range raw {
		if !v(b) {
			return newParseError("string content violates declared alphabet")
		}
	}
	return nil
}

func (c textStringCodec) Decode(raw []byte) (any, error) {
	if err := c.validate(raw); err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (c textStringCodec) Encode(sem any) ([]byte, error) {
	s, ok := sem.(string)
	if !ok {
		return nil, newSerializeError("expected string")
	}
	raw := []byte(s)
	if err := c.validate(raw); err != nil {
		return nil, newSerializeError(err.Error())
	}
	return raw, nil
}

func init() {
	for kind, tag := range stringKindTag {
		if reservedTags[tag] {
			continue // CHARACTER STRING (29) stays without a codec
		}
		registerCodec(tag, textStringCodec{kind: kind})
	}
}

// NewString constructs a text-string Value of the given kind
// (spec.md §6).
func NewString(kind StringKind, s string, opts ...TagOverride) (*Value, error) {
	raw, err := (textStringCodec{kind: kind}).Encode(s)
	if err != nil {
		return nil, err
	}
	return newTaggedPrimitive(stringKindTag[kind], raw, opts), nil
}

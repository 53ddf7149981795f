package krypt

/*
tag.go contains the UNIVERSAL tag-number constants and their display
names. Defined largely for convenience so that callers building or
inspecting a [Header] rarely need to remember a bare integer.
*/

const (
	invalidTag         = -1
	TagBoolean         = 1
	TagInteger         = 2
	TagBitString       = 3
	TagOctetString     = 4
	TagNull            = 5
	TagOID             = 6
	TagObjectDescriptor = 7 // reserved: no codec, see §4.3
	TagExternal        = 8  // reserved: no codec
	TagReal            = 9  // reserved: no codec, see DESIGN.md
	TagEnumerated      = 10
	TagEmbeddedPDV     = 11 // reserved: no codec
	TagUTF8String      = 12
	TagRelativeOID     = 13 // reserved: no codec
	TagTime            = 14 // reserved: no codec
	TagSequence        = 16
	TagSet             = 17
	TagNumericString   = 18
	TagPrintableString = 19
	TagT61String       = 20
	TagVideotexString  = 21
	TagIA5String       = 22
	TagUTCTime         = 23
	TagGeneralizedTime = 24
	TagGraphicString   = 25
	TagVisibleString   = 26
	TagGeneralString   = 27
	TagUniversalString = 28
	TagCharacterString = 29 // reserved: no codec
	TagBMPString       = 30
)

// maxUniversalTag is the inclusive UNIVERSAL tag bound enforced on both
// decode and encode (spec.md §3, §8).
const maxUniversalTag = 30

// TagNames gives a human-readable label for a UNIVERSAL tag number,
// including the reserved slots that have no codec.
var TagNames = map[int]string{
	invalidTag:          "INVALID TAG",
	TagBoolean:          "BOOLEAN",
	TagInteger:          "INTEGER",
	TagBitString:        "BIT STRING",
	TagOctetString:      "OCTET STRING",
	TagNull:             "NULL",
	TagOID:              "OBJECT IDENTIFIER",
	TagObjectDescriptor: "OBJECT DESCRIPTOR",
	TagExternal:         "EXTERNAL",
	TagReal:             "REAL",
	TagEnumerated:       "ENUMERATED",
	TagEmbeddedPDV:      "EMBEDDED PDV",
	TagUTF8String:       "UTF8 STRING",
	TagRelativeOID:      "RELATIVE OID",
	TagTime:             "TIME",
	TagSequence:         "SEQUENCE",
	TagSet:              "SET",
	TagNumericString:    "NUMERIC STRING",
	TagPrintableString:  "PRINTABLE STRING",
	TagT61String:        "T61 STRING",
	TagVideotexString:   "VIDEOTEX STRING",
	TagIA5String:        "IA5 STRING",
	TagUTCTime:          "UTC TIME",
	TagGeneralizedTime:  "GENERALIZED TIME",
	TagGraphicString:    "GRAPHIC STRING",
	TagVisibleString:    "VISIBLE STRING",
	TagGeneralString:    "GENERAL STRING",
	TagUniversalString:  "UNIVERSAL STRING",
	TagCharacterString:  "CHARACTER STRING",
	TagBMPString:        "BMP STRING",
}

// reservedTags are UNIVERSAL tag numbers up to maxUniversalTag that this
// codec table leaves undefined; the generic decoder falls back to an
// opaque byte-sequence representation for these (spec.md §4.3).
var reservedTags = map[int]bool{
	TagObjectDescriptor: true,
	TagExternal:         true,
	TagReal:             true,
	TagEmbeddedPDV:      true,
	TagRelativeOID:      true,
	TagTime:             true,
	15:                  true, // reserved, unassigned by X.690
	TagCharacterString:  true,
}

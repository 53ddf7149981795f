package krypt

/*
object.go implements the Object pairing described in spec.md §3: a
Header alongside its raw content octets. bytes may be nil for an
Object whose children have not yet been serialized (spec.md:
"may be null for objects constructed from sub-elements whose
serialisation is deferred").
*/

// Object pairs a parsed or synthesized Header with its raw content
// octets.
type Object struct {
	Header Header
	Bytes  []byte
}

// FullBytes returns the complete TLV encoding (header + content) for
// the receiver.
func (o Object) FullBytes() []byte {
	out := make([]byte, 0, o.Header.HeaderLen()+len(o.Bytes))
	out = append(out, o.Header.Bytes()...)
	out = append(out, o.Bytes...)
	return out
}

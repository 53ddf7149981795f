package krypt

/*
evt.go contains EventType constants used only for debugging when this
package is built or run with the "krypt_debug" build tag. Grounded on
the teacher's evt.go, trimmed to the events this codec and template
engine actually emit.
*/

// EventType describes a kind of [Tracer] event. Meaningful only when
// this package was built with "-tags krypt_debug"; otherwise every
// debug* call is a no-op (trace_off.go).
type EventType int

const (
	EventNone EventType = 0
	EventAll  EventType = 65535
)

const (
	EventEnter EventType = 1 << iota //    1: function entry
	EventExit                        //    2: function exit
	EventInfo                        //    4: interim event
	EventTLV                         //    8: header/TLV decode ops
	EventCodec                       //   16: primitive codec ops
	EventSeqSet                      //   32: SEQUENCE/SET layout walk
	EventChoice                      //   64: CHOICE resolution
)

//go:build !krypt_debug

package krypt

/*
trace_off.go is the no-op tracer compiled in by default, grounded on
the teacher's trc_off.go. Every debug* hook compiles away to nothing
so normal builds pay zero cost for the instrumentation.
*/

func debugEnter(_ ...any)      {}
func debugExit(_ ...any)       {}
func debugInfo(_ ...any)       {}
func debugTLV(_ ...any)        {}
func debugCodec(_ ...any)      {}
func debugSeqSet(_ ...any)     {}
func debugChoice(_ ...any)     {}

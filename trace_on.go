//go:build krypt_debug

package krypt

/*
trace_on.go is the active tracer built in with "-tags krypt_debug",
grounded on the teacher's trc_on.go: a mutex-guarded io.Writer sink,
an EventType bitmask filter, and a package-level Tracer swapped in via
EnableDebug/DisableDebug. Trimmed of the teacher's PDU/Primitive/
Options-specific formatting, which has no equivalent in this package.
*/

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

// EnvDebugVar names the environment variable read at init to enable
// tracing without a call to EnableDebug.
const EnvDebugVar = "KRYPT_DEBUG"

// Tracer receives TraceRecord events emitted by the debug* hooks.
type Tracer interface {
	Trace(TraceRecord)
	Enabled(EventType) bool
}

// TraceRecord carries one traced event.
type TraceRecord struct {
	Time time.Time
	Type EventType
	Func string
	Args []any
}

// DefaultTracer writes formatted TraceRecords to an io.Writer.
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask EventType
}

// NewDefaultTracer returns a *DefaultTracer writing to w with every
// event class enabled.
func NewDefaultTracer(w io.Writer) *DefaultTracer {
	return &DefaultTracer{w: w, mask: EventAll}
}

// EnableLevel adds ev to the receiver's active event mask.
func (r *DefaultTracer) EnableLevel(ev EventType) { r.mask |= ev }

// DisableLevel removes ev from the receiver's active event mask.
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask &^= ev }

// Enabled reports whether ev is active in the receiver's mask.
func (r *DefaultTracer) Enabled(ev EventType) bool { return r.mask&ev != 0 }

// Trace writes rec to the receiver's writer.
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	arrow := "•"
	switch rec.Type {
	case EventEnter:
		arrow = "→"
	case EventExit:
		arrow = "←"
	}
	line := ts + " " + arrow + " " + rec.Func
	for _, a := range rec.Args {
		line += " " + fmtArg(a)
	}
	r.w.Write([]byte(line + "\n"))
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{}
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

// EnableDebug installs t as the active package-level Tracer.
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

// DisableDebug reverts to the no-op tracer.
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

func emit(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()
	if !t.Enabled(level) {
		return
	}

	pc, _, _, ok := runtime.Caller(2)
	fn := "unknown"
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	t.Trace(TraceRecord{Time: time.Now(), Type: level, Func: fn, Args: args})
}

func debugEnter(args ...any)  { emit(EventEnter, args...) }
func debugExit(args ...any)   { emit(EventExit, args...) }
func debugInfo(args ...any)   { emit(EventInfo, args...) }
func debugTLV(args ...any)    { emit(EventTLV, args...) }
func debugCodec(args ...any)  { emit(EventCodec, args...) }
func debugSeqSet(args ...any) { emit(EventSeqSet, args...) }
func debugChoice(args ...any) { emit(EventChoice, args...) }

func fmtArg(x any) string {
	switch v := x.(type) {
	case string:
		return v
	case bool:
		return bool2str(v)
	case error:
		if v == nil {
			return "<nil error>"
		}
		return v.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func init() {
	if v := os.Getenv(EnvDebugVar); v != "" {
		EnableDebug(NewDefaultTracer(os.Stderr))
	}
}

package krypt

/*
common.go contains small helpers and stdlib aliases used throughout
this package. Aliasing the stdlib functions we lean on most keeps the
call sites terse and gives every file in this package one obvious place
to look when auditing which standard library surface we actually touch.
*/

import (
	"errors"
	"strconv"
	"strings"
	"sync"
)

var (
	mkerr func(string) error = errors.New
	itoa  func(int) string   = strconv.Itoa
	trimS func(string) string = strings.TrimSpace
	lc    func(string) string = strings.ToLower
	join  func([]string, string) string = strings.Join
	split func(string, string) []string = strings.Split
)

var errCache sync.Map

// mkerrf builds (and caches) an error from concatenated parts, avoiding
// repeat allocation for the same message text across hot paths.
func mkerrf(parts ...string) error {
	if len(parts) == 1 {
		if v, hit := errCache.Load(parts[0]); hit {
			return v.(error)
		}
	}

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}

func bool2str(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// bufPool recycles scratch byte buffers used while building TLV encodings.
var bufPool = sync.Pool{New: func() any { b := make([]byte, 0, 64); return &b }}

func getBuf() *[]byte {
	p := bufPool.Get().(*[]byte)
	*p = (*p)[:0]
	return p
}

func putBuf(p *[]byte) { bufPool.Put(p) }

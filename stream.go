package krypt

/*
stream.go contains the abstract byte-stream contracts described in
spec.md §4.1 and §6, and the concrete in-memory/io-adapter variants.
The generic decoder and encoder (decode.go, encode.go) only ever
touch these two interfaces, never a concrete source directly — the
teacher's equivalent boundary is the single Packet interface in
pkt.go; spec.md splits it into a readable and a writable half, which
this module follows.
*/

import "io"

// Readable is a blocking byte source. Read fills up to len(buf) bytes
// and returns the count actually read; io.EOF signals exhaustion.
// Implementations must tolerate being called again after a short read
// (spec.md §6: "the decoder must tolerate short reads and loop").
type Readable interface {
	Read(buf []byte) (n int, err error)
}

// Writable is a blocking byte sink that writes all-or-nothing.
type Writable interface {
	Write(p []byte) (n int, err error)
}

// Offsetter is implemented by a Readable that can report its current
// byte position, letting a ParseError carry a file offset (spec.md §7).
type Offsetter interface {
	Offset() int
}

// MemoryReader is an in-memory Readable over a fixed byte slice.
type MemoryReader struct {
	data []byte
	pos  int
}

// NewMemoryReader wraps b in a Readable. b is not copied; callers must
// not mutate it while a decode is in flight.
func NewMemoryReader(b []byte) *MemoryReader { return &MemoryReader{data: b} }

func (r *MemoryReader) Read(buf []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(buf, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func (r *MemoryReader) Offset() int { return r.pos }

// MemoryWriter is an in-memory Writable that accumulates a buffer.
type MemoryWriter struct{ buf []byte }

// NewMemoryWriter returns an empty in-memory Writable.
func NewMemoryWriter() *MemoryWriter { return &MemoryWriter{} }

func (w *MemoryWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Finish surrenders the accumulated buffer (spec.md §4.1).
func (w *MemoryWriter) Finish() []byte { return w.buf }

// readerAdapter lets any stdlib io.Reader serve as a Readable without
// this package importing net/os directly; host I/O stays an external
// collaborator per spec.md §4.7.
type readerAdapter struct {
	r   io.Reader
	pos int
}

// FromReader adapts an io.Reader (file, socket, pipe — supplied by the
// caller) to Readable.
func FromReader(r io.Reader) Readable { return &readerAdapter{r: r} }

func (a *readerAdapter) Read(buf []byte) (int, error) {
	n, err := a.r.Read(buf)
	a.pos += n
	return n, err
}

func (a *readerAdapter) Offset() int { return a.pos }

// FromWriter adapts an io.Writer to Writable.
func FromWriter(w io.Writer) Writable { return w }

// readFull reads exactly len(buf) bytes from r, looping over short
// reads, and turns a premature io.EOF into a *ParseError (spec.md §4.2
// "Failure modes").
func readFull(r Readable, buf []byte) error {
	read := 0
	for read < len(buf) {
		n, err := r.Read(buf[read:])
		read += n
		if read >= len(buf) {
			break
		}
		if err != nil {
			if err == io.EOF {
				return newParseErrorAt(r, "premature end of input").withContext(
					"expected " + itoa(len(buf)) + " more byte(s), got " + itoa(read))
			}
			return err
		}
	}
	return nil
}

func readByte(r Readable) (byte, error) {
	var b [1]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

package xor

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader for subsequent reads.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer for subsequent writes.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	key    Key
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	Apply(out[:n], r.key)
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
}

// NewReader constructs a new Reader that will screen all bytes read with the provided key.
func NewReader(r io.Reader, key Key) Reader {
	return &reader{
		source: r,
		key:    key,
	}
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	key    Key
	buf    []byte
}

// NewWriter constructs a new Writer that will screen all bytes with the provided key before writing them to target.
// The input slice given to Write is never modified.
func NewWriter(target io.Writer, key Key) Writer {
	return &writer{
		target: target,
		key:    key,
	}
}

func (w *writer) Write(in []byte) (n int, err error) {
	if cap(w.buf) < len(in) {
		w.buf = make([]byte, len(in))
	}
	buf := w.buf[:len(in)]
	copy(buf, in)
	Apply(buf, w.key)
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
}

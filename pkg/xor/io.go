package xor

import (
	"io"
)

// Reader extends io.Reader, but also provides a way to reuse a key with a different source.
type Reader interface {
	io.Reader
	// Reset will use the provided io.Reader and restart the chain at the beginning of the key.
	Reset(source io.Reader)
}

// Writer extends io.Writer, but also provides a way to reuse a key with a different target.
type Writer interface {
	io.Writer
	// Reset will use the provided io.Writer and restart the chain at the beginning of the key.
	Reset(target io.Writer)
}

var _ Reader = (*reader)(nil)

type reader struct {
	source io.Reader
	scr    *chainScreen
}

func (r *reader) Read(out []byte) (n int, err error) {
	n, err = r.source.Read(out)
	for i := 0; i < n; i++ {
		out[i] = r.scr.decrypt(out[i])
	}
	return n, err
}

func (r *reader) Reset(source io.Reader) {
	r.source = source
	r.scr.reset()
}

// NewReader constructs a new Reader that will reverse the chained XOR on all bytes read, using the provided key.
func NewReader(r io.Reader, key []byte) (Reader, error) {
	scr, err := newChainScreen(key)
	if err != nil {
		return nil, err
	}
	return &reader{
		source: r,
		scr:    scr,
	}, nil
}

var _ Writer = (*writer)(nil)

type writer struct {
	target io.Writer
	scr    *chainScreen
}

// NewWriter constructs a new Writer that will apply the chained XOR to all bytes written, using the provided key.
// The chain advances for every byte given to Write, even if the target accepts fewer of them.
func NewWriter(target io.Writer, key []byte) (Writer, error) {
	scr, err := newChainScreen(key)
	if err != nil {
		return nil, err
	}
	return &writer{
		target: target,
		scr:    scr,
	}, nil
}

func (w *writer) Write(in []byte) (n int, err error) {
	buf := make([]byte, len(in))
	for i := 0; i < len(in); i++ {
		buf[i] = w.scr.encrypt(in[i])
	}
	return w.target.Write(buf)
}

func (w *writer) Reset(target io.Writer) {
	w.target = target
	w.scr.reset()
}

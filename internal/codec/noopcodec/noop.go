// Package noopcodec provides a pass-through codec for uncompressed
// files.
package noopcodec

import (
	"io"

	"github.com/delimio/delimio/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec passes bytes through unchanged.
type Codec struct{}

// New returns a new pass-through codec.
func New() *Codec {
	return &Codec{}
}

// Reader returns r unchanged, wrapped as a ReadCloser if needed.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

// Writer returns w unchanged, wrapped as a WriteCloser if needed.
// Close is a no-op; the raw handle stays open for its owner.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc, nil
	}
	return &nopWriteCloser{w}, nil
}

// Extension returns the empty string.
func (c *Codec) Extension() string {
	return ""
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

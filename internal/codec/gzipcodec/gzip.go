// Package gzipcodec provides a gzip compression codec.
package gzipcodec

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/delimio/delimio/internal/codec"
)

// DefaultLevel is the compression level used by New.
const DefaultLevel = 5

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements gzip compression. The reader side decodes
// multi-member streams, so a file grown by appending further gzip
// members reads back as one concatenated stream.
type Codec struct {
	level int
}

// New returns a gzip codec compressing at DefaultLevel.
func New() *Codec {
	return NewLevel(DefaultLevel)
}

// NewLevel returns a gzip codec compressing at the given level,
// between gzip.BestSpeed and gzip.BestCompression.
func NewLevel(level int) *Codec {
	return &Codec{level: level}
}

// Reader wraps r to decompress gzip data. The gzip header is read
// eagerly, so a corrupt or truncated stream fails here.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Writer wraps w to compress data with gzip.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, c.level)
	if err != nil {
		return nil, fmt.Errorf("gzip level %d: %w", c.level, err)
	}
	return zw, nil
}

// Extension returns "gz".
func (c *Codec) Extension() string {
	return "gz"
}

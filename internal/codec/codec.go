// Package codec defines the compression transform applied to file byte
// streams. A codec wraps a raw reader or writer so that everything
// upstream of it works in plain bytes.
package codec

import "io"

// Codec is a reversible byte-stream transform.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it. The returned
	// writer must be closed to flush the codec trailer.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the canonical file extension without the dot
	// (e.g. "gz", "zst"). Empty string means no compression.
	Extension() string
}

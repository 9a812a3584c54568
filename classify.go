package delimio

import "path/filepath"

// Compression identifies the codec a path calls for.
type Compression int

// Recognized compression classifications.
const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
)

// String returns a human-readable name for the classification.
func (c Compression) String() string {
	switch c {
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	default:
		return "none"
	}
}

// Classify returns the compression a path calls for, decided from the
// final extension token alone: ".gz" and ".gzip" mean gzip, ".zst" and
// ".zstd" mean zstd, anything else means no compression. The match is
// exact and case-sensitive, and file content is never read, so the
// result is a pure function of the path string.
//
// Magic-byte detection is deliberately not performed; a path's
// treatment is always predictable from its name. This is a known
// limitation for files whose extension lies about their content.
func Classify(path string) Compression {
	switch filepath.Ext(path) {
	case ".gz", ".gzip":
		return CompressionGzip
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// Package remote opens read streams for object-store URLs, letting the
// CLI consume gs:// and s3:// sources the same way as local paths.
package remote

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// IsRemote reports whether path names an object-store URL this package
// can open.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "gs://") || strings.HasPrefix(path, "s3://")
}

// Open returns a reader for the object named by rawURL, of the form
// "gs://bucket/key" or "s3://bucket/key". The returned bytes are raw:
// any decompression is the caller's concern.
func Open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(rawURL, "gs://"):
		bucket, key, err := splitObjectURL(rawURL, "gs://")
		if err != nil {
			return nil, err
		}
		return openGCS(ctx, bucket, key)
	case strings.HasPrefix(rawURL, "s3://"):
		bucket, key, err := splitObjectURL(rawURL, "s3://")
		if err != nil {
			return nil, err
		}
		return openS3(ctx, bucket, key)
	default:
		return nil, fmt.Errorf("remote: unsupported URL %q", rawURL)
	}
}

// splitObjectURL parses "scheme://bucket/key" into bucket and key.
func splitObjectURL(rawURL, scheme string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(rawURL, scheme)
	parts := strings.SplitN(rest, "/", 2)
	if parts[0] == "" || len(parts) < 2 || parts[1] == "" {
		return "", "", fmt.Errorf("remote: %q must have the form %sbucket/key", rawURL, scheme)
	}
	return parts[0], parts[1], nil
}

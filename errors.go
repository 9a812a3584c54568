package delimio

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for well-defined failure conditions. Open failures
// wrap both the sentinel and the underlying cause, so errors.Is
// matches either.
var (
	// ErrNotFound indicates a read path that does not exist.
	ErrNotFound = errors.New("delimio: file not found")

	// ErrPermission indicates the path exists but is not accessible.
	ErrPermission = errors.New("delimio: permission denied")

	// ErrCodecInit indicates the compression layer could not be set
	// up, e.g. a corrupt gzip header detected at open time.
	ErrCodecInit = errors.New("delimio: codec initialization failed")
)

// wrapPathError files an operating system error under the library's
// error taxonomy while preserving the cause.
func wrapPathError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: %w: %w", op, path, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %s: %w: %w", op, path, ErrPermission, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}

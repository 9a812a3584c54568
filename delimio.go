// Package delimio provides transparent, extension-driven compressed
// file I/O and typed delimited-text (CSV/TSV) reading and writing.
//
// Paths ending in ".gz"/".gzip" or ".zst"/".zstd" are compressed and
// decompressed transparently; everything downstream of an open handle
// works in plain bytes. Typed records are read and written through the
// record package, with whole-file helpers here.
//
// Example usage:
//
//	fio, err := delimio.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = fio.WriteLines("samples.txt.gz", []string{"a", "b"})
//	lines, err := fio.ReadLines("samples.txt.gz")
package delimio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/delimio/delimio/internal/codec"
	"github.com/delimio/delimio/internal/codec/gzipcodec"
	"github.com/delimio/delimio/internal/codec/noopcodec"
	"github.com/delimio/delimio/internal/codec/zstdcodec"
	"github.com/delimio/delimio/internal/contentcache"
	"github.com/delimio/delimio/internal/stats"
)

// maxLineBytes bounds a single line in ReadLines; longer lines fail
// the scan rather than silently truncating.
const maxLineBytes = 64 << 20

// IO opens paths for reading and writing with the compression codec
// chosen by Classify. An IO may be shared between goroutines, but each
// handle it opens is owned by the single caller that opened it.
type IO struct {
	level      int
	bufferSize int
	logger     *zap.Logger
	stats      stats.Collector
	cache      *contentcache.Cache
}

// New creates a new IO with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*IO, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	f := &IO{
		level:      cfg.level,
		bufferSize: cfg.bufferSize,
		logger:     cfg.logger,
		stats:      cfg.stats,
	}

	if cfg.cacheSize > 0 {
		cache, err := contentcache.New(cfg.cacheSize, cfg.stats)
		if err != nil {
			return nil, fmt.Errorf("creating content cache: %w", err)
		}
		f.cache = cache
	}

	f.logger.Debug("io initialized",
		zap.Int("bufferSize", f.bufferSize),
		zap.Int("compressionLevel", f.level),
		zap.Int("contentCache", cfg.cacheSize),
	)

	return f, nil
}

// codecFor returns the codec for a classification, configured with the
// facade's compression level.
func (f *IO) codecFor(c Compression) codec.Codec {
	switch c {
	case CompressionGzip:
		return gzipcodec.NewLevel(f.level)
	case CompressionZstd:
		return zstdcodec.NewLevel(f.level)
	default:
		return noopcodec.New()
	}
}

// OpenReader opens path for reading, layering in the decompressor its
// extension calls for. The returned handle yields plain bytes
// regardless of codec; the caller owns it and must close it.
func (f *IO) OpenReader(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		f.stats.IncCounter(stats.MetricOpenErrors, 1)
		return nil, wrapPathError("open", path, err)
	}

	compression := Classify(path)
	cr, err := f.codecFor(compression).Reader(bufio.NewReaderSize(file, f.bufferSize))
	if err != nil {
		file.Close()
		f.stats.IncCounter(stats.MetricOpenErrors, 1)
		return nil, fmt.Errorf("open %s: %w: %w", path, ErrCodecInit, err)
	}

	f.stats.IncCounter(stats.MetricReaderOpens, 1)
	f.logger.Debug("opened reader",
		zap.String("path", path),
		zap.Stringer("compression", compression),
	)

	return &readHandle{Reader: cr, closers: []io.Closer{cr, file}}, nil
}

// OpenWriter opens path for writing, creating it if absent and
// truncating it otherwise, with the compressor its extension calls
// for. The caller owns the handle and must close it; closing flushes
// buffers and the codec trailer.
func (f *IO) OpenWriter(path string) (io.WriteCloser, error) {
	return f.openWrite(path, false)
}

// OpenAppend is OpenWriter without truncation: writes extend the
// existing file. For compressed paths each append opens a new gzip
// member or zstd frame, which readers decode as one concatenated
// stream.
func (f *IO) OpenAppend(path string) (io.WriteCloser, error) {
	return f.openWrite(path, true)
}

func (f *IO) openWrite(path string, appendTo bool) (io.WriteCloser, error) {
	if f.cache != nil {
		f.cache.Invalidate(path)
	}

	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		f.stats.IncCounter(stats.MetricOpenErrors, 1)
		return nil, wrapPathError("create", path, err)
	}

	compression := Classify(path)
	cw, err := f.codecFor(compression).Writer(file)
	if err != nil {
		file.Close()
		f.stats.IncCounter(stats.MetricOpenErrors, 1)
		return nil, fmt.Errorf("create %s: %w: %w", path, ErrCodecInit, err)
	}

	closers := make([]io.Closer, 0, 2)
	if cw != io.WriteCloser(file) {
		closers = append(closers, cw)
	}
	closers = append(closers, file)

	f.stats.IncCounter(stats.MetricWriterOpens, 1)
	f.logger.Debug("opened writer",
		zap.String("path", path),
		zap.Stringer("compression", compression),
		zap.Bool("append", appendTo),
	)

	return &writeHandle{
		buf:     bufio.NewWriterSize(cw, f.bufferSize),
		closers: closers,
	}, nil
}

// ReadLines reads all lines from path into a slice, without trailing
// line terminators.
func (f *IO) ReadLines(path string) ([]string, error) {
	if f.cache != nil {
		data, err := f.readCached(path)
		if err != nil {
			return nil, err
		}
		lines := splitLines(data)
		f.stats.IncCounter(stats.MetricLinesRead, int64(len(lines)))
		return lines, nil
	}

	r, err := f.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, f.bufferSize), maxLineBytes)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	f.stats.IncCounter(stats.MetricLinesRead, int64(len(lines)))
	return lines, nil
}

// ReadToString reads the whole decompressed content of path.
func (f *IO) ReadToString(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if f.cache != nil {
		data, err = f.readCached(path)
	} else {
		data, err = f.readAll(path)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteLines writes lines to path, each terminated by '\n', creating
// or truncating the file and compressing per its extension.
func (f *IO) WriteLines(path string, lines []string) error {
	return f.writeLines(path, lines, false)
}

// AppendLines is WriteLines without truncation.
func (f *IO) AppendLines(path string, lines []string) error {
	return f.writeLines(path, lines, true)
}

func (f *IO) writeLines(path string, lines []string, appendTo bool) error {
	var (
		w   io.WriteCloser
		err error
	)
	if appendTo {
		w, err = f.OpenAppend(path)
	} else {
		w, err = f.OpenWriter(path)
	}
	if err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			w.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
		if _, err := w.Write([]byte{'\n'}); err != nil {
			w.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	f.stats.IncCounter(stats.MetricLinesWritten, int64(len(lines)))
	return nil
}

// readAll reads the full decompressed content of path.
func (f *IO) readAll(path string) ([]byte, error) {
	r, err := f.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readCached reads path through the content cache.
func (f *IO) readCached(path string) ([]byte, error) {
	if data, ok := f.cache.Get(path); ok {
		return data, nil
	}
	data, err := f.readAll(path)
	if err != nil {
		return nil, err
	}
	f.cache.Add(path, data)
	return data, nil
}

// splitLines splits decompressed content the way line scanning does:
// terminators are dropped and a trailing newline adds no empty line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// readHandle is an open read stream plus the layered resources to
// release, innermost first.
type readHandle struct {
	io.Reader
	closers []io.Closer
}

// Close releases the codec layer and the file, reporting the first
// error while still attempting every close.
func (h *readHandle) Close() error {
	var first error
	for _, c := range h.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// writeHandle is an open write stream. Close flushes the buffer, then
// closes the codec layer (emitting its trailer) and the file.
type writeHandle struct {
	buf     *bufio.Writer
	closers []io.Closer
}

func (h *writeHandle) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

// Close flushes and releases all layers, reporting the first error
// while still attempting every close.
func (h *writeHandle) Close() error {
	first := h.buf.Flush()
	for _, c := range h.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

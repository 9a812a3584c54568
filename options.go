package delimio

import (
	"go.uber.org/zap"

	"github.com/delimio/delimio/internal/stats"
)

// Defaults applied by New.
const (
	// DefaultBufferSize is the buffer size for readers and writers.
	DefaultBufferSize = 64 * 1024

	// DefaultCompressionLevel is the write-side compression level, on
	// the gzip 1-9 scale.
	DefaultCompressionLevel = 5
)

// Option configures an IO.
type Option interface {
	apply(*options)
}

// options holds the facade configuration.
type options struct {
	level      int
	bufferSize int
	cacheSize  int
	logger     *zap.Logger
	stats      stats.Collector
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		level:      DefaultCompressionLevel,
		bufferSize: DefaultBufferSize,
		logger:     zap.NewNop(),
		stats:      stats.NewNoop(),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithCompressionLevel sets the level used when writing compressed
// files. The value is on the gzip 1-9 scale; zstd maps it to the
// nearest encoder level. Default is 5.
func WithCompressionLevel(level int) Option {
	return optionFunc(func(o *options) {
		o.level = level
	})
}

// WithBufferSize sets the buffer size for readers and writers.
// Default is 64 KiB.
func WithBufferSize(n int) Option {
	return optionFunc(func(o *options) {
		o.bufferSize = n
	})
}

// WithContentCache enables an LRU cache of decompressed file contents,
// holding up to entries files, consulted by ReadLines and
// ReadToString. Opening a path for writing through the same IO
// invalidates its entry. Disabled by default.
func WithContentCache(entries int) Option {
	return optionFunc(func(o *options) {
		o.cacheSize = entries
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// Package iofx provides an fx module for a shared delimio IO facade.
package iofx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/delimio/delimio"
	"github.com/delimio/delimio/internal/stats"
	"github.com/delimio/delimio/internal/stats/logger"
)

// Config holds configuration for the shared facade.
type Config struct {
	// CompressionLevel for written files, gzip 1-9 scale.
	// Zero uses the library default.
	CompressionLevel int

	// BufferSize in bytes for readers and writers.
	// Zero uses the library default.
	BufferSize int

	// CacheEntries enables the content cache when positive.
	CacheEntries int
}

// Module provides a *delimio.IO.
// Requires a Config and a *zap.Logger to be provided.
var Module = fx.Module("delimio",
	fx.Provide(
		newStatsCollector,
		newIO,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("delimio.stats"))
}

// Params holds dependencies for creating the facade.
type Params struct {
	fx.In

	Config    Config
	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided facade.
type Result struct {
	fx.Out

	IO *delimio.IO
}

func newIO(p Params) (Result, error) {
	opts := []delimio.Option{
		delimio.WithLogger(p.Logger.Named("delimio")),
		delimio.WithStats(p.Collector),
	}
	if p.Config.CompressionLevel > 0 {
		opts = append(opts, delimio.WithCompressionLevel(p.Config.CompressionLevel))
	}
	if p.Config.BufferSize > 0 {
		opts = append(opts, delimio.WithBufferSize(p.Config.BufferSize))
	}
	if p.Config.CacheEntries > 0 {
		opts = append(opts, delimio.WithContentCache(p.Config.CacheEntries))
	}

	fio, err := delimio.New(opts...)
	if err != nil {
		return Result{}, err
	}
	return Result{IO: fio}, nil
}

// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Stream factory metrics.
	MetricReaderOpens = "delimio_reader_opens_total"
	MetricWriterOpens = "delimio_writer_opens_total"
	MetricOpenErrors  = "delimio_open_errors_total"

	// Facade transfer metrics.
	MetricLinesRead      = "delimio_lines_read_total"
	MetricLinesWritten   = "delimio_lines_written_total"
	MetricRecordsRead    = "delimio_records_read_total"
	MetricRecordsWritten = "delimio_records_written_total"

	// Content cache metrics.
	MetricCacheHits   = "delimio_content_cache_hits_total"
	MetricCacheMisses = "delimio_content_cache_misses_total"
	MetricCacheSize   = "delimio_content_cache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}

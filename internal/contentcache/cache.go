// Package contentcache provides an LRU cache of decompressed file
// contents, keyed by path. It serves the facade's whole-content reads
// when the same small file is read repeatedly.
package contentcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/delimio/delimio/internal/stats"
)

// Cache is a thread-safe LRU cache of file contents.
type Cache struct {
	entries   *lru.Cache[string, []byte]
	collector stats.Collector
}

// New creates a cache holding up to capacity files.
// The collector is optional; if nil, a no-op collector is used.
func New(capacity int, collector stats.Collector) (*Cache, error) {
	if collector == nil {
		collector = stats.NewNoop()
	}
	entries, err := lru.New[string, []byte](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries, collector: collector}, nil
}

// Get returns the cached contents for path.
func (c *Cache) Get(path string) ([]byte, bool) {
	data, ok := c.entries.Get(path)
	if ok {
		c.collector.IncCounter(stats.MetricCacheHits, 1)
		return data, true
	}
	c.collector.IncCounter(stats.MetricCacheMisses, 1)
	return nil, false
}

// Add stores the contents for path.
func (c *Cache) Add(path string, data []byte) {
	c.entries.Add(path, data)
	c.collector.SetGauge(stats.MetricCacheSize, int64(c.entries.Len()))
}

// Invalidate drops the entry for path, if any. Called whenever the
// path is opened for writing so stale contents are never served.
func (c *Cache) Invalidate(path string) {
	c.entries.Remove(path)
	c.collector.SetGauge(stats.MetricCacheSize, int64(c.entries.Len()))
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	return c.entries.Len()
}

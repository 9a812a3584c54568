// Package cliconfig loads the delimio CLI's optional YAML config file.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/delimio/delimio"
)

// Config holds CLI defaults.
//
// Example (YAML):
//
//	compression_level: 7
//	buffer_size: 131072
//	cache_entries: 16
//	bandwidth_limit_mb: 8
type Config struct {
	// CompressionLevel for written files, on the gzip 1-9 scale.
	CompressionLevel int `yaml:"compression_level"`
	// BufferSize in bytes for readers and writers.
	BufferSize int `yaml:"buffer_size"`
	// CacheEntries enables the facade's content cache when positive.
	CacheEntries int `yaml:"cache_entries"`
	// BandwidthLimitMB caps remote reads in MiB/s; 0 means unlimited.
	BandwidthLimitMB float64 `yaml:"bandwidth_limit_mb"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		CompressionLevel: delimio.DefaultCompressionLevel,
		BufferSize:       delimio.DefaultBufferSize,
	}
}

// Load reads the config file at path. An empty path falls back to
// $HOME/.delimio.yaml; in that case a missing file just yields the
// defaults, while an explicitly named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".delimio.yaml")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/tokenscope/tokenscope/internal/errors"
	"gopkg.in/yaml.v3"
)

// SnapshotConfig contains settings for the external snapshot binary.
type SnapshotConfig struct {
	Binary      string `yaml:"binary,omitempty"`       // Path to the cortex-browser binary (default: auto-discover)
	FileTimeout string `yaml:"file_timeout,omitempty"` // Timeout for snapshotting a local file (default: 30s)
	URLTimeout  string `yaml:"url_timeout,omitempty"`  // Timeout for snapshotting a live URL (default: 60s)
}

// FetchConfig contains settings for raw HTML retrieval.
type FetchConfig struct {
	Timeout string `yaml:"timeout,omitempty"` // e.g., "30s"
}

// TokenizerConfig selects the counting strategy.
type TokenizerConfig struct {
	Strategy string `yaml:"strategy,omitempty"` // auto, exact, or approximate
}

// CacheConfig contains fetch cache settings.
type CacheConfig struct {
	TTL string `yaml:"ttl"` // e.g., "24h"
}

// Config represents the tokenscope configuration file.
type Config struct {
	Version int `yaml:"version"`

	// FixturesDir is scanned for *.html files when no inputs are given.
	FixturesDir string `yaml:"fixtures_dir,omitempty"`

	// DefaultURL is appended as a live example after the fixtures.
	DefaultURL string `yaml:"default_url,omitempty"`

	Snapshot  SnapshotConfig  `yaml:"snapshot,omitempty"`
	Fetch     FetchConfig     `yaml:"fetch,omitempty"`
	Tokenizer TokenizerConfig `yaml:"tokenizer,omitempty"`
	Cache     CacheConfig     `yaml:"cache"`
}

// Default values.
const (
	DefaultVersion     = 1
	DefaultFixturesDir = "tests/fixtures"
	DefaultURL         = "https://www.wikipedia.org"
	DefaultFileTimeout = "30s"
	DefaultURLTimeout  = "60s"
	DefaultFetchTime   = "30s"
	DefaultStrategy    = "auto"
	DefaultCacheTTL    = "24h"
)

// Default returns a config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config from the default location. A missing file is not an
// error: compare runs fine on built-in defaults before `tokenscope init`.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	for _, d := range []struct{ name, value string }{
		{"snapshot.file_timeout", c.Snapshot.FileTimeout},
		{"snapshot.url_timeout", c.Snapshot.URLTimeout},
		{"fetch.timeout", c.Fetch.Timeout},
		{"cache.ttl", c.Cache.TTL},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return errors.ConfigInvalid("invalid " + d.name + " format, use Go duration format (e.g., 30s)")
		}
	}

	switch c.Tokenizer.Strategy {
	case "", "auto", "exact", "approximate":
	default:
		return errors.ConfigInvalid("tokenizer.strategy must be auto, exact, or approximate")
	}

	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.FixturesDir == "" {
		c.FixturesDir = DefaultFixturesDir
	}
	if c.DefaultURL == "" {
		c.DefaultURL = DefaultURL
	}
	if c.Snapshot.FileTimeout == "" {
		c.Snapshot.FileTimeout = DefaultFileTimeout
	}
	if c.Snapshot.URLTimeout == "" {
		c.Snapshot.URLTimeout = DefaultURLTimeout
	}
	if c.Fetch.Timeout == "" {
		c.Fetch.Timeout = DefaultFetchTime
	}
	if c.Tokenizer.Strategy == "" {
		c.Tokenizer.Strategy = DefaultStrategy
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = DefaultCacheTTL
	}
}

// FileTimeoutDuration returns the file snapshot timeout as a time.Duration.
func (c *SnapshotConfig) FileTimeoutDuration() time.Duration {
	return parseDuration(c.FileTimeout, DefaultFileTimeout)
}

// URLTimeoutDuration returns the URL snapshot timeout as a time.Duration.
func (c *SnapshotConfig) URLTimeoutDuration() time.Duration {
	return parseDuration(c.URLTimeout, DefaultURLTimeout)
}

// TimeoutDuration returns the fetch timeout as a time.Duration.
func (c *FetchConfig) TimeoutDuration() time.Duration {
	return parseDuration(c.Timeout, DefaultFetchTime)
}

// TTLDuration returns the cache TTL as a time.Duration.
func (c *CacheConfig) TTLDuration() time.Duration {
	return parseDuration(c.TTL, DefaultCacheTTL)
}

func parseDuration(value, fallback string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}

package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tokenscope/tokenscope/internal/config"
	"github.com/tokenscope/tokenscope/internal/errors"
)

// Cache manages locally cached page fetches.
type Cache struct {
	paths *config.Paths
}

// New creates a cache manager.
func New(paths *config.Paths) *Cache {
	return &Cache{paths: paths}
}

// key derives a stable filename stem for a URL.
func key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum[:8])
}

func (c *Cache) contentPath(url string) string {
	return filepath.Join(c.paths.CacheDir, key(url)+".html")
}

func (c *Cache) metaPath(url string) string {
	return filepath.Join(c.paths.CacheDir, key(url)+".meta.json")
}

// Read returns cached page content and metadata, or error if not cached.
func (c *Cache) Read(url string) (content string, meta *Metadata, err error) {
	contentBytes, err := os.ReadFile(c.contentPath(url))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, errors.CacheNotFound(url)
		}
		return "", nil, err
	}

	metaBytes, err := os.ReadFile(c.metaPath(url))
	if err != nil {
		// Content exists but metadata doesn't - treat as freshly fetched
		meta = &Metadata{URL: url, LastFetched: time.Now()}
	} else {
		meta = &Metadata{}
		if err := json.Unmarshal(metaBytes, meta); err != nil {
			meta = &Metadata{URL: url, LastFetched: time.Now()}
		}
	}

	return string(contentBytes), meta, nil
}

// Write stores page content and metadata.
func (c *Cache) Write(url, content string, meta *Metadata) error {
	if err := os.MkdirAll(c.paths.CacheDir, 0755); err != nil {
		return err
	}

	if meta == nil {
		meta = &Metadata{}
	}
	if meta.LastFetched.IsZero() {
		meta.LastFetched = time.Now()
	}
	meta.URL = url

	if err := os.WriteFile(c.contentPath(url), []byte(content), 0644); err != nil {
		return err
	}

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.metaPath(url), metaBytes, 0644)
}

// Exists checks if a cached fetch exists for a URL.
func (c *Cache) Exists(url string) bool {
	_, err := os.Stat(c.contentPath(url))
	return err == nil
}

// Clear removes the cached fetch for a URL.
// Returns nil even if files don't exist (idempotent operation).
func (c *Cache) Clear(url string) error {
	if err := os.Remove(c.contentPath(url)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cached content: %w", err)
	}
	if err := os.Remove(c.metaPath(url)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache metadata: %w", err)
	}
	return nil
}

// CacheDir returns the cache directory path.
func (c *Cache) CacheDir() string {
	return c.paths.CacheDir
}

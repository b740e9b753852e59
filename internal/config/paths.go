// Package config handles tokenscope configuration.
package config

import (
	"os"
	"path/filepath"
)

// Paths provides all tokenscope-related filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/tokenscope
	CacheDir   string // ~/.cache/tokenscope
	ConfigFile string // ~/.config/tokenscope/config.yaml
}

// NewPaths creates Paths using ~/.config and ~/.cache directories.
// We use these paths explicitly for cross-platform consistency rather than
// platform-specific defaults (like ~/Library/Application Support on macOS).
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	configDir := filepath.Join(home, ".config", "tokenscope")
	cacheDir := filepath.Join(home, ".cache", "tokenscope")

	return &Paths{
		ConfigDir:  configDir,
		CacheDir:   cacheDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

// NewPathsWithOverrides allows overriding directories for testing.
func NewPathsWithOverrides(configDir, cacheDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		CacheDir:   cacheDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

// Package config handles metastr configuration.
package config

import (
	"os"
	"path/filepath"
)

// Paths provides the metastr filesystem paths.
type Paths struct {
	ConfigDir  string // ~/.config/metastr
	ConfigFile string // ~/.config/metastr/config.yaml
}

// NewPaths creates Paths under ~/.config on every platform.
func NewPaths() *Paths {
	home := os.Getenv("HOME")
	return NewPathsWithOverrides(filepath.Join(home, ".config", "metastr"))
}

// NewPathsWithOverrides allows overriding the config directory for testing.
func NewPathsWithOverrides(configDir string) *Paths {
	return &Paths{
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, "config.yaml"),
	}
}

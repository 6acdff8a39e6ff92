// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding the local relnotes.toml
	globalConfDir string // Global config directory (e.g., ~/.config/relnotes)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration. The local file takes precedence over
// the global file, which takes precedence over defaults. Missing files are
// not an error.
func (l *Loader) Load() (*domain.Config, error) {
	var global *domain.Config
	if l.globalConfDir != "" {
		var err error
		global, err = l.loadFile(filepath.Join(l.globalConfDir, domain.GlobalConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	local, err := l.loadFile(filepath.Join(l.workDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}
	return base, nil
}

// loadFile parses a single TOML config file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from config dir conventions
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty override fields onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := *base
	result.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Linear.APIURL != "" {
		result.Linear.APIURL = override.Linear.APIURL
	}
	if override.Linear.WorkspaceURL != "" {
		result.Linear.WorkspaceURL = override.Linear.WorkspaceURL
	}
	if override.Notion.APIURL != "" {
		result.Notion.APIURL = override.Notion.APIURL
	}
	if override.Notion.DatabaseID != "" {
		result.Notion.DatabaseID = override.Notion.DatabaseID
	}
	if override.Notion.ParentPageID != "" {
		result.Notion.ParentPageID = override.Notion.ParentPageID
	}
	if override.Output.Dir != "" {
		result.Output.Dir = override.Output.Dir
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	return &result
}

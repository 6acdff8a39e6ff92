package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager creates and inspects configuration files.
type Manager struct {
	workDir       string
	globalConfDir string
}

// NewManager creates a new Manager.
func NewManager(workDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config
// directory. This is useful for testing.
func NewManagerWithGlobalDir(workDir, globalConfDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// LocalConfigInfo describes the working-directory config file.
func (m *Manager) LocalConfigInfo() domain.ConfigInfo {
	return configInfo(filepath.Join(m.workDir, domain.ConfigFileName))
}

// GlobalConfigInfo describes the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return configInfo(filepath.Join(m.globalConfDir, domain.GlobalConfigFileName))
}

// InitLocalConfig writes the config template to the working directory.
func (m *Manager) InitLocalConfig() error {
	return writeTemplate(m.LocalConfigInfo())
}

// InitGlobalConfig writes the config template to the global directory,
// creating the directory if needed.
func (m *Manager) InitGlobalConfig() error {
	info := m.GlobalConfigInfo()
	if info.Path == "" {
		return fmt.Errorf("global config directory could not be determined")
	}
	if err := os.MkdirAll(filepath.Dir(info.Path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return writeTemplate(info)
}

func configInfo(path string) domain.ConfigInfo {
	_, err := os.Stat(path)
	return domain.ConfigInfo{
		Path:   path,
		Exists: err == nil,
	}
}

func writeTemplate(info domain.ConfigInfo) error {
	if info.Exists {
		return fmt.Errorf("%s: %w", info.Path, domain.ErrConfigExists)
	}
	if err := os.WriteFile(info.Path, []byte(domain.ConfigTemplate()), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

package domain

import "path/filepath"

// File and directory names.
const (
	// ConfigFileName is the per-project config file, looked up in the
	// working directory.
	ConfigFileName = "relnotes.toml"

	// GlobalConfigDirName is the directory under XDG_CONFIG_HOME holding the
	// global config file.
	GlobalConfigDirName = "relnotes"

	// GlobalConfigFileName is the global config file name.
	GlobalConfigFileName = "config.toml"

	// IndexFileName is the release-store index file.
	IndexFileName = "index.yaml"

	// LogFileName is the application log file, written under the output dir.
	LogFileName = "relnotes.log"
)

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, GlobalConfigDirName)
}

// ChangelogFileName returns the file name a release is saved under.
func ChangelogFileName(version string) string {
	return "changelog-" + version + ".md"
}

// PageTitle returns the workspace page title for a release. Existing pages
// are located by exact title match, so this format is a contract.
func PageTitle(version string) string {
	return "Release Notes - " + version
}

package domain

import (
	_ "embed"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
type Config struct {
	Linear LinearConfig `toml:"linear"`
	Notion NotionConfig `toml:"notion"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`

	// Warnings collected while loading (not persisted).
	Warnings []string `toml:"-"`
}

// LinearConfig holds settings for the issue tracker from [linear].
// The API key is deliberately not configurable here; it comes from the
// LINEAR_API_KEY environment variable so secrets stay out of config files.
type LinearConfig struct {
	APIURL       string `toml:"api_url,omitempty"`       // GraphQL endpoint
	WorkspaceURL string `toml:"workspace_url,omitempty"` // Base URL for synthesized issue links
}

// NotionConfig holds settings for the document workspace from [notion].
// The token comes from the NOTION_TOKEN environment variable.
type NotionConfig struct {
	APIURL       string `toml:"api_url,omitempty"`        // REST endpoint
	DatabaseID   string `toml:"database_id,omitempty"`    // Database to upsert pages into
	ParentPageID string `toml:"parent_page_id,omitempty"` // Fallback parent page
}

// OutputConfig holds settings for local output from [output].
type OutputConfig struct {
	Dir string `toml:"dir,omitempty"` // Directory for changelog files (default: "releases")
}

// LogConfig holds logging settings from [log].
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error (default: "info")
}

// Default endpoints and paths.
const (
	DefaultLinearAPIURL     = "https://api.linear.app/graphql"
	DefaultLinearWorkspace  = "https://linear.app/your-workspace"
	DefaultNotionAPIURL     = "https://api.notion.com/v1"
	DefaultOutputDir        = "releases"
	DefaultLogLevel         = "info"
	DefaultNotionAPIVersion = "2022-06-28"
)

// NewDefaultConfig returns a Config populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Linear: LinearConfig{
			APIURL:       DefaultLinearAPIURL,
			WorkspaceURL: DefaultLinearWorkspace,
		},
		Notion: NotionConfig{
			APIURL: DefaultNotionAPIURL,
		},
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ConfigTemplate returns the commented config file template written by init.
func ConfigTemplate() string {
	return configTemplateContent
}

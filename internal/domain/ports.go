package domain

import (
	"context"
	"time"
)

// IssueTracker fetches issues and release metadata from the project tracker.
type IssueTracker interface {
	// IssuesByLabel retrieves top-level issues carrying the release label.
	IssuesByLabel(ctx context.Context, label string) ([]Issue, error)

	// IssuesByView retrieves issues belonging to a tracker view.
	IssuesByView(ctx context.Context, viewID string) ([]Issue, error)

	// ReleaseLabels retrieves release labels (X.Y.Z), newest version first.
	ReleaseLabels(ctx context.Context) ([]ReleaseLabel, error)

	// Teams retrieves the teams usable as views.
	Teams(ctx context.Context) ([]Team, error)
}

// PageDraft is the content of a release-notes page to publish.
// Fields are ordered to minimize memory padding.
type PageDraft struct {
	GeneratedAt time.Time
	Version     string
	Blocks      []Block
	Categories  []string // Page tags, from the document's H2 labels
}

// Publisher upserts release-notes pages into the document workspace.
type Publisher interface {
	// FindPage returns the ID of an existing page for the release version,
	// or "" if none exists.
	FindPage(ctx context.Context, version string) (string, error)

	// CreatePage creates a new page and returns its ID.
	CreatePage(ctx context.Context, draft PageDraft) (string, error)

	// UpdatePage replaces the content of an existing page.
	UpdatePage(ctx context.Context, pageID string, blocks []Block) error
}

// ReleaseRecord is one entry in the local release store index.
type ReleaseRecord struct {
	Version     string    `yaml:"version"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Path        string    `yaml:"path"`
	PageID      string    `yaml:"notion_page_id,omitempty"`
}

// ReleaseStore persists generated release notes locally.
type ReleaseStore interface {
	// Save writes the markdown to a changelog file and records it in the
	// index, replacing any existing entry for the version.
	Save(record ReleaseRecord, markdown string) (path string, err error)

	// History lists saved releases, newest version first.
	History() ([]ReleaseRecord, error)

	// SetPageID records the workspace page ID for a saved release.
	SetPageID(version, pageID string) error
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (global + working dir).
	Load() (*Config, error)
}

// ConfigInfo describes a config file location.
type ConfigInfo struct {
	Path   string
	Exists bool
}

// ConfigManager creates and inspects configuration files.
type ConfigManager interface {
	// LocalConfigInfo describes the working-directory config file.
	LocalConfigInfo() ConfigInfo

	// GlobalConfigInfo describes the global config file.
	GlobalConfigInfo() ConfigInfo

	// InitLocalConfig writes the config template to the working directory.
	// Fails with ErrConfigExists if the file already exists.
	InitLocalConfig() error

	// InitGlobalConfig writes the config template to the global directory.
	InitGlobalConfig() error
}

// Logger provides leveled, categorized logging.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides the current time. Use cases take it so output is
// reproducible in tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

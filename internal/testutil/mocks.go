// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIssueTracker is a test double for domain.IssueTracker.
// Fields are ordered to minimize memory padding.
type MockIssueTracker struct {
	Issues      []domain.Issue
	ViewIssues  map[string][]domain.Issue
	Labels      []domain.ReleaseLabel
	TeamList    []domain.Team
	Err         error
	LabelCalls  []string
	ViewCalls   []string
	LabelsCalls int
}

// NewMockIssueTracker creates a MockIssueTracker with initialized maps.
func NewMockIssueTracker() *MockIssueTracker {
	return &MockIssueTracker{
		ViewIssues: make(map[string][]domain.Issue),
	}
}

// IssuesByLabel returns the configured issues.
func (m *MockIssueTracker) IssuesByLabel(_ context.Context, label string) ([]domain.Issue, error) {
	m.LabelCalls = append(m.LabelCalls, label)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Issues, nil
}

// IssuesByView returns the issues configured for the view ID.
func (m *MockIssueTracker) IssuesByView(_ context.Context, viewID string) ([]domain.Issue, error) {
	m.ViewCalls = append(m.ViewCalls, viewID)
	if m.Err != nil {
		return nil, m.Err
	}
	issues, ok := m.ViewIssues[viewID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return issues, nil
}

// ReleaseLabels returns the configured labels.
func (m *MockIssueTracker) ReleaseLabels(_ context.Context) ([]domain.ReleaseLabel, error) {
	m.LabelsCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Labels, nil
}

// Teams returns the configured teams.
func (m *MockIssueTracker) Teams(_ context.Context) ([]domain.Team, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.TeamList, nil
}

// MockPublisher is a test double for domain.Publisher.
// Fields are ordered to minimize memory padding.
type MockPublisher struct {
	Pages        map[string]string // version -> page ID
	CreatedDraft *domain.PageDraft
	UpdatedID    string
	UpdatedWith  []domain.Block
	NewPageID    string
	FindErr      error
	CreateErr    error
	UpdateErr    error
}

// NewMockPublisher creates a MockPublisher with initialized maps.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		Pages:     make(map[string]string),
		NewPageID: "page-new",
	}
}

// FindPage returns the recorded page ID for the version, or "".
func (m *MockPublisher) FindPage(_ context.Context, version string) (string, error) {
	if m.FindErr != nil {
		return "", m.FindErr
	}
	return m.Pages[version], nil
}

// CreatePage records the draft and returns NewPageID.
func (m *MockPublisher) CreatePage(_ context.Context, draft domain.PageDraft) (string, error) {
	if m.CreateErr != nil {
		return "", m.CreateErr
	}
	m.CreatedDraft = &draft
	m.Pages[draft.Version] = m.NewPageID
	return m.NewPageID, nil
}

// UpdatePage records the update.
func (m *MockPublisher) UpdatePage(_ context.Context, pageID string, blocks []domain.Block) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdatedID = pageID
	m.UpdatedWith = blocks
	return nil
}

// MockReleaseStore is a test double for domain.ReleaseStore.
// Fields are ordered to minimize memory padding.
type MockReleaseStore struct {
	Saved   map[string]string // version -> markdown
	Records []domain.ReleaseRecord
	PageIDs map[string]string
	SaveErr error
}

// NewMockReleaseStore creates a MockReleaseStore with initialized maps.
func NewMockReleaseStore() *MockReleaseStore {
	return &MockReleaseStore{
		Saved:   make(map[string]string),
		PageIDs: make(map[string]string),
	}
}

// Save records the markdown for the version.
func (m *MockReleaseStore) Save(record domain.ReleaseRecord, markdown string) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}
	m.Saved[record.Version] = markdown
	record.Path = "releases/" + domain.ChangelogFileName(record.Version)
	m.Records = append(m.Records, record)
	return record.Path, nil
}

// History returns the recorded releases.
func (m *MockReleaseStore) History() ([]domain.ReleaseRecord, error) {
	return m.Records, nil
}

// SetPageID records the page ID for the version.
func (m *MockReleaseStore) SetPageID(version, pageID string) error {
	m.PageIDs[version] = pageID
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config != nil {
		return m.Config, nil
	}
	return domain.NewDefaultConfig(), nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	Local       domain.ConfigInfo
	Global      domain.ConfigInfo
	InitLocals  int
	InitGlobals int
	InitErr     error
}

// LocalConfigInfo returns the configured local info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.Local
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// InitLocalConfig records the call.
func (m *MockConfigManager) InitLocalConfig() error {
	m.InitLocals++
	return m.InitErr
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig() error {
	m.InitGlobals++
	return m.InitErr
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

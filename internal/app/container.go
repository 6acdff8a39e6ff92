// Package app provides the dependency injection container for the application.
package app

import (
	"os"

	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/infra/config"
	"github.com/arun-karra/release-notes/internal/infra/filestore"
	"github.com/arun-karra/release-notes/internal/infra/linear"
	"github.com/arun-karra/release-notes/internal/infra/logging"
	"github.com/arun-karra/release-notes/internal/infra/notion"
	"github.com/arun-karra/release-notes/internal/usecase"
)

// Environment variables holding API secrets. Secrets never live in config
// files.
const (
	LinearAPIKeyEnv = "LINEAR_API_KEY"
	NotionTokenEnv  = "NOTION_TOKEN"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.ReleaseStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Clock         domain.Clock
	Logger        domain.Logger

	// Domain services
	Classifier *domain.Classifier
	Renderer   *domain.NotesRenderer

	// Resolved configuration
	Config *domain.Config
}

// New creates a new Container rooted at the given working directory.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	classifier := domain.NewClassifier()

	return &Container{
		Store:         filestore.New(cfg.Output.Dir),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Clock:         domain.RealClock{},
		Logger:        logging.New(cfg.Output.Dir, logging.ParseLevel(cfg.Log.Level)),
		Classifier:    classifier,
		Renderer:      domain.NewNotesRenderer(classifier, cfg.Linear.WorkspaceURL),
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.ReleaseStore, loader domain.ConfigLoader, manager domain.ConfigManager, clock domain.Clock, logger domain.Logger) *Container {
	classifier := domain.NewClassifier()
	return &Container{
		Store:         store,
		ConfigLoader:  loader,
		ConfigManager: manager,
		Clock:         clock,
		Logger:        logger,
		Classifier:    classifier,
		Renderer:      domain.NewNotesRenderer(classifier, cfg.Linear.WorkspaceURL),
		Config:        cfg,
	}
}

// Tracker returns the issue tracker client. It fails when the Linear API key
// is not present in the environment, so commands that never talk to the
// tracker keep working without credentials.
func (c *Container) Tracker() (domain.IssueTracker, error) {
	apiKey := os.Getenv(LinearAPIKeyEnv)
	if apiKey == "" {
		return nil, domain.ErrNoLinearAPIKey
	}
	return linear.NewClient(c.Config.Linear.APIURL, apiKey), nil
}

// Publisher returns the document workspace client. It fails when the Notion
// token is not present in the environment.
func (c *Container) Publisher() (domain.Publisher, error) {
	token := os.Getenv(NotionTokenEnv)
	if token == "" {
		return nil, domain.ErrNoNotionToken
	}
	return notion.NewClient(c.Config.Notion.APIURL, token, c.Config.Notion.DatabaseID, c.Config.Notion.ParentPageID), nil
}

// UseCase factory methods

// GenerateNotesUseCase returns a new GenerateNotes use case.
func (c *Container) GenerateNotesUseCase() (*usecase.GenerateNotes, error) {
	tracker, err := c.Tracker()
	if err != nil {
		return nil, err
	}
	return usecase.NewGenerateNotes(tracker, c.Classifier, c.Renderer, c.Clock, c.Logger), nil
}

// PublishNotesUseCase returns a new PublishNotes use case.
func (c *Container) PublishNotesUseCase() (*usecase.PublishNotes, error) {
	publisher, err := c.Publisher()
	if err != nil {
		return nil, err
	}
	return usecase.NewPublishNotes(publisher, c.Store, c.Logger), nil
}

// SaveNotesUseCase returns a new SaveNotes use case.
func (c *Container) SaveNotesUseCase() *usecase.SaveNotes {
	return usecase.NewSaveNotes(c.Store, c.Logger)
}

// ListLabelsUseCase returns a new ListLabels use case.
func (c *Container) ListLabelsUseCase() (*usecase.ListLabels, error) {
	tracker, err := c.Tracker()
	if err != nil {
		return nil, err
	}
	return usecase.NewListLabels(tracker, c.Logger), nil
}

// ListViewsUseCase returns a new ListViews use case.
func (c *Container) ListViewsUseCase() (*usecase.ListViews, error) {
	tracker, err := c.Tracker()
	if err != nil {
		return nil, err
	}
	return usecase.NewListViews(tracker, c.Logger), nil
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.Store)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigManager)
}

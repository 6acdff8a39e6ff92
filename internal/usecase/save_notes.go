package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// SaveNotesInput contains the parameters for saving release notes locally.
type SaveNotesInput struct {
	GeneratedAt time.Time
	Version     string
	Markdown    string
}

// SaveNotesOutput contains the result of saving.
type SaveNotesOutput struct {
	Path string // Path of the written changelog file
}

// SaveNotes writes generated notes to the local release store.
type SaveNotes struct {
	store  domain.ReleaseStore
	logger domain.Logger
}

// NewSaveNotes creates a new SaveNotes use case.
func NewSaveNotes(store domain.ReleaseStore, logger domain.Logger) *SaveNotes {
	return &SaveNotes{
		store:  store,
		logger: logger,
	}
}

// Execute saves the markdown as changelog-<version>.md.
func (uc *SaveNotes) Execute(_ context.Context, in SaveNotesInput) (*SaveNotesOutput, error) {
	path, err := uc.store.Save(domain.ReleaseRecord{
		Version:     in.Version,
		GeneratedAt: in.GeneratedAt,
	}, in.Markdown)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("save", fmt.Sprintf("release notes saved to %s", path))
	return &SaveNotesOutput{Path: path}, nil
}

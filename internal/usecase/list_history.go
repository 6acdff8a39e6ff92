package usecase

import (
	"context"

	"github.com/arun-karra/release-notes/internal/domain"
)

// ListHistoryOutput contains the locally saved releases.
type ListHistoryOutput struct {
	Records []domain.ReleaseRecord // Newest version first
}

// ListHistory is the use case for listing saved release notes.
type ListHistory struct {
	store domain.ReleaseStore
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(store domain.ReleaseStore) *ListHistory {
	return &ListHistory{store: store}
}

// Execute lists the releases recorded in the local store.
func (uc *ListHistory) Execute(_ context.Context) (*ListHistoryOutput, error) {
	records, err := uc.store.History()
	if err != nil {
		return nil, err
	}
	return &ListHistoryOutput{Records: records}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/arun-karra/release-notes/internal/domain"
)

// ListLabelsOutput contains the release labels known to the tracker.
type ListLabelsOutput struct {
	Labels []domain.ReleaseLabel // Newest version first
}

// ListLabels is the use case for listing release labels.
type ListLabels struct {
	tracker domain.IssueTracker
	logger  domain.Logger
}

// NewListLabels creates a new ListLabels use case.
func NewListLabels(tracker domain.IssueTracker, logger domain.Logger) *ListLabels {
	return &ListLabels{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute fetches the release labels from the tracker.
func (uc *ListLabels) Execute(ctx context.Context) (*ListLabelsOutput, error) {
	labels, err := uc.tracker.ReleaseLabels(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("labels", fmt.Sprintf("fetched %d release labels", len(labels)))
	return &ListLabelsOutput{Labels: labels}, nil
}

package usecase

import (
	"context"
	"fmt"

	"github.com/arun-karra/release-notes/internal/domain"
)

// ListViewsOutput contains the teams usable as issue views.
type ListViewsOutput struct {
	Teams []domain.Team
}

// ListViews is the use case for listing tracker teams.
type ListViews struct {
	tracker domain.IssueTracker
	logger  domain.Logger
}

// NewListViews creates a new ListViews use case.
func NewListViews(tracker domain.IssueTracker, logger domain.Logger) *ListViews {
	return &ListViews{
		tracker: tracker,
		logger:  logger,
	}
}

// Execute fetches the teams from the tracker.
func (uc *ListViews) Execute(ctx context.Context) (*ListViewsOutput, error) {
	teams, err := uc.tracker.Teams(ctx)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("views", fmt.Sprintf("fetched %d teams", len(teams)))
	return &ListViewsOutput{Teams: teams}, nil
}

// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// GenerateNotesInput contains the parameters for generating release notes.
type GenerateNotesInput struct {
	Label   string // Release label to fetch issues by (also the version)
	ViewID  string // Tracker view to fetch issues from instead of a label
	Version string // Version override for the document title (defaults to Label)
}

// GenerateNotesOutput contains the generated document.
// Fields are ordered to minimize memory padding.
type GenerateNotesOutput struct {
	GeneratedAt  time.Time
	Markdown     string
	Version      string
	IssueCount   int // Issues fetched from the tracker
	SkippedCount int // Issues dropped for excluded lifecycle states
}

// GenerateNotes is the use case for generating release-notes markdown.
type GenerateNotes struct {
	tracker    domain.IssueTracker
	classifier *domain.Classifier
	renderer   *domain.NotesRenderer
	clock      domain.Clock
	logger     domain.Logger
}

// NewGenerateNotes creates a new GenerateNotes use case.
func NewGenerateNotes(tracker domain.IssueTracker, classifier *domain.Classifier, renderer *domain.NotesRenderer, clock domain.Clock, logger domain.Logger) *GenerateNotes {
	return &GenerateNotes{
		tracker:    tracker,
		classifier: classifier,
		renderer:   renderer,
		clock:      clock,
		logger:     logger,
	}
}

// Execute fetches issues and renders the release notes.
func (uc *GenerateNotes) Execute(ctx context.Context, in GenerateNotesInput) (*GenerateNotesOutput, error) {
	version := in.Version
	if version == "" {
		version = in.Label
	}

	var issues []domain.Issue
	var err error
	switch {
	case in.Label != "":
		issues, err = uc.tracker.IssuesByLabel(ctx, in.Label)
	case in.ViewID != "":
		if version == "" {
			return nil, domain.ErrEmptyVersion
		}
		issues, err = uc.tracker.IssuesByView(ctx, in.ViewID)
	default:
		return nil, domain.ErrNoReleaseSource
	}
	if err != nil {
		return nil, err
	}

	skipped := 0
	for _, issue := range issues {
		if uc.classifier.IsExcluded(issue) {
			skipped++
		}
	}

	generatedAt := uc.clock.Now()
	markdown := uc.renderer.Render(issues, version, generatedAt)

	uc.logger.Info("generate", fmt.Sprintf("rendered %d issues for %s (%d excluded)", len(issues)-skipped, version, skipped))

	return &GenerateNotesOutput{
		GeneratedAt:  generatedAt,
		Markdown:     markdown,
		Version:      version,
		IssueCount:   len(issues),
		SkippedCount: skipped,
	}, nil
}

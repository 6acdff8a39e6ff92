package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
)

// PublishNotesInput contains the parameters for publishing release notes.
type PublishNotesInput struct {
	GeneratedAt time.Time // Timestamp recorded on the page
	Version     string
	Markdown    string
}

// PublishNotesOutput contains the result of publishing.
type PublishNotesOutput struct {
	PageID  string
	Created bool // true if a new page was created, false if updated
}

// PublishNotes converts rendered markdown into blocks and upserts a page in
// the document workspace. An existing page for the version is updated in
// place, so republishing a regenerated release is idempotent.
type PublishNotes struct {
	publisher domain.Publisher
	store     domain.ReleaseStore // optional; records the page ID when set
	logger    domain.Logger
}

// NewPublishNotes creates a new PublishNotes use case. store may be nil.
func NewPublishNotes(publisher domain.Publisher, store domain.ReleaseStore, logger domain.Logger) *PublishNotes {
	return &PublishNotes{
		publisher: publisher,
		store:     store,
		logger:    logger,
	}
}

// Execute publishes the markdown as a structured-block page.
func (uc *PublishNotes) Execute(ctx context.Context, in PublishNotesInput) (*PublishNotesOutput, error) {
	if in.Version == "" {
		return nil, domain.ErrEmptyVersion
	}
	if in.Markdown == "" {
		return nil, domain.ErrEmptyMarkdown
	}

	blocks := domain.ToBlocks(in.Markdown)

	pageID, err := uc.publisher.FindPage(ctx, in.Version)
	if err != nil {
		return nil, err
	}

	if pageID != "" {
		if err := uc.publisher.UpdatePage(ctx, pageID, blocks); err != nil {
			return nil, err
		}
		uc.logger.Info("publish", fmt.Sprintf("updated page %s for %s", pageID, in.Version))
		uc.recordPageID(in.Version, pageID)
		return &PublishNotesOutput{PageID: pageID, Created: false}, nil
	}

	draft := domain.PageDraft{
		GeneratedAt: in.GeneratedAt,
		Version:     in.Version,
		Blocks:      blocks,
		Categories:  domain.ExtractCategories(in.Markdown),
	}
	pageID, err = uc.publisher.CreatePage(ctx, draft)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("publish", fmt.Sprintf("created page %s for %s", pageID, in.Version))
	uc.recordPageID(in.Version, pageID)
	return &PublishNotesOutput{PageID: pageID, Created: true}, nil
}

// recordPageID stores the page ID when a release store is configured. A
// release that was never saved locally is not an error.
func (uc *PublishNotes) recordPageID(version, pageID string) {
	if uc.store == nil {
		return
	}
	if err := uc.store.SetPageID(version, pageID); err != nil {
		uc.logger.Debug("publish", fmt.Sprintf("page ID not recorded: %v", err))
	}
}

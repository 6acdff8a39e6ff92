package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const publishMarkdown = "# 🚀 Release Notes - 106.5.0\n\n## 🐛 Bug Fixes\n\n- ✅ **Fix login bug** ([GP-1](https://x/GP-1))\n"

func TestPublishNotes_Execute_CreatesNewPage(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	store := testutil.NewMockReleaseStore()
	uc := NewPublishNotes(publisher, store, testutil.NopLogger{})

	generatedAt := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	out, err := uc.Execute(context.Background(), PublishNotesInput{
		GeneratedAt: generatedAt,
		Version:     "106.5.0",
		Markdown:    publishMarkdown,
	})
	require.NoError(t, err)

	assert.True(t, out.Created)
	assert.Equal(t, "page-new", out.PageID)

	require.NotNil(t, publisher.CreatedDraft)
	assert.Equal(t, "106.5.0", publisher.CreatedDraft.Version)
	assert.Equal(t, generatedAt, publisher.CreatedDraft.GeneratedAt)
	assert.Equal(t, []string{"Bug Fixes"}, publisher.CreatedDraft.Categories)

	// The draft carries the converted blocks: H1, H2, bullet.
	require.Len(t, publisher.CreatedDraft.Blocks, 3)
	assert.Equal(t, domain.BlockHeading1, publisher.CreatedDraft.Blocks[0].Type)
	assert.Equal(t, domain.BlockHeading2, publisher.CreatedDraft.Blocks[1].Type)
	assert.Equal(t, domain.BlockBulletItem, publisher.CreatedDraft.Blocks[2].Type)

	assert.Equal(t, "page-new", store.PageIDs["106.5.0"])
}

func TestPublishNotes_Execute_UpdatesExistingPage(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	publisher.Pages["106.5.0"] = "page-42"
	uc := NewPublishNotes(publisher, nil, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), PublishNotesInput{
		Version:  "106.5.0",
		Markdown: publishMarkdown,
	})
	require.NoError(t, err)

	assert.False(t, out.Created)
	assert.Equal(t, "page-42", out.PageID)
	assert.Equal(t, "page-42", publisher.UpdatedID)
	require.Len(t, publisher.UpdatedWith, 3)
	assert.Nil(t, publisher.CreatedDraft)
}

func TestPublishNotes_Execute_Validation(t *testing.T) {
	uc := NewPublishNotes(testutil.NewMockPublisher(), nil, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), PublishNotesInput{Markdown: "x"})
	assert.ErrorIs(t, err, domain.ErrEmptyVersion)

	_, err = uc.Execute(context.Background(), PublishNotesInput{Version: "1.0.0"})
	assert.ErrorIs(t, err, domain.ErrEmptyMarkdown)
}

func TestPublishNotes_Execute_PublisherError(t *testing.T) {
	publisher := testutil.NewMockPublisher()
	publisher.FindErr = domain.ErrAuthentication
	uc := NewPublishNotes(publisher, nil, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), PublishNotesInput{Version: "1.0.0", Markdown: "x"})
	assert.ErrorIs(t, err, domain.ErrAuthentication)
}

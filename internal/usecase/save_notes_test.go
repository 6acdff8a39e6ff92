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

func TestSaveNotes_Execute(t *testing.T) {
	store := testutil.NewMockReleaseStore()
	uc := NewSaveNotes(store, testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), SaveNotesInput{
		GeneratedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		Version:     "106.5.0",
		Markdown:    "# notes\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "releases/changelog-106.5.0.md", out.Path)
	assert.Equal(t, "# notes\n", store.Saved["106.5.0"])
}

func TestSaveNotes_Execute_StoreError(t *testing.T) {
	store := testutil.NewMockReleaseStore()
	store.SaveErr = domain.ErrEmptyVersion
	uc := NewSaveNotes(store, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), SaveNotesInput{Markdown: "x"})
	assert.ErrorIs(t, err, domain.ErrEmptyVersion)
}

package filestore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndHistory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "releases")
	store := New(dir)

	_, err := store.Save(domain.ReleaseRecord{
		Version:     "106.4.0",
		GeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, "# old notes\n")
	require.NoError(t, err)

	path, err := store.Save(domain.ReleaseRecord{
		Version:     "106.5.0",
		GeneratedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}, "# new notes\n")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "changelog-106.5.0.md"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# new notes\n", string(data))

	records, err := store.History()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "106.5.0", records[0].Version)
	assert.Equal(t, "106.4.0", records[1].Version)
}

func TestStore_Save_ReplacesExistingVersion(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Save(domain.ReleaseRecord{Version: "1.0.0"}, "first\n")
	require.NoError(t, err)
	require.NoError(t, store.SetPageID("1.0.0", "page-1"))

	_, err = store.Save(domain.ReleaseRecord{Version: "1.0.0"}, "second\n")
	require.NoError(t, err)

	records, err := store.History()
	require.NoError(t, err)
	require.Len(t, records, 1)
	// Regenerating keeps the recorded page ID.
	assert.Equal(t, "page-1", records[0].PageID)
}

func TestStore_Save_Validation(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Save(domain.ReleaseRecord{}, "notes")
	assert.ErrorIs(t, err, domain.ErrEmptyVersion)

	_, err = store.Save(domain.ReleaseRecord{Version: "1.0.0"}, "")
	assert.ErrorIs(t, err, domain.ErrEmptyMarkdown)
}

func TestStore_SetPageID_UnknownVersion(t *testing.T) {
	store := New(t.TempDir())

	err := store.SetPageID("9.9.9", "page-1")
	assert.ErrorIs(t, err, domain.ErrReleaseNotFound)
}

func TestStore_History_EmptyDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing"))

	records, err := store.History()
	require.NoError(t, err)
	assert.Empty(t, records)
}

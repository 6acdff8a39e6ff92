// Package filestore provides a file-based implementation of ReleaseStore.
// Changelog files live next to an index.yaml that records what was generated
// and where it was published.
package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Ensure Store implements domain.ReleaseStore.
var _ domain.ReleaseStore = (*Store)(nil)

// indexData is the index.yaml structure.
type indexData struct {
	Releases []domain.ReleaseRecord `yaml:"releases"`
}

// Store persists release notes under a single directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the markdown to changelog-<version>.md and upserts the index
// entry for the version.
func (s *Store) Save(record domain.ReleaseRecord, markdown string) (string, error) {
	if record.Version == "" {
		return "", domain.ErrEmptyVersion
	}
	if markdown == "" {
		return "", domain.ErrEmptyMarkdown
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create releases directory: %w", err)
	}

	path := filepath.Join(s.dir, domain.ChangelogFileName(record.Version))
	if err := os.WriteFile(path, []byte(markdown), 0o640); err != nil { //nolint:gosec // Changelogs are shared artifacts
		return "", fmt.Errorf("write changelog: %w", err)
	}

	record.Path = path
	if err := s.updateIndex(func(idx *indexData) {
		for i, r := range idx.Releases {
			if r.Version == record.Version {
				if record.PageID == "" {
					record.PageID = r.PageID
				}
				idx.Releases[i] = record
				return
			}
		}
		idx.Releases = append(idx.Releases, record)
	}); err != nil {
		return "", err
	}
	return path, nil
}

// History lists saved releases, newest version first.
func (s *Store) History() ([]domain.ReleaseRecord, error) {
	idx, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	labels := make([]domain.ReleaseLabel, 0, len(idx.Releases))
	byVersion := make(map[string]domain.ReleaseRecord, len(idx.Releases))
	for _, r := range idx.Releases {
		labels = append(labels, domain.ReleaseLabel{Name: r.Version})
		byVersion[r.Version] = r
	}
	domain.SortReleaseLabels(labels)

	records := make([]domain.ReleaseRecord, 0, len(labels))
	for _, l := range labels {
		records = append(records, byVersion[l.Name])
	}
	return records, nil
}

// SetPageID records the workspace page ID for a saved release.
func (s *Store) SetPageID(version, pageID string) error {
	found := false
	err := s.updateIndex(func(idx *indexData) {
		for i, r := range idx.Releases {
			if r.Version == version {
				idx.Releases[i].PageID = pageID
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("release %s: %w", version, domain.ErrReleaseNotFound)
	}
	return nil
}

// readIndex loads index.yaml; a missing file is an empty index.
func (s *Store) readIndex() (*indexData, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, domain.IndexFileName)) //nolint:gosec // Store-owned path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &indexData{}, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}

	var idx indexData
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	return &idx, nil
}

// updateIndex applies fn to the index and writes it back.
func (s *Store) updateIndex(fn func(*indexData)) error {
	idx, err := s.readIndex()
	if err != nil {
		return err
	}
	fn(idx)

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create releases directory: %w", err)
	}
	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, domain.IndexFileName), data, 0o640); err != nil { //nolint:gosec // Shared artifact
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

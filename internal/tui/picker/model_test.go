package picker

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arun-karra/release-notes/internal/domain"
	"github.com/arun-karra/release-notes/internal/testutil"
)

func labelsLoaded(names ...string) MsgLabelsLoaded {
	labels := make([]domain.ReleaseLabel, 0, len(names))
	for i, name := range names {
		labels = append(labels, domain.ReleaseLabel{
			Name:      name,
			CreatedAt: time.Date(2026, 1, 10-i, 0, 0, 0, 0, time.UTC),
		})
	}
	return MsgLabelsLoaded{Labels: labels}
}

func TestModelStartsLoading(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())
	if !m.loading {
		t.Fatalf("expected model to start in loading state")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Fatalf("expected loading view, got %q", m.View())
	}
}

func TestModelShowsLabelsAfterLoad(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())

	updated, _ := m.Update(labelsLoaded("106.5.0", "106.4.0"))
	model, ok := updated.(*Model)
	if !ok {
		t.Fatalf("expected *Model from Update")
	}

	if model.loading {
		t.Fatalf("expected loading to be done")
	}
	view := model.View()
	if !strings.Contains(view, "106.5.0") || !strings.Contains(view, "106.4.0") {
		t.Fatalf("expected labels in view, got %q", view)
	}
}

func TestModelCursorMovement(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())
	m.Update(labelsLoaded("106.5.0", "106.4.0", "106.3.0"))

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}

	// Does not run past the end
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", m.cursor)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
}

func TestModelEnterSelectsLabel(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())
	m.Update(labelsLoaded("106.5.0", "106.4.0"))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected quit command after selection")
	}
	if m.Choice() != "106.4.0" {
		t.Fatalf("expected choice 106.4.0, got %q", m.Choice())
	}
}

func TestModelEnterIgnoredWhileLoading(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected enter to be ignored while loading")
	}
	if m.Choice() != "" {
		t.Fatalf("expected no choice, got %q", m.Choice())
	}
}

func TestModelQuitClearsChoice(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())
	m.Update(labelsLoaded("106.5.0"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.Choice() != "" {
		t.Fatalf("expected empty choice on quit, got %q", m.Choice())
	}
}

func TestModelShowsLoadError(t *testing.T) {
	m := New(testutil.NewMockIssueTracker())

	m.Update(MsgLabelsLoaded{Err: errors.New("boom")})
	if !strings.Contains(m.View(), "boom") {
		t.Fatalf("expected error in view, got %q", m.View())
	}
	if m.Err() == nil {
		t.Fatalf("expected Err to be set")
	}
}

// Package picker provides the interactive release picker TUI.
package picker

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arun-karra/release-notes/internal/domain"
)

// Model is the release picker TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	tracker domain.IssueTracker

	// State
	labels []domain.ReleaseLabel
	choice string
	err    error

	// Components
	keys   KeyMap
	styles Styles

	// Numeric state
	cursor int
	width  int
	height int

	// Boolean state
	loading bool
}

// New creates a new release picker model.
func New(tracker domain.IssueTracker) *Model {
	return &Model{
		tracker: tracker,
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
		loading: true,
	}
}

// Choice returns the selected release label, or "" if none was selected.
func (m *Model) Choice() string {
	return m.choice
}

// Err returns the load error, if any.
func (m *Model) Err() error {
	return m.err
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return m.loadLabels()
}

// loadLabels fetches release labels from the tracker.
func (m *Model) loadLabels() tea.Cmd {
	return func() tea.Msg {
		labels, err := m.tracker.ReleaseLabels(context.Background())
		return MsgLabelsLoaded{Labels: labels, Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgLabelsLoaded:
		m.loading = false
		m.err = msg.Err
		m.labels = msg.Labels
		if m.cursor >= len(m.labels) {
			m.cursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ""
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.labels)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.err = nil
			return m, m.loadLabels()
		case key.Matches(msg, m.keys.Enter):
			if !m.loading && m.err == nil && len(m.labels) > 0 {
				m.choice = m.labels[m.cursor].Name
				return m, tea.Quit
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the picker.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Select a release"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.styles.Loading.Render("Loading release labels..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case len(m.labels) == 0:
		b.WriteString(m.styles.Normal.Render("No release labels found"))
		b.WriteString("\n")
	default:
		for i, label := range m.labels {
			line := fmt.Sprintf("%s  %s", label.Name, m.styles.Date.Render(label.CreatedAt.Format("2006-01-02")))
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render(line))
			} else {
				b.WriteString(m.styles.Normal.Render(line))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(m.styles.Help.Render("↑/k up • ↓/j down • enter select • r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}

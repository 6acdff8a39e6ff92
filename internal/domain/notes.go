package domain

import (
	"strings"
	"time"
)

// NoIssuesMessage is returned when a release has no issues. It is a terminal
// result, not an error.
const NoIssuesMessage = "No issues found for this release."

// renderedEntry is a single bullet line, built once per issue.
// Fields are ordered to minimize memory padding.
type renderedEntry struct {
	Title      string
	Identifier string
	URL        string
	Domain     string
	Glyph      string
}

// NotesRenderer renders categorized issues into a markdown document.
// The output format is a stable contract: persisted changelog files and
// published pages are rebuilt from it byte for byte.
type NotesRenderer struct {
	classifier   *Classifier
	workspaceURL string
}

// NewNotesRenderer creates a NotesRenderer. workspaceURL is used to synthesize
// issue URLs when the tracker did not supply one.
func NewNotesRenderer(classifier *Classifier, workspaceURL string) *NotesRenderer {
	return &NotesRenderer{
		classifier:   classifier,
		workspaceURL: workspaceURL,
	}
}

// Render produces the release-notes markdown for the given issues.
// Excluded issues are dropped; the rest are grouped by category in the fixed
// category order, keeping input order within each category.
func (r *NotesRenderer) Render(issues []Issue, version string, generatedAt time.Time) string {
	if len(issues) == 0 {
		return NoIssuesMessage
	}

	buckets := make(map[Category][]renderedEntry, len(Categories()))
	for _, c := range Categories() {
		buckets[c] = []renderedEntry{}
	}

	for _, issue := range issues {
		if r.classifier.IsExcluded(issue) {
			continue
		}
		category := r.classifier.Category(issue)
		buckets[category] = append(buckets[category], renderedEntry{
			Title:      issue.Title,
			Identifier: issue.Identifier,
			URL:        r.resolveURL(issue),
			Domain:     r.classifier.Domain(issue),
			Glyph:      r.classifier.StatusGlyph(issue),
		})
	}

	var b strings.Builder
	b.WriteString("# 🚀 Release Notes - " + version + "\n\n")
	b.WriteString("*Generated on " + generatedAt.Format("2006-01-02 15:04:05") + "*\n\n")

	for _, category := range Categories() {
		entries := buckets[category]
		if len(entries) == 0 {
			continue
		}
		b.WriteString("## " + string(category) + "\n\n")
		for _, e := range entries {
			b.WriteString("- " + e.Glyph + " **" + e.Title + "** ([" + e.Identifier + "](" + e.URL + "))")
			if e.Domain != "" {
				b.WriteString(" [" + e.Domain + "]")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// resolveURL returns the issue's own URL, falling back to a workspace URL
// constructed from the identifier.
func (r *NotesRenderer) resolveURL(issue Issue) string {
	if issue.URL != "" {
		return issue.URL
	}
	return r.workspaceURL + "/issue/" + issue.Identifier
}

package domain

// Category is a release-notes section an issue is grouped under.
type Category string

// Fixed category set. Rendering order equals declaration order.
const (
	CategoryBugFixes      Category = "🐛 Bug Fixes"
	CategoryNewFeatures   Category = "✨ New Features"
	CategoryImprovements  Category = "⚡ Improvements"
	CategoryDocumentation Category = "📚 Documentation"
	CategoryRefactoring   Category = "🔧 Refactoring"
	CategoryPerformance   Category = "🚀 Performance Improvements"
	CategoryOther         Category = "Other Changes"
)

// Categories returns all categories in rendering order.
func Categories() []Category {
	return []Category{
		CategoryBugFixes,
		CategoryNewFeatures,
		CategoryImprovements,
		CategoryDocumentation,
		CategoryRefactoring,
		CategoryPerformance,
		CategoryOther,
	}
}

// categoryRule maps a tracker label to a category.
type categoryRule struct {
	Label    string
	Category Category
}

// Classifier assigns categories, domain areas and status glyphs to issues.
// The tables are fixed at construction; classification never fails, absent
// matches degrade to the zero value.
type Classifier struct {
	categories []categoryRule      // first match wins, scanned in order
	domains    []string            // first match wins, scanned in order
	glyphs     map[string]string   // state name -> glyph
	excluded   map[string]struct{} // state names dropped from output
}

// NewClassifier creates a Classifier with the default tables.
func NewClassifier() *Classifier {
	return &Classifier{
		categories: []categoryRule{
			{Label: "Bug", Category: CategoryBugFixes},
			{Label: "Feature", Category: CategoryNewFeatures},
			{Label: "Improvement", Category: CategoryImprovements},
			{Label: "Documentation", Category: CategoryDocumentation},
			{Label: "Refactor", Category: CategoryRefactoring},
			{Label: "Performance", Category: CategoryPerformance},
		},
		domains: []string{
			"Activity", "Administration", "Assets", "End of Trial", "Forms",
			"Manage Area", "Media Player", "Notifications", "Permissions",
			"Reporting", "Study Events / Visit", "Study Procedures / Assessment",
			"Subjects", "Trial Configuration", "Uploader",
		},
		glyphs: map[string]string{
			"Completed":         "✅",
			"Done":              "✅",
			"Fixed":             "✅",
			"Resolved":          "✅",
			"Started":           "🔶",
			"In Progress":       "🔶",
			"Code Review":       "🔶",
			"Ready for Product": "🔍",
			"Product Review":    "🔍",
			"Ready for Testing": "🔍",
			"Testing":           "🔍",
			"Backlog":           "◻️",
			"Unstarted":         "◻️",
			"Todo":              "◻️",
		},
		excluded: map[string]struct{}{
			"Canceled":  {},
			"Cancelled": {},
			"Duplicate": {},
		},
	}
}

// Category returns the category for the issue. The rule table is scanned in
// declaration order so the result does not depend on label-set ordering;
// unmatched issues fall into CategoryOther.
func (c *Classifier) Category(issue Issue) Category {
	for _, rule := range c.categories {
		if issue.HasLabel(rule.Label) {
			return rule.Category
		}
	}
	return CategoryOther
}

// Domain returns the issue's domain area, or "" if no domain label is present.
func (c *Classifier) Domain(issue Issue) string {
	for _, d := range c.domains {
		if issue.HasLabel(d) {
			return d
		}
	}
	return ""
}

// StatusGlyph returns the glyph for the issue's lifecycle state, or "" if the
// state has no glyph. An unknown state is not an error.
func (c *Classifier) StatusGlyph(issue Issue) string {
	return c.glyphs[issue.State]
}

// IsExcluded returns true if the issue's state keeps it out of release notes.
func (c *Classifier) IsExcluded(issue Issue) bool {
	_, ok := c.excluded[issue.State]
	return ok
}

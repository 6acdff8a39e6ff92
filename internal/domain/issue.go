// Package domain contains core business entities and interfaces.
package domain

// Issue is a tracker issue as supplied by the issue tracker client.
// Fields are ordered to minimize memory padding.
type Issue struct {
	Identifier string   // External identifier, e.g. "GP-74"
	Title      string   // Issue title
	URL        string   // Issue URL (empty if the tracker did not supply one)
	State      string   // Lifecycle state name, e.g. "Done"
	Labels     []string // Label names, unordered
}

// HasLabel returns true if the issue carries the given label.
func (i Issue) HasLabel(name string) bool {
	for _, l := range i.Labels {
		if l == name {
			return true
		}
	}
	return false
}

// Team is an issue tracker team, offered as a "view" to generate notes from.
type Team struct {
	ID   string
	Name string
}

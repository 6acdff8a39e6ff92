package domain

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// ReleaseLabel is a tracker label naming a release, e.g. "106.5.0".
type ReleaseLabel struct {
	Name      string
	CreatedAt time.Time
}

// parseVersion parses an X.Y.Z version string.
func parseVersion(name string) ([3]int, bool) {
	var v [3]int
	parts := strings.Split(name, ".")
	if len(parts) != 3 {
		return v, false
	}
	for i, p := range parts {
		if p == "" {
			return v, false
		}
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				return v, false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return v, false
		}
		v[i] = n
	}
	return v, true
}

// IsReleaseVersion reports whether a label name looks like an X.Y.Z version.
func IsReleaseVersion(name string) bool {
	_, ok := parseVersion(name)
	return ok
}

// SortReleaseLabels sorts labels by version, newest first. The sort is stable
// so equal versions keep their input order.
func SortReleaseLabels(labels []ReleaseLabel) {
	sort.SliceStable(labels, func(i, j int) bool {
		a, _ := parseVersion(labels[i].Name)
		b, _ := parseVersion(labels[j].Name)
		for k := 0; k < 3; k++ {
			if a[k] != b[k] {
				return a[k] > b[k]
			}
		}
		return false
	})
}

// FilterReleaseLabels keeps only labels whose name is an X.Y.Z version.
func FilterReleaseLabels(labels []ReleaseLabel) []ReleaseLabel {
	var out []ReleaseLabel
	for _, l := range labels {
		if IsReleaseVersion(l.Name) {
			out = append(out, l)
		}
	}
	return out
}

// Package enrollment holds the course-enrollment domain: the enrollment
// set built from the LMS, its title join against the catalog, and the
// enroll/unenroll side effects.
package enrollment

import "sort"

// Record is one enrollment, identified by its course-run key. Title stays
// empty until the set is enriched from the catalog.
type Record struct {
	Title string `json:"title,omitempty"`
}

// Set maps course-run keys to enrollment records. Every key present
// corresponds to an enrollment the user actually held as of the last fetch.
// A Set serializes cleanly into session attributes for cross-turn caching.
type Set map[string]Record

// Keys returns the course-run keys in sorted order so spoken output is
// deterministic regardless of map iteration.
func (s Set) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SpokenTitles returns one spoken line per record in key order: the catalog
// title when known, otherwise the course-run key itself.
func (s Set) SpokenTitles() []string {
	titles := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		if title := s[k].Title; title != "" {
			titles = append(titles, title)
		} else {
			titles = append(titles, k)
		}
	}
	return titles
}

// SearchResult is one catalog hit for a free-text search. Read-only,
// never persisted.
type SearchResult struct {
	Key   string
	Title string
}

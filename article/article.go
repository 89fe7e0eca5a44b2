// Package article defines the records published in a blog's index.json and
// the text matching rules shared by the home and search pages.
package article

import "strings"

// Article is one entry of the pre-built index. Only Title, URL and Date are
// guaranteed; every other field may be absent and decodes to its zero value.
type Article struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Excerpt     string   `json:"excerpt,omitempty"`
	URL         string   `json:"url"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Type        string   `json:"type,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TypeAll selects every article regardless of its archetype.
const TypeAll = "all"

// Archetypes is the fixed content-type enumeration offered by the type filter,
// in display order.
var Archetypes = []string{"Deep Dive", "Explainer", "Reflection", "Opinion", "Framework"}

// IsArchetype reports whether t is one of Archetypes. Matching is exact.
func IsArchetype(t string) bool {
	for _, a := range Archetypes {
		if a == t {
			return true
		}
	}
	return false
}

// Haystack returns the lowercased searchable text of a: title, description,
// excerpt, tags, type and difficulty, skipping empty fields, joined by a
// single space.
func (a Article) Haystack() string {
	parts := make([]string, 0, 6)
	for _, s := range []string{
		a.Title,
		a.Description,
		a.Excerpt,
		strings.Join(a.Tags, " "),
		a.Type,
		a.Difficulty,
	} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Matches reports whether query occurs in the article's haystack. The query
// is compared case-insensitively; an empty query matches everything.
func (a Article) Matches(query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	return strings.Contains(a.Haystack(), q)
}

// HasType reports whether a passes the type filter t.
func (a Article) HasType(t string) bool {
	return t == TypeAll || a.Type == t
}

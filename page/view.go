package page

import (
	"fmt"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/query"
)

// Status tells a renderer which state the article list is in.
type Status int

const (
	StatusLoading Status = iota
	StatusFailed
	StatusEmpty
	StatusNoMatch
	StatusResults
)

// User-visible messages for the non-result states.
const (
	MsgLoadFailed = "Could not load articles. Make sure you are viewing this page over HTTP (not file://)."
	MsgEmpty      = "No articles published yet."
	MsgNoMatch    = "No articles match your search."
)

// View is everything a renderer needs to paint a page.
type View struct {
	Kind           Kind
	Status         Status
	Message        string
	Query          string
	Type           string
	Sort           query.SortMode
	Visible        int
	FiltersVisible bool

	Articles  []article.Article // visible slice
	Matched   int               // results before pagination
	Total     int               // articles in the store
	Remaining int               // results hidden behind load more
	Header    string            // search page results header

	Filters []FilterOption
	Sorts   []SortOption
}

// HasMore reports whether the load-more control is shown.
func (v View) HasMore() bool {
	return v.Status == StatusResults && v.Remaining > 0
}

// LoadMoreLabel is the text of the load-more control.
func (v View) LoadMoreLabel() string {
	return fmt.Sprintf("Load more (%d remaining)", v.Remaining)
}

// ResultsHeader formats the search page count line. It is empty when the
// store is empty.
func ResultsHeader(count, total int) string {
	if total == 0 {
		return ""
	}
	noun := "articles"
	if total == 1 {
		noun = "article"
	}
	if count == total {
		return fmt.Sprintf("%d %s", total, noun)
	}
	return fmt.Sprintf("%d of %d %s", count, total, noun)
}

// FilterOption is one button of the type filter control.
type FilterOption struct {
	Label  string
	Type   string
	Active bool
}

// Command returns the command selecting this option.
func (o FilterOption) Command() query.Command {
	return query.SetType{Type: o.Type}
}

// TypeFilters lists "All" followed by every archetype. Exactly one option is
// active: the one matching s.Type.
func TypeFilters(s *query.State) []FilterOption {
	opts := make([]FilterOption, 0, len(article.Archetypes)+1)
	opts = append(opts, FilterOption{Label: "All", Type: article.TypeAll, Active: s.Type == article.TypeAll})
	for _, a := range article.Archetypes {
		opts = append(opts, FilterOption{Label: a, Type: a, Active: s.Type == a})
	}
	return opts
}

// SortOption is one entry of the sort selector.
type SortOption struct {
	Label    string
	Mode     query.SortMode
	Selected bool
}

// SortOptions lists every sort mode, marking the current one.
func SortOptions(s *query.State) []SortOption {
	opts := make([]SortOption, len(query.SortModes))
	for i, m := range query.SortModes {
		opts[i] = SortOption{Label: m.Label(), Mode: m, Selected: s.Sort == m}
	}
	return opts
}

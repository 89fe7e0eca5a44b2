// Package query holds the user-controlled parameters of a page session and
// the pure filter, sort and pagination functions computed from them.
package query

import (
	"strings"

	"github.com/eringen/pubindex/article"
)

// SortMode orders search results.
type SortMode string

const (
	SortDateDesc  SortMode = "date-desc"
	SortDateAsc   SortMode = "date-asc"
	SortTitleAsc  SortMode = "title-asc"
	SortTitleDesc SortMode = "title-desc"
)

// SortModes lists every mode in the order the sort selector shows them.
var SortModes = []SortMode{SortDateDesc, SortDateAsc, SortTitleAsc, SortTitleDesc}

// Label returns the human-readable name of m.
func (m SortMode) Label() string {
	switch m {
	case SortDateAsc:
		return "Oldest first"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	default:
		return "Newest first"
	}
}

// ParseSortMode maps s to a known mode, falling back to SortDateDesc.
func ParseSortMode(s string) SortMode {
	for _, m := range SortModes {
		if string(m) == s {
			return m
		}
	}
	return SortDateDesc
}

const (
	// PageSize is the initial visible count and the load-more step.
	PageSize = 5
	// HomePicks is the number of articles the home page shows without a query.
	HomePicks = 3
)

// State is the query state of one page session. Use NewState and the setter
// methods; changing the query, type or sort always rewinds pagination.
type State struct {
	Query          string
	Type           string
	Sort           SortMode
	Visible        int
	FiltersVisible bool
}

// NewState returns the defaults a page starts with.
func NewState() *State {
	return &State{
		Type:           article.TypeAll,
		Sort:           SortDateDesc,
		Visible:        PageSize,
		FiltersVisible: true,
	}
}

// SetQuery stores the trimmed free-text query.
func (s *State) SetQuery(q string) {
	s.Query = strings.TrimSpace(q)
	s.Visible = PageSize
}

// SetType selects an archetype; anything that is not one selects all types.
func (s *State) SetType(t string) {
	if !article.IsArchetype(t) {
		t = article.TypeAll
	}
	s.Type = t
	s.Visible = PageSize
}

// SetSort selects the sort mode.
func (s *State) SetSort(m SortMode) {
	s.Sort = ParseSortMode(string(m))
	s.Visible = PageSize
}

// LoadMore reveals the next PageSize results.
func (s *State) LoadMore() {
	s.Visible += PageSize
}

// ToggleFilters shows or hides the type filter panel. Pagination is kept.
func (s *State) ToggleFilters() {
	s.FiltersVisible = !s.FiltersVisible
}

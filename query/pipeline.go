package query

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/index"
)

// Filter returns the articles passing both the type filter and the text query
// of s, in input order. The input slice is not modified.
func Filter(articles []article.Article, s *State) []article.Article {
	out := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if a.HasType(s.Type) && a.Matches(s.Query) {
			out = append(out, a)
		}
	}
	return out
}

// Sort returns a stably sorted copy of articles. Dates are ISO strings and
// compare lexicographically; titles use English collation.
func Sort(articles []article.Article, mode SortMode) []article.Article {
	out := slices.Clone(articles)
	switch mode {
	case SortDateAsc:
		slices.SortStableFunc(out, func(a, b article.Article) int {
			return strings.Compare(a.Date, b.Date)
		})
	case SortTitleAsc, SortTitleDesc:
		// Collators keep scratch buffers and are not safe for concurrent use.
		col := collate.New(language.English)
		sign := 1
		if mode == SortTitleDesc {
			sign = -1
		}
		slices.SortStableFunc(out, func(a, b article.Article) int {
			return sign * col.CompareString(a.Title, b.Title)
		})
	default:
		slices.SortStableFunc(out, func(a, b article.Article) int {
			return strings.Compare(b.Date, a.Date)
		})
	}
	return out
}

// Search is the search page pipeline: filter by s, then sort by s.Sort.
func Search(store *index.Store, s *State) []article.Article {
	return Sort(Filter(store.Articles(), s), s.Sort)
}

// Home is the home page pipeline. Without a query it returns the first
// HomePicks articles in store order; with one it returns every match, also
// in store order.
func Home(store *index.Store, q string) []article.Article {
	all := store.Articles()
	q = strings.TrimSpace(q)
	if q == "" {
		return all[:min(HomePicks, len(all))]
	}
	s := NewState()
	s.SetQuery(q)
	return Filter(all, s)
}

package query

import "github.com/eringen/pubindex/article"

// Page is the rendered slice of a filtered, sorted result list.
type Page struct {
	Items     []article.Article
	Total     int // length of the full result list
	Remaining int // results hidden behind load more
}

// HasMore reports whether a load-more control should be offered.
func (p Page) HasMore() bool {
	return p.Remaining > 0
}

// Paginate caps results to the first visible entries.
func Paginate(results []article.Article, visible int) Page {
	visible = max(visible, 0)
	n := min(visible, len(results))
	return Page{
		Items:     results[:n:n],
		Total:     len(results),
		Remaining: max(0, len(results)-visible),
	}
}

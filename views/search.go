package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
)

// SearchPath is where the search page is served.
const SearchPath = "/search/"

// SearchPage renders the full search page.
func SearchPage(cfg SiteConfig, v page.View) templ.Component {
	meta := PageMeta{
		Title:       "Search · " + cfg.Name,
		Description: "Search every article published on " + cfg.Name + ".",
		URL:         buildURL(cfg.URL, "search"),
		OGType:      "website",
	}
	return layout(cfg, meta, func(buf *bytes.Buffer) {
		buf.WriteString(`<main class="search-page">`)
		writeSearchForm(buf, v)
		writeFilterBar(buf, v)
		writeSearchResults(buf, v)
		buf.WriteString(`</main>`)
	})
}

// SearchResults renders the part of the search page that changes with the
// query: results header, article list and load-more control.
func SearchResults(v page.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeSearchResults(&buf, v)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// LoadMore renders the contents of the load-more container.
func LoadMore(v page.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeLoadMore(&buf, v)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// TypeFilters renders the type filter buttons.
func TypeFilters(v page.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeTypeFilters(&buf, v)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeSearchForm(buf *bytes.Buffer, v page.View) {
	fmt.Fprintf(buf, `<form class="search-form" method="get" action="%s" role="search">`, SearchPath)
	fmt.Fprintf(buf, `<input id="search-input" class="search-input" type="search" name="q" value="%s" placeholder="Search articles..." autocomplete="off">`, esc(v.Query))
	buf.WriteString(`<select id="sort-select" class="sort-select" name="sort">`)
	for _, o := range v.Sorts {
		selected := ""
		if o.Selected {
			selected = " selected"
		}
		fmt.Fprintf(buf, `<option value="%s"%s>%s</option>`, esc(string(o.Mode)), selected, esc(o.Label))
	}
	buf.WriteString(`</select>`)
	if enc := page.EncodeState(v.State()); enc.Has("type") {
		fmt.Fprintf(buf, `<input type="hidden" name="type" value="%s">`, esc(enc.Get("type")))
	}
	if !v.FiltersVisible {
		buf.WriteString(`<input type="hidden" name="filters" value="hidden">`)
	}
	buf.WriteString(`<button class="search-btn" type="submit">Search</button></form>`)
}

func writeFilterBar(buf *bytes.Buffer, v page.View) {
	icon, hidden := "▾", ""
	if !v.FiltersVisible {
		icon, hidden = "▸", " tag-filters--hidden"
	}
	buf.WriteString(`<div class="filter-bar">`)
	fmt.Fprintf(buf, `<a id="filter-toggle" class="filter-toggle" href="%s" aria-controls="type-filters" aria-expanded="%t">Filter by type <span class="filter-toggle-icon">%s</span></a>`,
		esc(v.Link(SearchPath, query.ToggleFilters{})), v.FiltersVisible, icon)
	fmt.Fprintf(buf, `<nav id="type-filters" class="tag-filters%s">`, hidden)
	writeTypeFilters(buf, v)
	buf.WriteString(`</nav></div>`)
}

func writeTypeFilters(buf *bytes.Buffer, v page.View) {
	for _, o := range v.Filters {
		class, current := "tag-btn", ""
		if o.Active {
			class, current = "tag-btn active", ` aria-current="true"`
		}
		fmt.Fprintf(buf, `<a class="%s" href="%s"%s>%s</a>`, class, esc(v.Link(SearchPath, o.Command())), current, esc(o.Label))
	}
}

func writeSearchResults(buf *bytes.Buffer, v page.View) {
	buf.WriteString(`<section id="search-results">`)
	fmt.Fprintf(buf, `<p id="results-header" class="results-header">%s</p>`, esc(v.Header))
	buf.WriteString(`<div id="article-list" class="article-list">`)
	writeArticleList(buf, v)
	buf.WriteString(`</div><div id="load-more-cta">`)
	writeLoadMore(buf, v)
	buf.WriteString(`</div></section>`)
}

func writeLoadMore(buf *bytes.Buffer, v page.View) {
	if !v.HasMore() {
		return
	}
	fmt.Fprintf(buf, `<div class="load-more-cta"><a class="load-more-btn" href="%s">%s</a></div>`,
		esc(v.Link(SearchPath, query.LoadMore{})), esc(v.LoadMoreLabel()))
}

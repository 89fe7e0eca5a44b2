package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/eringen/pubindex/page"
)

// HomePage renders the home page: top picks, or every match while searching.
func HomePage(cfg SiteConfig, v page.View) templ.Component {
	meta := PageMeta{
		Title:       cfg.Name,
		Description: cfg.Description,
		URL:         buildURL(cfg.URL),
		OGType:      "website",
	}
	return layout(cfg, meta, func(buf *bytes.Buffer) {
		buf.WriteString(`<main class="home-page">`)
		buf.WriteString(`<form class="search-form" method="get" action="/" role="search">`)
		fmt.Fprintf(buf, `<input id="search-input" class="search-input" type="search" name="q" value="%s" placeholder="Search articles..." autocomplete="off">`, esc(v.Query))
		buf.WriteString(`</form><div id="article-list" class="article-list">`)
		writeArticleList(buf, v)
		fmt.Fprintf(buf, `</div><p class="browse-all"><a href="%s">Browse all articles →</a></p></main>`, SearchPath)
	})
}

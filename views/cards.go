package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/page"
)

// ArticleCard renders a single article card.
func ArticleCard(a article.Article) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeCard(&buf, a)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// ArticleList renders the contents of the article-list container: the
// status message, or one card per visible article.
func ArticleList(v page.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		writeArticleList(&buf, v)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeArticleList(buf *bytes.Buffer, v page.View) {
	switch v.Status {
	case page.StatusLoading:
		buf.WriteString(`<p class="loading">Loading articles…</p>`)
	case page.StatusFailed:
		fmt.Fprintf(buf, `<p class="error">%s</p>`, esc(v.Message))
	case page.StatusEmpty, page.StatusNoMatch:
		fmt.Fprintf(buf, `<p class="no-results">%s</p>`, esc(v.Message))
	default:
		for _, a := range v.Articles {
			writeCard(buf, a)
		}
	}
}

func writeCard(buf *bytes.Buffer, a article.Article) {
	buf.WriteString(`<article class="article-card"><div class="card-meta">`)
	if a.Type != "" {
		fmt.Fprintf(buf, `<span class="badge badge-type">%s</span>`, esc(a.Type))
	}
	if a.Difficulty != "" {
		fmt.Fprintf(buf, `<span class="badge badge-difficulty">%s</span>`, esc(a.Difficulty))
	}
	fmt.Fprintf(buf, `<time class="card-date" datetime="%s">%s</time></div>`, esc(a.Date), esc(FormatDate(a.Date)))
	fmt.Fprintf(buf, `<h2 class="card-title"><a href="%s">%s</a></h2>`, safeHref(a.URL), esc(a.Title))
	fmt.Fprintf(buf, `<p class="card-description">%s</p>`, esc(a.Description))
	buf.WriteString(`<div class="card-tags">`)
	for _, t := range a.Tags {
		fmt.Fprintf(buf, `<span class="tag-static">%s</span>`, esc(t))
	}
	buf.WriteString(`</div></article>`)
}

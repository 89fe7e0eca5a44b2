package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// StylesheetPath is the embedded stylesheet served by the app.
const StylesheetPath = "/public/pubindex.css"

func layout(cfg SiteConfig, meta PageMeta, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&buf, `<title>%s</title>`, esc(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(&buf, `<meta name="description" content="%s">`, esc(meta.Description))
			fmt.Fprintf(&buf, `<meta property="og:description" content="%s">`, esc(meta.Description))
		}
		fmt.Fprintf(&buf, `<meta property="og:title" content="%s">`, esc(meta.Title))
		fmt.Fprintf(&buf, `<meta property="og:type" content="%s">`, esc(meta.OGType))
		if meta.URL != "" {
			fmt.Fprintf(&buf, `<link rel="canonical" href="%s">`, esc(meta.URL))
			fmt.Fprintf(&buf, `<meta property="og:url" content="%s">`, esc(meta.URL))
		}
		fmt.Fprintf(&buf, `<link rel="stylesheet" href="%s">`, StylesheetPath)
		fmt.Fprintf(&buf, `<link rel="alternate" type="application/rss+xml" title="%s" href="/feed.xml">`, esc(cfg.Name))
		fmt.Fprintf(&buf, `<script type="application/ld+json">%s</script>`, WebsiteJsonLD(cfg))
		buf.WriteString(`</head><body><header class="site-header">`)
		fmt.Fprintf(&buf, `<a class="site-name" href="/">%s</a>`, esc(cfg.Name))
		fmt.Fprintf(&buf, `<nav class="site-nav"><a href="/">Home</a><a href="%s">Search</a></nav></header>`, SearchPath)
		body(&buf)
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again in a moment.")
}

func errorPage(cfg SiteConfig, title, detail string) templ.Component {
	meta := PageMeta{Title: title + " · " + cfg.Name, OGType: "website"}
	return layout(cfg, meta, func(buf *bytes.Buffer) {
		fmt.Fprintf(buf, `<main class="error-page"><h1>%s</h1><p>%s</p><p><a href="/">Back home</a></p></main>`, esc(title), esc(detail))
	})
}

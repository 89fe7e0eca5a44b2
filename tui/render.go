package tui

import (
	"strings"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/views"
)

// RenderCard draws one article card. A width of zero or less leaves the card
// unwrapped.
func RenderCard(a article.Article, width int) string {
	var meta []string
	if a.Type != "" {
		meta = append(meta, badgeTypeStyle.Render("["+a.Type+"]"))
	}
	if a.Difficulty != "" {
		meta = append(meta, badgeDifficultyStyle.Render("["+a.Difficulty+"]"))
	}
	if d := views.FormatDate(a.Date); d != "" {
		meta = append(meta, dimStyle.Render(d))
	}

	lines := []string{}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, " "))
	}
	lines = append(lines, cardTitleStyle.Render(a.Title))
	if a.Description != "" {
		lines = append(lines, a.Description)
	}
	if len(a.Tags) > 0 {
		tags := make([]string, len(a.Tags))
		for i, t := range a.Tags {
			tags[i] = "#" + t
		}
		lines = append(lines, dimStyle.Render(strings.Join(tags, " ")))
	}
	if a.URL != "" {
		lines = append(lines, dimStyle.Render(a.URL))
	}

	style := cardStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// RenderResults draws the part of a page that depends on the query: status
// message or results header, cards, and the load-more hint.
func RenderResults(v page.View, width int) string {
	var b strings.Builder
	switch v.Status {
	case page.StatusLoading:
		b.WriteString(dimStyle.Render("Loading articles…"))
		return b.String()
	case page.StatusFailed:
		b.WriteString(errorStyle.Render(v.Message))
		return b.String()
	case page.StatusEmpty, page.StatusNoMatch:
		b.WriteString(dimStyle.Render(v.Message))
		return b.String()
	}

	if v.Header != "" {
		b.WriteString(dimStyle.Render(v.Header))
		b.WriteString("\n")
	}
	for _, a := range v.Articles {
		b.WriteString(RenderCard(a, width))
		b.WriteString("\n")
	}
	if v.HasMore() {
		b.WriteString(loadMoreStyle.Render(v.LoadMoreLabel()))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderFilters(v page.View) string {
	parts := make([]string, len(v.Filters))
	for i, o := range v.Filters {
		if o.Active {
			parts[i] = filterActiveStyle.Render(o.Label)
		} else {
			parts[i] = filterStyle.Render(o.Label)
		}
	}
	return strings.Join(parts, "  ")
}

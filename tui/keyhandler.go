package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
)

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	search := a.view.Kind == page.Search

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "/":
		a.mode = modeSearch
		a.searchInput.SetValue(a.view.Query)
		a.searchInput.CursorEnd()
		return a, a.searchInput.Focus()
	case "esc":
		if a.view.Query != "" {
			a.searchInput.SetValue("")
			a.dispatch(query.SetQuery{})
		}
	case "tab", "t":
		if search {
			a.dispatch(query.SetType{Type: cycle(typeOrder(), a.view.Type, 1)})
		}
	case "shift+tab", "T":
		if search {
			a.dispatch(query.SetType{Type: cycle(typeOrder(), a.view.Type, -1)})
		}
	case "s":
		if search {
			a.dispatch(query.SetSort{Mode: cycle(query.SortModes, a.view.Sort, 1)})
		}
	case "S":
		if search {
			a.dispatch(query.SetSort{Mode: cycle(query.SortModes, a.view.Sort, -1)})
		}
	case "f":
		if search {
			a.dispatch(query.ToggleFilters{})
		}
	case "m", "enter", " ":
		if a.view.HasMore() {
			a.dispatch(query.LoadMore{})
		}
	}
	return a, nil
}

// handleSearchKey edits the query live: every change of the input text is
// applied as a SetQuery command.
func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "enter", "esc":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if q := strings.TrimSpace(a.searchInput.Value()); q != a.view.Query {
		a.dispatch(query.SetQuery{Query: q})
	}
	return a, cmd
}

func (a *App) helpLine() string {
	if a.mode == modeSearch {
		return "type to search • enter/esc: done • ctrl+c: quit"
	}
	parts := []string{"/: search"}
	if a.view.Kind == page.Search {
		parts = append(parts, "tab: type", "s: sort", "f: filters")
	}
	if a.view.HasMore() {
		parts = append(parts, "m: load more")
	}
	parts = append(parts, "q: quit")
	return strings.Join(parts, " • ")
}

func typeOrder() []string {
	return append([]string{article.TypeAll}, article.Archetypes...)
}

// cycle returns the element step positions after cur, wrapping around. An
// unknown cur starts from the first element.
func cycle[T comparable](order []T, cur T, step int) T {
	i := slices.Index(order, cur)
	if i < 0 {
		return order[0]
	}
	n := len(order)
	return order[((i+step)%n+n)%n]
}

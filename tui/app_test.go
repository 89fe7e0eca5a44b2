package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
)

type stubLoader struct {
	articles []article.Article
	err      error
	calls    int
}

func (s *stubLoader) Load(context.Context) ([]article.Article, error) {
	s.calls++
	return s.articles, s.err
}

func articles(n int) []article.Article {
	out := make([]article.Article, n)
	for i := range out {
		out[i] = article.Article{
			Title: fmt.Sprintf("Post %02d", i),
			Date:  fmt.Sprintf("2024-01-%02d", i+1),
			Type:  article.Archetypes[i%len(article.Archetypes)],
		}
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// started runs the initial load through the update loop.
func started(t *testing.T, kind page.Kind, l *stubLoader) *App {
	t.Helper()
	a := NewApp(Options{Kind: kind, Loader: l})
	cmd := a.Init()
	require.NotNil(t, cmd)
	a.Update(cmd())
	return a
}

func press(a *App, keys ...string) {
	for _, k := range keys {
		a.Update(key(k))
	}
}

func TestInitialViewIsLoading(t *testing.T) {
	a := NewApp(Options{Kind: page.Search, Loader: &stubLoader{}})
	assert.Equal(t, page.StatusLoading, a.PageView().Status)
	assert.Contains(t, a.View(), "Loading articles")
}

func TestLoadFetchesOnce(t *testing.T) {
	l := &stubLoader{articles: articles(12)}
	a := started(t, page.Search, l)

	v := a.PageView()
	assert.Equal(t, 1, l.calls)
	assert.Equal(t, page.StatusResults, v.Status)
	assert.Len(t, v.Articles, 5)
	assert.Equal(t, 7, v.Remaining)
}

func TestLoadFailureShowsMessage(t *testing.T) {
	a := started(t, page.Search, &stubLoader{err: errors.New("refused")})

	assert.Equal(t, page.StatusFailed, a.PageView().Status)
	assert.Contains(t, a.View(), page.MsgLoadFailed)
}

func TestLoadMoreKey(t *testing.T) {
	a := started(t, page.Search, &stubLoader{articles: articles(12)})

	press(a, "m")
	assert.Len(t, a.PageView().Articles, 10)
	press(a, "enter")
	assert.Len(t, a.PageView().Articles, 12)
	assert.False(t, a.PageView().HasMore())

	press(a, "m")
	assert.Equal(t, 15, a.PageView().Visible, "load more is ignored once everything is shown")
}

func TestTypeCycleResetsPagination(t *testing.T) {
	a := started(t, page.Search, &stubLoader{articles: articles(12)})
	press(a, "m")
	require.Equal(t, 10, a.PageView().Visible)

	press(a, "tab")
	v := a.PageView()
	assert.Equal(t, "Deep Dive", v.Type)
	assert.Equal(t, query.PageSize, v.Visible)
	assert.Equal(t, 3, v.Matched)

	press(a, "T", "T")
	assert.Equal(t, "Framework", a.PageView().Type, "reverse cycle wraps around")
}

func TestSortCycle(t *testing.T) {
	a := started(t, page.Search, &stubLoader{articles: articles(3)})

	press(a, "s")
	v := a.PageView()
	assert.Equal(t, query.SortDateAsc, v.Sort)
	assert.Equal(t, "Post 00", v.Articles[0].Title)

	press(a, "S", "S")
	assert.Equal(t, query.SortTitleDesc, a.PageView().Sort)
}

func TestFilterToggle(t *testing.T) {
	a := started(t, page.Search, &stubLoader{articles: articles(3)})
	require.True(t, a.PageView().FiltersVisible)
	assert.Contains(t, a.View(), "Framework")

	press(a, "f")
	assert.False(t, a.PageView().FiltersVisible)
	assert.NotContains(t, a.View(), "Framework")
}

func TestLiveSearch(t *testing.T) {
	a := started(t, page.Search, &stubLoader{articles: articles(12)})

	press(a, "/", "0", "3")
	v := a.PageView()
	assert.Equal(t, "03", v.Query)
	assert.Equal(t, 1, v.Matched)

	press(a, "q")
	assert.Equal(t, "03q", a.PageView().Query, "keys are text while searching")
	assert.Equal(t, page.StatusNoMatch, a.PageView().Status)

	press(a, "esc", "esc")
	assert.Empty(t, a.PageView().Query)
	assert.Equal(t, 12, a.PageView().Matched)
}

func TestHomeIgnoresSearchOnlyKeys(t *testing.T) {
	a := started(t, page.Home, &stubLoader{articles: articles(6)})
	require.Len(t, a.PageView().Articles, 3)

	press(a, "tab", "s", "f")
	v := a.PageView()
	assert.Equal(t, article.TypeAll, v.Type)
	assert.Equal(t, query.SortDateDesc, v.Sort)
	assert.True(t, v.FiltersVisible)
}

func TestQuitKeys(t *testing.T) {
	a := started(t, page.Search, &stubLoader{})
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := a.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.Quit(), cmd(), k)
	}
}

func TestCycle(t *testing.T) {
	order := []string{"a", "b", "c"}
	assert.Equal(t, "b", cycle(order, "a", 1))
	assert.Equal(t, "a", cycle(order, "c", 1))
	assert.Equal(t, "c", cycle(order, "a", -1))
	assert.Equal(t, "a", cycle(order, "zzz", 1))
}

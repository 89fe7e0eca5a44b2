// Package tui is the interactive terminal front-end. It owns one page
// session and maps key presses onto query commands.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
)

// App is the bubbletea model for one browsing session.
type App struct {
	ctrl    *page.Controller
	loader  page.Loader
	timeout time.Duration
	view    page.View
	mode    mode

	searchInput textinput.Model

	width  int
	height int
}

// Options configures NewApp.
type Options struct {
	Kind    page.Kind
	Loader  page.Loader
	Logger  page.Logger
	Timeout time.Duration // fetch timeout (default 15s)
}

func NewApp(opts Options) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 200

	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}

	ctrl := page.New(opts.Kind, opts.Logger)
	return &App{
		ctrl:        ctrl,
		loader:      opts.Loader,
		timeout:     opts.Timeout,
		view:        ctrl.View(),
		searchInput: ti,
	}
}

// PageView returns the page view last painted.
func (a *App) PageView() page.View {
	return a.view
}

func (a *App) Init() tea.Cmd {
	return a.loadIndex()
}

// loadIndex fetches once in the background; the result is applied on the
// update loop, which owns the controller.
func (a *App) loadIndex() tea.Cmd {
	l := a.loader
	timeout := a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		articles, err := l.Load(ctx)
		if err != nil {
			return indexErrMsg{err: err}
		}
		return indexLoadedMsg{articles: articles}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchInput.Width = max(10, msg.Width-4)
		return a, nil

	case indexLoadedMsg:
		_ = a.ctrl.Complete(msg.articles, nil)
		a.view = a.ctrl.View()
		return a, nil

	case indexErrMsg:
		_ = a.ctrl.Complete(nil, msg.err)
		a.view = a.ctrl.View()
		return a, nil

	case tea.KeyMsg:
		if a.mode == modeSearch {
			return a.handleSearchKey(msg)
		}
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) dispatch(cmds ...query.Command) {
	a.view = a.ctrl.Dispatch(cmds...)
}

func (a *App) View() string {
	var b strings.Builder

	title := "Latest articles"
	if a.view.Kind == page.Search {
		title = "Search"
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	if a.mode == modeSearch || a.view.Query != "" {
		b.WriteString(a.searchInput.View())
		b.WriteString("\n")
	}

	if a.view.Kind == page.Search {
		icon := "▾"
		if !a.view.FiltersVisible {
			icon = "▸"
		}
		b.WriteString(dimStyle.Render("Filter by type " + icon))
		if a.view.FiltersVisible {
			b.WriteString("  ")
			b.WriteString(renderFilters(a.view))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("Sort: " + a.view.Sort.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(RenderResults(a.view, a.width))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(a.helpLine()))
	return b.String()
}

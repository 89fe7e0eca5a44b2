// Package page drives one page session: it loads the article index once,
// owns the query state, and turns every state change into a View that a
// renderer can paint.
package page

import (
	"context"
	"fmt"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/index"
	"github.com/eringen/pubindex/query"
)

// Kind selects which page pipeline a Controller runs.
type Kind int

const (
	// Home shows top picks, or every match in index order while searching.
	Home Kind = iota
	// Search filters by type, sorts and paginates.
	Search
)

func (k Kind) String() string {
	if k == Search {
		return "search"
	}
	return "home"
}

// Loader fetches the article index.
type Loader interface {
	Load(ctx context.Context) ([]article.Article, error)
}

// Logger receives load failures. echo.Logger and gommon's *log.Logger both
// satisfy it.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Controller is the explicitly owned state of one page session. It is not
// safe for concurrent use; a session lives on a single goroutine.
type Controller struct {
	kind   Kind
	store  *index.Store
	state  *query.State
	log    Logger
	loaded bool
	err    error
}

// New returns a controller with an empty store and default query state.
func New(kind Kind, log Logger) *Controller {
	return &Controller{
		kind:  kind,
		store: index.NewStore(nil),
		state: query.NewState(),
		log:   log,
	}
}

// Load fetches the index and replaces the store wholesale. Only the first
// call fetches; later calls return the first outcome. A failure leaves the
// store empty, is logged, and turns the view into its error state.
func (c *Controller) Load(ctx context.Context, l Loader) error {
	if c.loaded {
		return c.err
	}
	return c.Complete(l.Load(ctx))
}

// Complete records the outcome of a fetch performed elsewhere, such as in a
// background command. Only the first outcome is kept.
func (c *Controller) Complete(articles []article.Article, err error) error {
	if c.loaded {
		return c.err
	}
	c.loaded = true

	if err != nil {
		c.err = fmt.Errorf("pubindex: load articles: %w", err)
		if c.log != nil {
			c.log.Errorf("failed to load index: %v", err)
		}
		return c.err
	}
	c.store = index.NewStore(articles)
	return nil
}

// SetArticles replaces the store without fetching, marking the session
// loaded. It serves callers that already hold the index.
func (c *Controller) SetArticles(articles []article.Article) {
	c.loaded = true
	c.err = nil
	c.store = index.NewStore(articles)
}

// Err returns the load failure, if any.
func (c *Controller) Err() error {
	return c.err
}

// Store returns the loaded article store.
func (c *Controller) Store() *index.Store {
	return c.store
}

// State returns a copy of the current query state.
func (c *Controller) State() query.State {
	return *c.state
}

// Dispatch applies cmds and returns the recomputed view.
func (c *Controller) Dispatch(cmds ...query.Command) View {
	c.state.Dispatch(cmds...)
	return c.View()
}

// View runs the page pipeline over the store and current state.
func (c *Controller) View() View {
	s := c.state
	v := View{
		Kind:           c.kind,
		Query:          s.Query,
		Type:           s.Type,
		Sort:           s.Sort,
		Visible:        s.Visible,
		FiltersVisible: s.FiltersVisible,
		Total:          c.store.Len(),
	}
	if c.kind == Search {
		v.Filters = TypeFilters(s)
		v.Sorts = SortOptions(s)
	}

	switch {
	case !c.loaded:
		v.Status = StatusLoading
		return v
	case c.err != nil:
		v.Status = StatusFailed
		v.Message = MsgLoadFailed
		return v
	}

	var results []article.Article
	if c.kind == Search {
		results = query.Search(c.store, s)
		v.Header = ResultsHeader(len(results), v.Total)
	} else {
		results = query.Home(c.store, s.Query)
	}
	v.Matched = len(results)

	switch {
	case c.store.Empty():
		v.Status = StatusEmpty
		v.Message = MsgEmpty
	case len(results) == 0:
		v.Status = StatusNoMatch
		v.Message = MsgNoMatch
	default:
		v.Status = StatusResults
		if c.kind == Search {
			p := query.Paginate(results, s.Visible)
			v.Articles = p.Items
			v.Remaining = p.Remaining
		} else {
			v.Articles = results
		}
	}
	return v
}

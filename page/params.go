package page

import (
	"net/url"
	"strconv"

	"github.com/eringen/pubindex/article"
	"github.com/eringen/pubindex/query"
)

// maxLoadMore bounds the load-more count accepted from a URL.
const maxLoadMore = 1000

// EncodeState returns the URL parameters that reopen a page in state s.
// Defaults are omitted so the canonical page has no query string.
func EncodeState(s query.State) url.Values {
	vals := url.Values{}
	if s.Query != "" {
		vals.Set("q", s.Query)
	}
	if s.Type != "" && s.Type != article.TypeAll {
		vals.Set("type", s.Type)
	}
	if s.Sort != "" && s.Sort != query.SortDateDesc {
		vals.Set("sort", string(s.Sort))
	}
	if more := (s.Visible - query.PageSize) / query.PageSize; more > 0 {
		vals.Set("more", strconv.Itoa(more))
	}
	if !s.FiltersVisible {
		vals.Set("filters", "hidden")
	}
	return vals
}

// DecodeCommands turns URL parameters back into the commands that rebuild
// the state from defaults. The order matters: the setters rewind
// pagination, so LoadMore commands come last.
func DecodeCommands(vals url.Values) []query.Command {
	var cmds []query.Command
	if q := vals.Get("q"); q != "" {
		cmds = append(cmds, query.SetQuery{Query: q})
	}
	if t := vals.Get("type"); t != "" {
		cmds = append(cmds, query.SetType{Type: t})
	}
	if s := vals.Get("sort"); s != "" {
		cmds = append(cmds, query.SetSort{Mode: query.SortMode(s)})
	}
	if vals.Get("filters") == "hidden" {
		cmds = append(cmds, query.ToggleFilters{})
	}
	if more, err := strconv.Atoi(vals.Get("more")); err == nil && more > 0 {
		for i := 0; i < min(more, maxLoadMore); i++ {
			cmds = append(cmds, query.LoadMore{})
		}
	}
	return cmds
}

// State rebuilds the query state the view was computed from.
func (v View) State() query.State {
	return query.State{
		Query:          v.Query,
		Type:           v.Type,
		Sort:           v.Sort,
		Visible:        v.Visible,
		FiltersVisible: v.FiltersVisible,
	}
}

// Link returns the URL of path in the state reached by applying cmd to the
// view's state.
func (v View) Link(path string, cmd query.Command) string {
	next := v.State()
	next.Dispatch(cmd)
	if enc := EncodeState(next).Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

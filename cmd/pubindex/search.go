package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/query"
	"github.com/eringen/pubindex/tui"
)

type searchOptions struct {
	home  bool
	query string
	typ   string
	sort  string
	more  int
}

// commands replays the flags as the interactions a reader would make on the
// page, in the same order the server decodes URL parameters.
func (o searchOptions) commands() []query.Command {
	cmds := []query.Command{query.SetQuery{Query: o.query}}
	if !o.home {
		cmds = append(cmds,
			query.SetType{Type: o.typ},
			query.SetSort{Mode: query.ParseSortMode(o.sort)},
		)
	}
	for i := 0; i < o.more; i++ {
		cmds = append(cmds, query.LoadMore{})
	}
	return cmds
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions
	cmd := &cobra.Command{
		Use:   "search",
		Short: "List articles matching a query",
		Long:  "search runs one page session: it fetches the index once, applies the query, type filter and sort, and prints the visible article cards.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runSearch(cmd.Context(), cmd.OutOrStdout(), newLoader(cfg), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.home, "home", false, "list like the home page (top picks, no type filter or sort)")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "search text")
	cmd.Flags().StringVar(&opts.typ, "type", "all", "content type (all, Deep Dive, Explainer, Reflection, Opinion, Framework)")
	cmd.Flags().StringVar(&opts.sort, "sort", string(query.SortDateDesc), "sort order (date-desc, date-asc, title-asc, title-desc)")
	cmd.Flags().IntVar(&opts.more, "more", 0, "number of load-more steps to apply")
	return cmd
}

func runSearch(ctx context.Context, w io.Writer, l page.Loader, opts searchOptions) error {
	if opts.more < 0 {
		return fmt.Errorf("pubindex: --more must not be negative")
	}
	kind := page.Search
	if opts.home {
		kind = page.Home
	}

	ctrl := page.New(kind, stderrLogger())
	loadErr := ctrl.Load(ctx, l)
	v := ctrl.Dispatch(opts.commands()...)

	fmt.Fprintln(w, tui.RenderResults(v, 0))
	return loadErr
}

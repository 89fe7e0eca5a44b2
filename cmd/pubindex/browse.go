package main

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/eringen/pubindex/page"
	"github.com/eringen/pubindex/tui"
)

func newBrowseCmd() *cobra.Command {
	var (
		home    bool
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse articles interactively in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The alternate screen owns the terminal; diagnostics go to a
			// file or nowhere.
			var out io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			kind := page.Search
			if home {
				kind = page.Home
			}
			app := tui.NewApp(tui.Options{
				Kind:    kind,
				Loader:  newLoader(cfg),
				Logger:  newLogger(out),
				Timeout: cfg.FetchTimeout,
			})
			_, err = tea.NewProgram(app, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&home, "home", false, "start on the home listing instead of search")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append load diagnostics to this file")
	return cmd
}

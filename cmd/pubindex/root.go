package main

import (
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"

	"github.com/eringen/pubindex"
	"github.com/eringen/pubindex/index"
)

var (
	flagConfig   string
	flagIndexURL string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pubindex",
		Short:         "Listing and search for a static blog's article index",
		Long:          "pubindex loads a blog's published index.json and serves, lists or browses its articles with type filters, sorting and pagination.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ./pubindex.toml)")
	root.PersistentFlags().StringVar(&flagIndexURL, "index", "", "index.json URL (overrides config)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pubindex %s\n", version)
		},
	}
}

// loadConfig reads the config file and environment, then applies flag
// overrides.
func loadConfig() (pubindex.SiteConfig, error) {
	cfg, err := pubindex.LoadConfig(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagIndexURL != "" {
		cfg.IndexURL = flagIndexURL
	}
	return cfg, nil
}

func newLoader(cfg pubindex.SiteConfig) *index.Loader {
	l := index.NewLoader(cfg.IndexURL, cfg.FetchTimeout)
	l.UserAgent = "pubindex/" + version
	return l
}

func newLogger(w io.Writer) *log.Logger {
	l := log.New("pubindex")
	l.SetOutput(w)
	l.SetLevel(log.INFO)
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	return l
}

func stderrLogger() *log.Logger {
	return newLogger(os.Stderr)
}

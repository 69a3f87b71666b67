// Command tmdb is a small CLI over The Movie Database API: look up movies
// and people, and compute overlap queries like "which actors appear in all
// of these movies". Authentication comes from the TMDB_API_TOKEN
// environment variable.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/filmgraph/tmdb"
	"github.com/filmgraph/tmdb/internal/config"
)

var (
	client *tmdb.Client

	flagDebug       bool
	flagTimeout     time.Duration
	flagServiceRoot string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tmdb",
		Short:         "Query The Movie Database from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags win over environment values.
			if !cmd.Flags().Changed("debug") {
				flagDebug = cfg.Debug
			}
			if !cmd.Flags().Changed("timeout") && cfg.HTTPTimeout > 0 {
				flagTimeout = cfg.HTTPTimeout
			}
			if flagServiceRoot == "" {
				flagServiceRoot = cfg.ServiceRoot
			}

			config.InitLogger(flagDebug)

			opts := []tmdb.Option{
				tmdb.WithHTTPTimeout(flagTimeout),
				tmdb.WithDebugLogging(flagDebug),
			}
			if flagServiceRoot != "" {
				opts = append(opts, tmdb.WithServiceRoot(flagServiceRoot))
			}

			client, err = tmdb.FromEnv(opts...)
			return err
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if client != nil {
				_ = client.Close()
			}
		},
	}

	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging including HTTP dumps")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "per-request HTTP timeout")
	root.PersistentFlags().StringVar(&flagServiceRoot, "service-root", "", "override the API root URL (must end with /)")

	root.AddCommand(
		newGetMovieCmd(),
		newSearchMovieCmd(),
		newGetPersonCmd(),
		newSearchPersonCmd(),
		newRandomPersonCmd(),
		newOverlapMoviesCmd(),
		newOverlapActorsCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

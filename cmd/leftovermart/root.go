package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leftovermart/client-go/api"
	"github.com/leftovermart/client-go/config"
	"github.com/leftovermart/client-go/store"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "leftovermart",
	Short: "Command-line client for the Leftovermart marketplace",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// newApp wires the configuration, the API client and the state store the way
// every subcommand needs them. The persisted session, if any, is restored so
// commands run as the logged-in user.
func newApp(ctx context.Context, restoreSession bool) (*api.Client, *store.Store, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	client, err := api.New(cfg, api.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	s := store.New(client,
		store.WithLogger(logger),
		store.WithSessionStore(store.NewFileSessionStore(cfg.SessionFile)),
	)

	if restoreSession {
		if _, err := s.RestoreSession(ctx); err != nil {
			logger.Warn().Err(err).Msg("could not restore previous session")
		}
	}
	return client, s, nil
}

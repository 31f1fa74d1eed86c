package main

import (
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/scarlett-vr/casino-core/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg = config.Load()

	root := &cobra.Command{
		Use:          "casino",
		Short:        "Texas Hold'em hand evaluation and showdown service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			// Create a new slog handler with the default PTerm logger
			handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level)))
			logger = slog.New(handler)
			return nil
		},
	}

	// env and .env provide the defaults, flags win
	root.PersistentFlags().StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	root.PersistentFlags().StringVar(&cfg.RedisURL, "redis", cfg.RedisURL, "redis URL for hand history (empty keeps it in memory)")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	root.PersistentFlags().StringVar(&cfg.Table, "table", cfg.Table, "table name")

	root.AddCommand(evalCmd(), categoriesCmd(), dealCmd(), serveCmd())
	return root
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/scarlett-vr/casino-core/api"
	"github.com/scarlett-vr/casino-core/ledger"
	"github.com/scarlett-vr/casino-core/metrics"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluation API, hand history and showdown feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			banner()
			return serve(ctx)
		},
	}
}

func serve(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	chain, err := ledger.Open(ctx, store)
	if err != nil {
		return fmt.Errorf("open hand history: %w", err)
	}
	logger.Info("hand history loaded", "table", cfg.Table, "blocks", chain.Len())

	hub := api.NewHub(logger, m)
	go hub.Run(ctx)

	srv := api.NewServer(api.Options{
		Logger:   logger,
		Metrics:  m,
		Gatherer: reg,
		Chain:    chain,
		Store:    store,
		Hub:      hub,
		Table:    cfg.Table,
	}).HTTPServer(cfg.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	pterm.Info.Printfln("Listening on %s", cfg.Addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore picks the hand history backend. The returned func releases it.
func openStore(ctx context.Context) (ledger.Store, func(), error) {
	if cfg.RedisURL == "" {
		logger.Warn("no redis configured, hand history is kept in memory")
		return ledger.NewMemoryStore(), func() {}, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("hand history backed by redis", "addr", opts.Addr)
	return ledger.NewRedisStore(client, cfg.Table), func() { client.Close() }, nil
}

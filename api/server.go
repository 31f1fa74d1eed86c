package api

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scarlett-vr/casino-core/ledger"
	"github.com/scarlett-vr/casino-core/metrics"
)

// Options carries the dependencies of a Server. Logger and Chain are
// required; a nil Store keeps history in memory, a nil Hub disables the feed.
type Options struct {
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Chain    *ledger.Blockchain
	Store    ledger.Store
	Hub      *Hub
	Table    string
}

// Server exposes hand evaluation, showdowns and hand history over HTTP.
type Server struct {
	logger   *slog.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	chain    *ledger.Blockchain
	store    ledger.Store
	hub      *Hub
	table    string

	// serializes append and save so the store sees blocks in chain order
	mu sync.Mutex
}

func NewServer(opts Options) *Server {
	return &Server{
		logger:   opts.Logger,
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		chain:    opts.Chain,
		store:    opts.Store,
		hub:      opts.Hub,
		table:    opts.Table,
	}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.hub != nil {
		r.Get("/ws", s.hub.ServeWS)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Post("/evaluate", s.handleEvaluate)
		r.Post("/showdown", s.handleShowdown)
		r.Get("/history", s.handleHistory)
		r.Get("/history/verify", s.handleVerify)
		r.Get("/history/{index}", s.handleBlock)
	})
	return r
}

// HTTPServer wraps the routes with the server timeouts used in production.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

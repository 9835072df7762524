// Package server exposes FindRoute over HTTP.
//
//	POST /v1/route       search one route, JSON in and out
//	GET  /v1/algorithms  list the registered algorithm names
//	GET  /v1/graph       node and edge counts of the loaded graph
//	GET  /v1/health      liveness probe
//	GET  /metrics        Prometheus exposition, when a handler is set
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/elevroute/core"
	"github.com/katalvlaran/elevroute/internal/config"
	"github.com/katalvlaran/elevroute/route"
)

// Server routes requests against one immutable graph.
type Server struct {
	graph    *core.Graph
	defaults config.Defaults
	timeout  time.Duration
	recorder route.Recorder
	metrics  http.Handler
	router   *mux.Router
	server   *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithRecorder reports every search to rec.
func WithRecorder(rec route.Recorder) Option {
	return func(s *Server) { s.recorder = rec }
}

// WithMetricsHandler serves h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithSearchTimeout cancels searches that run longer than d. Zero disables it.
func WithSearchTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// New builds the router for g. Request fields left empty fall back to defaults.
func New(g *core.Graph, defaults config.Defaults, opts ...Option) *Server {
	s := &Server{graph: g, defaults: defaults}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.HandleFunc("/v1/route", s.handleRoute).Methods(http.MethodPost)
	r.HandleFunc("/v1/algorithms", handleAlgorithms).Methods(http.MethodGet)
	r.HandleFunc("/v1/graph", s.handleGraph).Methods(http.MethodGet)
	r.HandleFunc("/v1/health", handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics).Methods(http.MethodGet)
	}
	r.Use(withRecovery, withLogging)
	s.router = r

	return s
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("server: listening", "addr", addr)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("server: shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return s.server.Shutdown(shutdownCtx)
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleAlgorithms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"algorithms": route.Names(),
	})
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	st := s.graph.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"nodes":      st.VertexCount,
		"edges":      st.EdgeCount,
		"undirected": st.Undirected,
	})
}

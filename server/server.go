// SPDX-License-Identifier: MIT

// Package server exposes balancing, decomposition and molar mass over HTTP.
//
// Routes:
//
//	POST /v1/balance            {"reactants": [...], "products": [...]} or {"reaction": "H2 + O2 -> H2O"}
//	GET  /v1/decompose/{formula}
//	GET  /v1/mass/{formula}
//	GET  /healthz
//	GET  /metrics               Prometheus exposition
//
// Domain failures answer 422 with {"error": ..., "kind": ...}; kind is the
// stable name from balance.Kind (or "unknown_element" for molar lookups).
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvchem/balance"
	"github.com/katalvlaran/lvchem/cache"
	"github.com/katalvlaran/lvchem/internal/logging"
	"github.com/katalvlaran/lvchem/molar"
)

// Server is the HTTP API. It is an http.Handler.
type Server struct {
	router   chi.Router
	cache    cache.Cache
	table    *molar.Table
	balOpts  []balance.Option
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

// Option configures a Server.
type Option func(*Server)

// WithCache memoizes balance results. Nil disables caching.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithLogger sets the access and error logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBalanceOptions forwards options to every balance call.
func WithBalanceOptions(opts ...balance.Option) Option {
	return func(s *Server) { s.balOpts = append(s.balOpts, opts...) }
}

// WithTable replaces the embedded periodic table for /v1/mass.
func WithTable(t *molar.Table) Option {
	return func(s *Server) {
		if t != nil {
			s.table = t
		}
	}
}

// New builds the router. Each Server owns its Prometheus registry.
func New(opts ...Option) *Server {
	s := &Server{
		logger:   logging.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == nil {
		s.table = molar.Default()
	}
	s.metrics = newMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/balance", s.handleBalance)
		r.Get("/decompose/{formula}", s.handleDecompose)
		r.Get("/mass/{formula}", s.handleMass)
	})
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry exposes the metrics registry, e.g. for extra collectors.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts down
// gracefully within five seconds.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, readTimeout, writeTimeout time.Duration, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info("HTTP server shutting down")

		return srv.Shutdown(shutdownCtx)
	}
}

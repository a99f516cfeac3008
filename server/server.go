// Package server exposes the annealer over HTTP.
//
// Routes:
//
//	POST /api/tours/anneal  anneal an instance given as JSON
//	GET  /api/tours/demo    anneal the built-in ten-location instance
//	GET  /metrics           Prometheus metrics
//	GET  /healthz           liveness check
//
// Each request gets its own Annealer and random stream, so requests run
// concurrently without sharing mutable state.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config holds server limits and the parent seed for unseeded requests.
type Config struct {
	Addr string

	// Seed is the parent seed from which per-request streams are derived
	// when a request carries no seed of its own.
	Seed int64

	// MaxLocations and MaxIterations bound the work a single request may ask for.
	MaxLocations  int
	MaxIterations int

	// ShutdownTimeout bounds the graceful drain in ListenAndServe.
	ShutdownTimeout time.Duration
}

// DefaultConfig returns the limits used by the CLI's -serve mode.
func DefaultConfig() Config {
	return Config{
		Addr:            ":5000",
		MaxLocations:    2000,
		MaxIterations:   5_000_000,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Server serves annealing requests.
type Server struct {
	cfg     Config
	reg     *prometheus.Registry
	metrics *Metrics
	streams atomic.Uint64
}

// New builds a Server with its own Prometheus registry.
func New(cfg Config) *Server {
	reg := prometheus.NewRegistry()
	return &Server{
		cfg:     cfg,
		reg:     reg,
		metrics: NewMetrics(reg),
	}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(s.metrics.Middleware)

	r.Handle("/metrics", promhttp.HandlerFor(s.reg, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "ok")
	})

	r.Route("/api/tours", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Post("/anneal", s.annealTour)
		r.Get("/demo", s.annealDemo)
	})
	return r
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[SERVER] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

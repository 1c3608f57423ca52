// Package server exposes the core over HTTP for the map frontend.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/geolens-io/geolens/internal/control"
)

// Server wraps the HTTP listener and routes.
type Server struct {
	ctrl   *control.Controller
	server *http.Server
}

// New creates the HTTP server on the given port.
func New(ctrl *control.Controller, port int) *Server {
	s := &Server{ctrl: ctrl}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Get("/rankings/{category}", s.handleRanking)
		r.Get("/growth", s.handleGrowth)
		r.Get("/enrichment/{iso3}", s.handleEnrichment)
		r.Get("/countries/{iso3}", s.handleCountry)
		r.Get("/overview", s.handleOverview)
	})
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: r,
	}
	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler returns the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

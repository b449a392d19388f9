// Package api exposes the settings store over HTTP for bench tooling and
// remote control.
//
// The store itself is single-owner; this layer serializes all access behind
// one mutex, which is the arbitration the core deliberately leaves to its
// callers.
package api

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/radioconsole/persist/pkg/archive"
	"github.com/radioconsole/persist/pkg/store"
)

// Server handles HTTP requests against one settings store and an optional
// snapshot archive.
type Server struct {
	store   *store.SettingsStore
	archive *archive.Archive // nil when snapshots are not configured
	config  ServerConfig
	metrics *Metrics
	mu      sync.Mutex
}

// NewServer creates a server. The archive may be nil; snapshot routes then
// report that the feature is not configured.
func NewServer(st *store.SettingsStore, ar *archive.Archive, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   st,
		archive: ar,
		config:  config,
		metrics: metrics,
	}
}

// Router builds the chi router with all routes and middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus scrape endpoint, unprotected.
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(s.config.APIKey))

		r.Get("/health", s.metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		r.Get("/settings", s.metrics.InstrumentHandler("GET", "/api/v1/settings", s.handleGetSettings))
		r.Get("/settings/{field}", s.metrics.InstrumentHandler("GET", "/api/v1/settings/{field}", s.handleGetField))
		r.Put("/settings/{field}", s.metrics.InstrumentHandler("PUT", "/api/v1/settings/{field}", s.handlePutField))

		r.Get("/flags", s.metrics.InstrumentHandler("GET", "/api/v1/flags", s.handleGetFlags))
		r.Get("/flags/{flag}", s.metrics.InstrumentHandler("GET", "/api/v1/flags/{flag}", s.handleGetFlag))
		r.Put("/flags/{flag}", s.metrics.InstrumentHandler("PUT", "/api/v1/flags/{flag}", s.handlePutFlag))

		r.Post("/commit", s.metrics.InstrumentHandler("POST", "/api/v1/commit", s.handleCommit))
		r.Post("/reset", s.metrics.InstrumentHandler("POST", "/api/v1/reset", s.handleReset))
		r.Get("/stats", s.metrics.InstrumentHandler("GET", "/api/v1/stats", s.handleStats))

		r.Post("/snapshots", s.metrics.InstrumentHandler("POST", "/api/v1/snapshots", s.handleCreateSnapshot))
		r.Get("/snapshots", s.metrics.InstrumentHandler("GET", "/api/v1/snapshots", s.handleListSnapshots))
		r.Post("/snapshots/{id}/restore", s.metrics.InstrumentHandler("POST", "/api/v1/snapshots/{id}/restore", s.handleRestoreSnapshot))
	})

	return r
}

// StartServer starts the HTTP server and blocks.
func StartServer(st *store.SettingsStore, ar *archive.Archive, config ServerConfig) error {
	metrics := NewMetrics(prometheus.DefaultRegisterer)
	server := NewServer(st, ar, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting settings API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, server.Router()))

	return nil
}

// Package api exposes the pngvault container operations over HTTP. PNG
// bytes travel as request and response bodies; metadata comes back as a
// JSON envelope. All routes under /api/v1 require an X-API-Key header.
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router with middleware, metrics, and all routes.
func NewRouter(server *Server, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(server.config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Container inspection
		r.Post("/png/inspect", metrics.InstrumentHandler("POST", "/api/v1/png/inspect", server.handleInspect))

		// Secret operations
		r.Post("/secrets/embed", metrics.InstrumentHandler("POST", "/api/v1/secrets/embed", server.handleEmbed))
		r.Post("/secrets/extract", metrics.InstrumentHandler("POST", "/api/v1/secrets/extract", server.handleExtract))
		r.Post("/secrets/remove", metrics.InstrumentHandler("POST", "/api/v1/secrets/remove", server.handleRemove))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(config, metrics)
	r := NewRouter(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting pngvault REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)

	return http.ListenAndServe(addr, r)
}

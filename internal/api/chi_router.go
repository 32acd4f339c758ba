// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

// Package api provides HTTP routing using Chi router.
package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/config"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows the middleware package's handlers to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router sets up HTTP routes using Chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	staticDir     string
}

// NewRouter creates a new router with the middleware stack derived from the
// application security settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	var (
		chiMW     *ChiMiddleware
		staticDir string
	)
	if cfg != nil {
		chiMW = NewChiMiddlewareFromSecurity(cfg.Security)
		staticDir = cfg.Server.StaticDir
	} else {
		chiMW = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		chiMiddleware: chiMW,
		staticDir:     staticDir,
	}
}

// Setup configures all HTTP routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header plus logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	// Unmatched methods on known routes get a structured 405.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting so monitoring tools can probe freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealthChecks())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Core Recommendation Endpoint
	// ========================
	// The response shape here is the public client contract, including the
	// 405 body, so the method-not-allowed handler speaks it too.
	r.Route("/api/v1/recommendations", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPIDefault())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(router.handler.perfMon.Middleware)
		r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
			respondRecommendationError(w, http.StatusMethodNotAllowed, "Method not allowed")
		})
		r.Post("/", router.handler.Recommend)
	})

	// ========================
	// Catalog Endpoints
	// ========================
	// Read-only, burst-friendly; compressed because the catalog payload is
	// the largest response the service produces.
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitBurstRead())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.perfMon.Middleware)
		r.Get("/", router.handler.Catalog)
		r.Get("/games", router.handler.CatalogGames)
	})

	// ========================
	// Status Endpoints
	// ========================
	r.Route("/api/v1/status", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAPIDefault())
		r.Use(APISecurityHeaders())
		r.Get("/performance", router.handler.PerformanceStats)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Static Files & Web Form
	// ========================
	// Must be last; catches all unmatched GET routes.
	r.Get("/*", router.serveStaticOrIndex)

	return r
}

// serveStaticOrIndex serves static files or index.html for the web form.
//
// API paths never fall back to the HTML shell; a miss under /api/ is a JSON
// 404 so clients get a parseable error instead of markup.
func (router *Router) serveStaticOrIndex(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/") {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
		return
	}

	if router.staticDir == "" {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found", nil)
		return
	}

	// Set Cache-Control headers based on file type
	if strings.HasSuffix(path, ".js") || strings.HasSuffix(path, ".css") {
		// Long cache for versioned assets (1 year)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	} else if strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".svg") || strings.HasSuffix(path, ".jpg") || strings.HasSuffix(path, ".webp") {
		// Cache images for 7 days
		w.Header().Set("Cache-Control", "public, max-age=604800")
	} else if path == "/" || path == "/index.html" {
		// Short cache for HTML to allow quick updates
		w.Header().Set("Cache-Control", "public, max-age=300")
	}

	fs := http.FileServer(http.Dir(router.staticDir))

	if path == "/" || path == "/index.html" || !router.fileExists(path) {
		// Unknown routes serve the form shell
		if w.Header().Get("Cache-Control") == "" {
			w.Header().Set("Cache-Control", "public, max-age=300")
		}
		http.ServeFile(w, r, router.staticDir+"/index.html")
		return
	}

	fs.ServeHTTP(w, r)
}

// fileExists checks if a file exists under the static directory.
func (router *Router) fileExists(path string) bool {
	f, err := http.Dir(router.staticDir).Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	return !info.IsDir()
}

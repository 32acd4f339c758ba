// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/advisor"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/config"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/links"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/middleware"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: Shared helper functions
//   - handlers_recommend.go: The core recommendation endpoint
//   - handlers_catalog.go: Catalog and game weight read endpoints
//   - handlers_health.go: Health/monitoring endpoints
//   - handlers_status.go: Performance status endpoint
type Handler struct {
	engine    *advisor.Engine
	catalog   *catalog.Catalog
	links     *links.Builder
	config    *config.Config
	startTime time.Time
	perfMon   *middleware.PerformanceMonitor
}

// NewHandler creates a new API handler with all required dependencies.
//
// Dependencies:
//   - engine: Scoring engine for recommendation requests
//   - cat: GPU catalog and game weight table
//   - builder: Retailer link builder
//   - cfg: Application configuration
//
// The handler initializes with:
//   - Performance monitor tracking the last 1000 requests
//   - Start time for uptime calculations
//
// Example:
//
//	handler := api.NewHandler(engine, cat, builder, cfg)
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(":8080", router.Setup())
func NewHandler(engine *advisor.Engine, cat *catalog.Catalog, builder *links.Builder, cfg *config.Config) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   cat,
		links:     builder,
		config:    cfg,
		startTime: time.Now(),
		perfMon:   middleware.NewPerformanceMonitor(1000), // Keep last 1000 requests
	}
}

// PerformanceMonitor exposes the handler's request window for router wiring.
func (h *Handler) PerformanceMonitor() *middleware.PerformanceMonitor {
	return h.perfMon
}

// ready reports whether the service can score requests.
func (h *Handler) ready() bool {
	return h.engine != nil && h.catalog != nil && h.catalog.Len() > 0
}

// requestTimeout returns the per-request computation bound.
func (h *Handler) requestTimeout() time.Duration {
	if h.config != nil && h.config.API.RequestTimeout > 0 {
		return h.config.API.RequestTimeout
	}
	return 10 * time.Second
}

// maxBodyBytes returns the accepted JSON request body cap.
func (h *Handler) maxBodyBytes() int64 {
	if h.config != nil && h.config.API.MaxBodyBytes > 0 {
		return h.config.API.MaxBodyBytes
	}
	return 1 << 20
}

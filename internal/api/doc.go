// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package api provides the HTTP layer for the GPU Upgrade Advisor.

This package wires the scoring engine, catalog, and link builder behind a
small set of endpoints. It owns request decoding and validation, response
shaping, and the middleware stack (CORS, rate limiting, security headers,
metrics); the scoring rules themselves live in internal/advisor.

Key Components:

  - Router: Chi route configuration and middleware stack integration
  - Handler: Request handlers holding the engine, catalog, and link builder
  - Response formatting: the recommendation endpoint speaks a compact
    client contract; supplementary endpoints use a standardized envelope
    with metadata
  - Error handling: validation failures, business "no candidates"
    outcomes, and internal faults each map to distinct responses
  - Rate limiting: per-IP limits via chi httprate
  - CORS: Cross-Origin Resource Sharing for the web form

Endpoints:

1. Core (/api/v1/):
  - POST /api/v1/recommendations: score the catalog against the caller's
    hardware and return the most cost-efficient upgrade

2. Read-only data (/api/v1/):
  - GET /api/v1/catalog: the full upgrade candidate list
  - GET /api/v1/catalog/games: the game weight table

3. Operational (/api/v1/, /metrics):
  - Health checks (health, health/live, health/ready)
  - GET /api/v1/status/performance: per-endpoint latency aggregates
  - GET /metrics: Prometheus exposition

4. Static UI (/): served from a configured directory when present

Usage Example:

	import (
	    "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/advisor"
	    "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/api"
	    "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	    "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/links"
	)

	cat := catalog.Default()
	engine, _ := advisor.NewEngine(cat, nil, logging.Logger())
	builder := links.NewBuilder(cfg.Affiliate.Tag)

	handler := api.NewHandler(engine, cat, builder, cfg)
	router := api.NewRouter(handler, cfg)

	http.ListenAndServe(":8080", router.Setup())

Response Contract:

POST /api/v1/recommendations returns exactly one of:

	200 {"recommendation": {...}}   a winning candidate
	200 {"error": "..."}            valid request, nothing fits (business outcome)
	400 {"error": "..."}            malformed body or missing required fields
	500 {"error": "Internal server error"}

The supplementary endpoints wrap their payloads in models.APIResponse with
status, data, and metadata fields.

Thread Safety:

All handlers are stateless apart from shared read-only dependencies (engine,
catalog, link builder) and are safe for concurrent request handling.

See Also:

  - internal/advisor: Scoring pipeline
  - internal/catalog: GPU catalog and game weight table
  - internal/links: Retailer link building
  - internal/middleware: HTTP middleware components
*/
package api

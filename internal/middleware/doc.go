// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package middleware provides HTTP middleware components for the application.

This package implements infrastructure middleware for compression, performance
monitoring, request ID tracking, and Prometheus metrics integration. The api
package composes these into per-route wrap chains alongside chi's router-level
middleware (RealIP, Recoverer, CORS, rate limiting).

Key Components:

  - Compression: Gzip encoding for clients that accept it
  - Performance Monitor: Request latency tracking with percentile calculations
  - Request ID: UUID-based request tracking, X-Request-ID passthrough
  - Prometheus Metrics: HTTP request/response instrumentation

Middleware Stack:

The typical wrap chain for an API endpoint is:

	middleware.PrometheusMetrics( // Layer 1: Metrics
	    middleware.Compression(    // Layer 2: Gzip
	        middleware.RequestID(  // Layer 3: Request tracking
	            handler,           // Layer 4: Business logic
	        ),
	    ),
	)

Because the chain is attached per registered route, the Prometheus endpoint
label only ever sees known paths.

Usage Example - Performance Monitoring:

	// Create performance monitor with a 1000-request window
	perfMon := middleware.NewPerformanceMonitor(1000)

	// Wrap a handler (or an entire chi subtree)
	r.Use(perfMon.Middleware)

	// Get per-endpoint statistics for the status endpoint
	stats := perfMon.GetStats()

Usage Example - Request ID:

	http.HandleFunc("/api/v1/recommendations",
	    middleware.RequestID(handler),
	)

	// Access request ID in handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    logging.Ctx(r.Context()).Info().Msg("Processing request")
	}

Performance Monitor:

The performance monitor tracks:
  - Per-endpoint request counts and average latency
  - Latency percentiles (p50, p95, p99) over a bounded window
  - Slow requests, logged at warn level above 250ms
  - Thread-safe concurrent access with RWMutex

Thread Safety:

All middleware components are thread-safe:
  - Compression uses a sync.Pool of gzip writers
  - Performance monitor uses sync.RWMutex
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations

See Also:

  - internal/api: HTTP handlers and router wiring
  - internal/metrics: Prometheus metrics definitions
*/
package middleware

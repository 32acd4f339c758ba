// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package metrics provides Prometheus metrics collection and export for
observability.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Recommendation engine outcomes and scoring latency
  - Catalog size

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)
  - api_rate_limit_hits_total: Rate-limited requests (counter)
    Labels: endpoint

Advisor Metrics:
  - advisor_recommendations_total: Engine runs by outcome (counter)
    Labels: outcome ("recommended", "no_candidates")
  - advisor_recommendation_duration_seconds: Scoring latency (histogram)
  - advisor_candidates_considered: Candidates after filtering (histogram)

Catalog Metrics:
  - catalog_gpus: Entries in the active catalog (gauge)

# Usage Example

	metrics.RecordAPIRequest("POST", "/api/v1/recommendations", "200", elapsed)
	metrics.RecordRecommendation(metrics.OutcomeRecommended, 4, elapsed)
	metrics.SetCatalogSize(c.Len())

Example PromQL queries:

	# Request rate
	rate(api_requests_total[5m])

	# p95 scoring latency
	histogram_quantile(0.95, rate(advisor_recommendation_duration_seconds_bucket[5m]))

	# Share of no-candidate outcomes
	rate(advisor_recommendations_total{outcome="no_candidates"}[15m])
	/
	rate(advisor_recommendations_total[15m])

# Thread Safety

All metric recording functions are thread-safe and designed for concurrent
use from multiple goroutines. The Prometheus client library handles
synchronization internally.

# Cardinality Management

The metrics middleware is attached per route group, so the endpoint label
only ever sees registered paths (unmatched URLs 404 before instrumentation),
and outcome labels come from a fixed constant set. Series counts stay small.
*/
package metrics

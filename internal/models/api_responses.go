// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by the
// supplementary HTTP endpoints (catalog, game weights, health). It provides
// consistent structure for both successful and error responses, with metadata
// for observability.
//
// The core recommendation endpoint does not use this wrapper; its response
// shape is part of the public client contract and is defined by
// RecommendationResponse instead.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"total": 8, "gpus": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-25T12:00:00Z",
//	    "query_time_ms": 1
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Resource not found"
//	  },
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance
// tracking. All wrapped API responses include it so clients and dashboards
// can monitor handler latency.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - QueryTimeMS: Handler execution time in milliseconds (omitted when 0)
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response with structured error details.
// Provides consistent error format across wrapped endpoints for better
// client handling.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid input parameters
//   - NOT_FOUND: Resource doesn't exist
//   - RATE_LIMIT_EXCEEDED: Too many requests
//   - INTERNAL_ERROR: Unexpected server failure
//
// Example:
//
//	{
//	  "code": "VALIDATION_ERROR",
//	  "message": "budget is required",
//	  "details": {"fields": [{"field": "budget", "message": "budget is required"}]}
//	}
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants used across handlers.
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// HealthStatus is the data payload for GET /api/v1/health. The service has
// no external dependencies; status is "degraded" only when the engine or
// catalog failed to initialize.
type HealthStatus struct {
	Status       string  `json:"status"`
	Version      string  `json:"version"`
	CatalogSize  int     `json:"catalog_size"`
	GamesTracked int     `json:"games_tracked"`
	Uptime       float64 `json:"uptime"`
}

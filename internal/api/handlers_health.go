// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"net/http"
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/models"
)

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// Health handles GET /api/v1/health.
// Returns overall service health including catalog size and uptime. The
// service has no external dependencies, so health degrades only when the
// engine or catalog failed to initialize.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	status := "healthy"
	if !h.ready() {
		status = "degraded"
	}

	catalogSize := 0
	gamesTracked := 0
	if h.catalog != nil {
		catalogSize = h.catalog.Len()
		gamesTracked = len(h.catalog.Weights())
	}

	health := models.HealthStatus{
		Status:       status,
		Version:      serviceVersion,
		CatalogSize:  catalogSize,
		GamesTracked: gamesTracked,
		Uptime:       time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 200 OK only when the scoring engine and a non-empty catalog are
// in place; 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	ready := h.ready()

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	catalogSize := 0
	if h.catalog != nil {
		catalogSize = h.catalog.Len()
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: status,
		Data: map[string]interface{}{
			"engine_loaded":  h.engine != nil,
			"catalog_size":   catalogSize,
			"ready_to_serve": ready,
			"uptime":         time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

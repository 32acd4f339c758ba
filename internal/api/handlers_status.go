// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"net/http"
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/middleware"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/models"
)

// PerformanceStats handles GET /api/v1/status/performance.
// Returns per-endpoint latency aggregates (count, average, percentiles)
// from the in-memory sliding window kept by the performance monitor.
//
// The window is bounded and process-local; it complements the /metrics
// endpoint rather than replacing it, giving a quick JSON view without a
// Prometheus stack.
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	stats := h.GetPerformanceStats()
	if stats == nil {
		stats = []middleware.EndpointStats{}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"endpoints": stats,
			"uptime":    time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// GetPerformanceStats returns performance monitoring statistics.
func (h *Handler) GetPerformanceStats() []middleware.EndpointStats {
	if h.perfMon != nil {
		return h.perfMon.GetStats()
	}
	return nil
}

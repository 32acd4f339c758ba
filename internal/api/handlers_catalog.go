// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"net/http"
	"sort"
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/models"
)

// Catalog handles GET /api/v1/catalog.
// Returns every upgrade candidate in catalog order, which is also the
// tie-break order used by the scoring engine.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	gpus := h.catalog.GPUs()
	entries := make([]models.CatalogEntry, 0, len(gpus))
	for _, g := range gpus {
		entries = append(entries, toCatalogEntry(g))
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.CatalogData{
			Total: len(entries),
			GPUs:  entries,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// CatalogGames handles GET /api/v1/catalog/games.
// Returns the game weight table sorted by title so the response is stable
// across requests.
func (h *Handler) CatalogGames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	weights := h.catalog.Weights()
	games := make([]models.GameWeightEntry, 0, len(weights))
	for title, mult := range weights {
		games = append(games, models.GameWeightEntry{Title: title, Multiplier: mult})
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].Title < games[j].Title
	})

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.GameWeightsData{
			Total:             len(games),
			DefaultMultiplier: catalog.DefaultGameMultiplier,
			Games:             games,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// toCatalogEntry converts a catalog card to its wire representation. The
// decimal price becomes a float only here, at the presentation boundary.
func toCatalogEntry(g catalog.GPU) models.CatalogEntry {
	price, _ := g.Price.Float64()
	return models.CatalogEntry{
		ID:         g.ID,
		Name:       g.Name,
		Price:      price,
		PerfScore:  g.PerfScore,
		FormFactor: string(g.FormFactor),
		ProductURL: g.ProductURL,
	}
}

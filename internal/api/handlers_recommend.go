// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"context"
	"math"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/advisor"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/logging"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/middleware"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/models"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/validation"
)

// Recommend handles POST /api/v1/recommendations.
//
// The request body is a models.RecommendationRequest; the response is a
// models.RecommendationResponse carrying either the winning candidate or a
// human-readable error message:
//
//	200 {"recommendation": {...}}  a winner was found
//	200 {"error": "..."}           valid request, nothing fits (business outcome)
//	400 {"error": "..."}           malformed body or missing required fields
//	500 {"error": "Internal server error"}
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondRecommendationError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes())

	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("rejected unparseable recommendation request")
		respondRecommendationError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if apiErr := h.validateRecommendationRequest(r, &req); apiErr != "" {
		respondRecommendationError(w, http.StatusBadRequest, apiErr)
		return
	}

	engineReq, err := h.toEngineRequest(r, &req)
	if err != nil {
		respondRecommendationError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout())
	defer cancel()

	result, err := h.engine.Recommend(ctx, engineReq)
	if err != nil {
		logging.CtxErr(r.Context(), err).Msg("recommendation engine failed")
		respondRecommendationError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if result.NoCandidates {
		respondRecommendation(w, http.StatusOK, &models.RecommendationResponse{
			Error: result.Reason,
		})
		return
	}

	respondRecommendation(w, http.StatusOK, &models.RecommendationResponse{
		Recommendation: h.toWireRecommendation(result.Recommendation),
	})
}

// validateRecommendationRequest checks presence and enum membership. The
// returned string is the client-facing message, empty when the request is
// valid.
//
// Required fields use pointer types, so a present-but-empty currentGpu is
// valid while an absent key is not.
func (h *Handler) validateRecommendationRequest(r *http.Request, req *models.RecommendationRequest) string {
	if verr := validation.ValidateStruct(req); verr != nil {
		if missing := verr.MissingFields(); len(missing) > 0 {
			logging.Ctx(r.Context()).Warn().
				Strs("fields", missing).
				Msg("rejected recommendation request with missing fields")
			return "Missing required fields: " + strings.Join(missing, ", ")
		}
		message := verr.ToAPIError().Message
		logging.Ctx(r.Context()).Warn().
			Str("detail", sanitizeLogValue(message)).
			Msg("rejected invalid recommendation request")
		return message
	}

	// Presence is not enough for the budget; zero and negative budgets can
	// never match a catalog entry and are caller mistakes, not business
	// outcomes.
	if req.Budget.Sign() <= 0 {
		return "budget must be greater than 0"
	}

	return ""
}

// toEngineRequest maps the validated wire request into the engine's type.
func (h *Handler) toEngineRequest(r *http.Request, req *models.RecommendationRequest) (advisor.Request, error) {
	formFactor, err := catalog.ParseFormFactor(*req.FormFactor)
	if err != nil {
		return advisor.Request{}, err
	}

	var vram float64
	if req.VRAMGB != nil {
		vram = *req.VRAMGB
	}
	var cpuCores int
	if req.CPUCores != nil {
		cpuCores = *req.CPUCores
	}

	return advisor.Request{
		BudgetUSD:  *req.Budget,
		CurrentGPU: *req.CurrentGPU,
		VRAMGB:     vram,
		CPUCores:   cpuCores,
		FormFactor: formFactor,
		Resolution: advisor.Resolution(*req.Resolution),
		Games:      req.Games,
		RequestID:  middleware.GetRequestID(r.Context()),
	}, nil
}

// toWireRecommendation rounds the winning candidate for presentation. All
// ranking happened on unrounded values; this is the only place display
// rounding is applied.
func (h *Handler) toWireRecommendation(rec *advisor.Recommendation) *models.Recommendation {
	price, _ := rec.GPU.Price.Float64()

	var costPerPoint *float64
	if !math.IsInf(rec.CostPerPoint, 1) {
		rounded := math.Round(rec.CostPerPoint*100) / 100
		costPerPoint = &rounded
	}

	built := h.links.Build(rec.GPU.ProductURL)

	return &models.Recommendation{
		ID:                rec.GPU.ID,
		Name:              rec.GPU.Name,
		Price:             price,
		EstFPSGainPercent: int(math.Round(rec.GainPercent)),
		CostPerFPSPoint:   costPerPoint,
		AffiliateURLs: models.AffiliateURLs{
			Canonical: built.Canonical,
			Amazon:    built.Amazon,
			Newegg:    built.Newegg,
			Ebay:      built.Ebay,
		},
	}
}

// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package models

import (
	"github.com/shopspring/decimal"
)

// RecommendationRequest is the request body for POST /api/v1/recommendations.
//
// Required fields use pointer types so that an absent JSON key can be told
// apart from a present zero value. A request that includes "currentGpu": ""
// is valid (the advisor falls back to VRAM-based estimation); a request that
// omits the key entirely is rejected with a missing-fields error.
//
// Fields:
//   - Budget: Maximum price in USD for the recommended card (required, > 0)
//   - CurrentGPU: Free-form name of the installed card (required, may be empty)
//   - VRAMGB: VRAM of the installed card in GB, used when the name is not recognized
//   - CPUCores: Physical core count for bottleneck damping (0 treated as unknown)
//   - FormFactor: "desktop" or "laptop" (required)
//   - Resolution: Target render resolution, one of "1080p", "1440p", "4K" (required)
//   - Games: Comma, semicolon or newline separated game titles
//
// Example:
//
//	{
//	  "budget": 600,
//	  "currentGpu": "GTX 1060",
//	  "vramGb": 6,
//	  "cpuCores": 6,
//	  "formFactor": "desktop",
//	  "resolution": "1080p",
//	  "games": "valorant, fortnite"
//	}
type RecommendationRequest struct {
	Budget     *decimal.Decimal `json:"budget" validate:"required"`
	CurrentGPU *string          `json:"currentGpu" validate:"required"`
	VRAMGB     *float64         `json:"vramGb" validate:"omitempty,gte=0"`
	CPUCores   *int             `json:"cpuCores" validate:"omitempty,gte=0"`
	FormFactor *string          `json:"formFactor" validate:"required,oneof=desktop laptop"`
	Resolution *string          `json:"resolution" validate:"required,oneof=1080p 1440p 4K"`
	Games      string           `json:"games"`
}

// RecommendationResponse is the response body for POST /api/v1/recommendations.
// Exactly one of the two fields is populated:
//
//   - Recommendation: the winning upgrade candidate
//   - Error: a human-readable message when no candidate fits the constraints,
//     the request is invalid, or an internal failure occurred
//
// The no-candidates case is a normal business outcome and is returned with
// HTTP 200; the body then carries only the error message and no
// recommendation key.
type RecommendationResponse struct {
	Recommendation *Recommendation `json:"recommendation,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// Recommendation describes the winning upgrade candidate.
//
// EstFPSGainPercent is the relative performance gain over the current card,
// rounded to a whole percent. CostPerFPSPoint is the price divided by that
// gain, rounded to two decimals; it is null when the candidate yields no
// positive gain, which happens when the current card already performs at or
// above the candidate's level.
type Recommendation struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Price             float64       `json:"price"`
	EstFPSGainPercent int           `json:"estFpsGainPercent"`
	CostPerFPSPoint   *float64      `json:"costPerFpsPoint"`
	AffiliateURLs     AffiliateURLs `json:"affiliateUrls"`
}

// AffiliateURLs carries purchase links for a recommended card. Canonical is
// always present; the retailer links are populated whenever the canonical
// product URL parses, either as tagged versions of the original URL (when it
// already points at that retailer) or as retailer search URLs.
type AffiliateURLs struct {
	Canonical string  `json:"canonical"`
	Amazon    *string `json:"amazon,omitempty"`
	Newegg    *string `json:"newegg,omitempty"`
	Ebay      *string `json:"ebay,omitempty"`
}

// CatalogEntry is the wire representation of a catalog card, returned by
// GET /api/v1/catalog.
type CatalogEntry struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	PerfScore  float64 `json:"perfScore"`
	FormFactor string  `json:"formFactor"`
	ProductURL string  `json:"productUrl"`
}

// CatalogData is the data payload for GET /api/v1/catalog.
type CatalogData struct {
	Total int            `json:"total"`
	GPUs  []CatalogEntry `json:"gpus"`
}

// GameWeightEntry is a single title-to-multiplier mapping, returned by
// GET /api/v1/catalog/games.
type GameWeightEntry struct {
	Title      string  `json:"title"`
	Multiplier float64 `json:"multiplier"`
}

// GameWeightsData is the data payload for GET /api/v1/catalog/games. The
// default multiplier applies to any title not present in the table.
type GameWeightsData struct {
	Total             int               `json:"total"`
	DefaultMultiplier float64           `json:"defaultMultiplier"`
	Games             []GameWeightEntry `json:"games"`
}

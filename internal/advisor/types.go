// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package advisor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
)

// Resolution is the target render resolution for scoring.
type Resolution string

const (
	Resolution1080p Resolution = "1080p"
	Resolution1440p Resolution = "1440p"
	Resolution4K    Resolution = "4K"
)

// Request carries one scoring request into the engine. The HTTP boundary
// validates presence and enum membership before mapping into this type; the
// engine only has to stay total over whatever values arrive.
type Request struct {
	// BudgetUSD is the price ceiling for candidates.
	BudgetUSD decimal.Decimal

	// CurrentGPU is the free-form card name. Empty means unknown; the
	// estimator then falls back to VRAMGB.
	CurrentGPU string

	// VRAMGB is the installed card's VRAM in GB. Only consulted when
	// CurrentGPU does not match a known card family.
	VRAMGB float64

	// CPUCores is the physical core count. Zero or negative means unknown
	// and applies no bottleneck damping.
	CPUCores int

	// FormFactor is the requested machine class (desktop or laptop).
	FormFactor catalog.FormFactor

	// Resolution is the target render resolution.
	Resolution Resolution

	// Games is the raw games string from the request, parsed by the
	// catalog's game weight table.
	Games string

	// RequestID correlates engine logs with the HTTP request.
	RequestID string
}

// Recommendation is one scored candidate. All floats are exact pipeline
// values; rounding for display happens at the presentation boundary.
type Recommendation struct {
	GPU catalog.GPU

	// EffectiveScore is PerfScore after resolution, game and CPU damping.
	EffectiveScore float64

	// Gain is max(EffectiveScore - current performance, 0).
	Gain float64

	// GainPercent is Gain relative to current performance, in percent.
	// Zero when the current performance is zero.
	GainPercent float64

	// CostPerPoint is price divided by GainPercent; +Inf when the candidate
	// yields no positive gain. Candidates are ranked ascending by this.
	CostPerPoint float64
}

// Result is the outcome of one engine run. NoCandidates marks the business
// outcome where nothing in the catalog fits the constraints; it is not an
// error, and Reason then carries the client-facing explanation.
type Result struct {
	Recommendation *Recommendation
	NoCandidates   bool
	Reason         string

	// Diagnostics for logging and debugging.
	CurrentPerf          float64
	ResolutionMultiplier float64
	GameMultiplier       float64
	CPUFactor            float64
	CandidatesConsidered int
	Elapsed              time.Duration
}

// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package advisor

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/metrics"
)

// EngineConfig bounds per-request work.
type EngineConfig struct {
	// MaxGames caps how many parsed game titles are consulted per request.
	// Extra titles are ignored, not an error.
	MaxGames int
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		MaxGames: 32,
	}
}

// Validate checks the configuration bounds.
func (c *EngineConfig) Validate() error {
	if c.MaxGames <= 0 {
		return fmt.Errorf("max games must be positive, got %d", c.MaxGames)
	}
	return nil
}

// Engine scores catalog candidates against a user's current hardware and
// picks the most cost-efficient upgrade. It holds no per-request state and
// is safe for concurrent use.
type Engine struct {
	config  *EngineConfig
	logger  zerolog.Logger
	catalog *catalog.Catalog
}

// NewEngine creates a scoring engine over the given catalog.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *EngineConfig, logger zerolog.Logger) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "advisor").Logger(),
		catalog: cat,
	}, nil
}

// Recommend runs the scoring pipeline for one request. A request that
// matches no catalog entry is a normal outcome reported via
// Result.NoCandidates; the error return is reserved for cancellation.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	currentPerf := EstimateCurrentPerf(req.CurrentGPU, req.VRAMGB)
	resMult := ResolutionMultiplier(req.Resolution)
	gameMult := e.gameMultiplier(req.Games)
	cpuFactor := CPUBottleneckFactor(req.CPUCores)

	candidates := e.catalog.Eligible(req.BudgetUSD, req.FormFactor)

	result := &Result{
		CurrentPerf:          currentPerf,
		ResolutionMultiplier: resMult,
		GameMultiplier:       gameMult,
		CPUFactor:            cpuFactor,
		CandidatesConsidered: len(candidates),
	}

	if len(candidates) == 0 {
		result.NoCandidates = true
		result.Reason = noCandidatesReason(req)
		result.Elapsed = time.Since(start)

		metrics.RecordRecommendation(metrics.OutcomeNoCandidates, 0, result.Elapsed)
		logger.Info().
			Str("outcome", "no_candidates").
			Str("budget", req.BudgetUSD.String()).
			Int64("latency_ms", result.Elapsed.Milliseconds()).
			Msg("recommendation complete")

		return result, nil
	}

	scored := scoreCandidates(candidates, currentPerf, resMult*gameMult*cpuFactor)

	// Ties keep catalog order; the sort must stay stable.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CostPerPoint < scored[j].CostPerPoint
	})

	winner := scored[0]
	result.Recommendation = &winner
	result.Elapsed = time.Since(start)

	metrics.RecordRecommendation(metrics.OutcomeRecommended, len(candidates), result.Elapsed)
	logger.Info().
		Str("outcome", "recommended").
		Str("winner", winner.GPU.ID).
		Int("candidates", len(candidates)).
		Float64("current_perf", currentPerf).
		Float64("gain_pct", winner.GainPercent).
		Int64("latency_ms", result.Elapsed.Milliseconds()).
		Msg("recommendation complete")

	return result, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("form_factor", string(req.FormFactor)).
		Str("resolution", string(req.Resolution)).
		Logger()
}

// gameMultiplier parses the raw games string, caps the title count, and
// looks up the demand multiplier.
func (e *Engine) gameMultiplier(raw string) float64 {
	titles := catalog.SplitGames(raw)
	if len(titles) > e.config.MaxGames {
		titles = titles[:e.config.MaxGames]
	}
	return e.catalog.Weights().MultiplierFor(titles)
}

// scoreCandidates computes the scoring pipeline for each eligible entry.
// multiplier is the combined resolution, game and CPU damping.
func scoreCandidates(gpus []catalog.GPU, currentPerf, multiplier float64) []Recommendation {
	scored := make([]Recommendation, 0, len(gpus))
	for _, g := range gpus {
		effective := g.PerfScore * multiplier

		gain := effective - currentPerf
		if gain < 0 {
			gain = 0
		}

		gainPct := 0.0
		if currentPerf > 0 {
			gainPct = gain / currentPerf * 100
		}

		costPerPoint := math.Inf(1)
		if gainPct > 0 {
			price, _ := g.Price.Float64()
			costPerPoint = price / gainPct
		}

		scored = append(scored, Recommendation{
			GPU:            g,
			EffectiveScore: effective,
			Gain:           gain,
			GainPercent:    gainPct,
			CostPerPoint:   costPerPoint,
		})
	}
	return scored
}

// noCandidatesReason builds the client-facing explanation for an empty
// candidate set.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func noCandidatesReason(req Request) string {
	return fmt.Sprintf(
		"No GPU fits your budget of $%s for a %s build. Try raising your budget.",
		req.BudgetUSD.StringFixed(2), req.FormFactor,
	)
}

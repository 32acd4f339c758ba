// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package catalog

import (
	"fmt"
	"strings"
)

// DefaultGameMultiplier applies to any title missing from the weight table.
const DefaultGameMultiplier = 1.0

// GameWeights maps lowercase game titles to demand multipliers. Values below
// 1.0 mark lightweight esports titles where raw horsepower matters less;
// values above 1.0 mark demanding titles that amplify the value of an
// upgrade.
type GameWeights map[string]float64

// DefaultGameWeights returns the built-in weight table.
func DefaultGameWeights() GameWeights {
	return GameWeights{
		"league of legends":          0.5,
		"minecraft":                  0.5,
		"valorant":                   0.6,
		"counter-strike 2":           0.7,
		"dota 2":                     0.7,
		"rocket league":              0.7,
		"fortnite":                   0.8,
		"overwatch 2":                0.8,
		"apex legends":               0.9,
		"the witcher 3":              1.1,
		"elden ring":                 1.1,
		"baldur's gate 3":            1.15,
		"hogwarts legacy":            1.2,
		"red dead redemption 2":      1.2,
		"starfield":                  1.25,
		"cyberpunk 2077":             1.3,
		"alan wake 2":                1.4,
		"microsoft flight simulator": 1.4,
	}
}

// NewGameWeights validates a raw weight map and normalizes its titles to
// lowercase. Multipliers must be positive.
func NewGameWeights(raw map[string]float64) (GameWeights, error) {
	w := make(GameWeights, len(raw))
	for title, mult := range raw {
		key := strings.ToLower(strings.TrimSpace(title))
		if key == "" {
			return nil, fmt.Errorf("game weight with empty title")
		}
		if mult <= 0 {
			return nil, fmt.Errorf("game weight for %q must be positive, got %v", title, mult)
		}
		w[key] = mult
	}
	return w, nil
}

// gameSeparators splits a raw games string into candidate titles.
func gameSeparators(r rune) bool {
	return r == ',' || r == ';' || r == '\n' || r == '\r'
}

// SplitGames parses a raw games string into normalized titles. Titles are
// separated by commas, semicolons, or newlines; each is trimmed and
// lowercased, and empty fragments are dropped.
func SplitGames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	fields := strings.FieldsFunc(raw, gameSeparators)
	titles := make([]string, 0, len(fields))
	for _, f := range fields {
		t := strings.ToLower(strings.TrimSpace(f))
		if t != "" {
			titles = append(titles, t)
		}
	}
	return titles
}

// MultiplierFor returns the demand multiplier for a set of titles: the
// maximum of the per-title multipliers, with unknown titles counting as
// DefaultGameMultiplier. An empty set yields DefaultGameMultiplier.
func (w GameWeights) MultiplierFor(titles []string) float64 {
	if len(titles) == 0 {
		return DefaultGameMultiplier
	}

	best := 0.0
	for _, t := range titles {
		mult, ok := w[t]
		if !ok {
			mult = DefaultGameMultiplier
		}
		if mult > best {
			best = mult
		}
	}
	return best
}

// Multiplier parses a raw games string and returns its demand multiplier.
func (w GameWeights) Multiplier(raw string) float64 {
	return w.MultiplierFor(SplitGames(raw))
}

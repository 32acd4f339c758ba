// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package advisor

import (
	"strings"
)

// perfRule maps card-family substrings to a baseline performance score.
type perfRule struct {
	patterns []string
	score    float64
}

// perfRules is ordered; the first rule with a matching substring wins.
// Order is significant: "rx 5700" contains "rx 570" and resolves to the
// earlier rule, and a name naming two card families resolves to whichever
// rule is listed first. Callers depend on this order staying fixed.
var perfRules = []perfRule{
	{patterns: []string{"1050", "rx 570"}, score: 40},
	{patterns: []string{"1060", "1660", "rx 580"}, score: 55},
	{patterns: []string{"2060", "2070", "rx 5600"}, score: 75},
	{patterns: []string{"3060", "6700"}, score: 90},
	{patterns: []string{"3070", "6800"}, score: 110},
	{patterns: []string{"4060"}, score: 100},
	{patterns: []string{"4070"}, score: 145},
}

// EstimateCurrentPerf scores the user's installed card. The name is
// lowercased and matched against the ordered card-family rules; when the
// name is empty or matches nothing, the score falls back to VRAM tiers.
// Total function: never errors, negative VRAM lands in the lowest tier.
func EstimateCurrentPerf(gpuName string, vramGB float64) float64 {
	name := strings.ToLower(strings.TrimSpace(gpuName))
	if name != "" {
		for _, rule := range perfRules {
			for _, p := range rule.patterns {
				if strings.Contains(name, p) {
					return rule.score
				}
			}
		}
	}

	return vramTierScore(vramGB)
}

// vramTierScore maps VRAM capacity to a coarse performance estimate for
// cards the name rules do not recognize.
func vramTierScore(vramGB float64) float64 {
	switch {
	case vramGB >= 12:
		return 100
	case vramGB >= 8:
		return 70
	case vramGB >= 6:
		return 55
	default:
		return 35
	}
}

// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package advisor

// resolutionMultipliers dampens candidate scores for higher render targets,
// where every card loses throughput.
var resolutionMultipliers = map[Resolution]float64{
	Resolution1080p: 1.0,
	Resolution1440p: 0.8,
	Resolution4K:    0.6,
}

// ResolutionMultiplier returns the score multiplier for a resolution. The
// boundary validates the enum, so unknown values cannot normally arrive;
// they fall back to the neutral 1.0 to keep the function total.
func ResolutionMultiplier(res Resolution) float64 {
	if m, ok := resolutionMultipliers[res]; ok {
		return m
	}
	return 1.0
}

// CPUBottleneckFactor dampens candidate scores when a weak CPU would cap
// the gains of a faster card. Zero or negative core counts mean the value
// was absent from the request and apply no damping.
func CPUBottleneckFactor(cores int) float64 {
	switch {
	case cores <= 0:
		return 1.0
	case cores <= 4:
		return 0.8
	case cores <= 6:
		return 0.92
	default:
		return 1.0
	}
}

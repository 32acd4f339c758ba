// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package advisor implements the recommendation engine: it scores every
eligible catalog entry against the user's current hardware and picks the
upgrade with the lowest cost per percent of gained performance.

The pipeline per request:

 1. Estimate the current card's performance from its name (ordered
    card-family substring rules) or, failing that, from VRAM tiers.
 2. Combine the damping factors: target resolution, the heaviest game the
    user plays, and CPU bottleneck.
 3. Filter the catalog by budget and form factor.
 4. Score each candidate: effective = perf * damping,
    gain = max(effective - current, 0), gain% relative to current, and
    cost per gained percent.
 5. Rank ascending by cost per point with a stable sort, so catalog order
    breaks ties. The first entry wins.

An empty candidate set is a business outcome, not an error: Recommend
returns a Result with NoCandidates set and a client-facing Reason. The
error return only fires on context cancellation.

All scoring runs on exact pipeline floats; the HTTP layer rounds for
display. The engine is stateless per request and safe for concurrent use.
*/
package advisor

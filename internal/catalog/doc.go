// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package catalog provides the static GPU upgrade catalog and the game weight
table that drive the recommendation engine.

The catalog ships with built-in data (see Default) and can be replaced at
startup by a YAML file (see Load), so operators can adjust prices and add
cards without a rebuild. Entries keep their file order; that order is the
tie-break between equally ranked candidates and is therefore part of the
observable contract.

Prices are decimal values so budget filtering never suffers float drift.
Performance scores are unitless relative throughput numbers used for ranking
only; they are not frame rates.

The game weight table maps lowercase titles to demand multipliers. A
request's games string is split on commas, semicolons, and newlines, and the
highest multiplier among the named titles wins. Unknown titles and an empty
list fall back to the neutral multiplier 1.0.

Both structures are immutable after construction and safe for concurrent
readers.
*/
package catalog

// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package links derives retailer purchase links from a catalog entry's
canonical product URL.

For each supported retailer (Amazon, Newegg, eBay) the builder either
decorates the canonical URL with that retailer's affiliate tracking
parameter (when the URL already points at the retailer) or synthesizes a
search URL carrying the canonical URL as the search query. The affiliate
tag comes from a single configuration value; when unset, tracking
parameters are omitted and everything else still works.

Link building never fails: a canonical URL that does not parse produces
a Links value with only the Canonical field set. A broken catalog URL
must never fail a recommendation.
*/
package links

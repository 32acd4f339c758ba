// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package models defines the wire-level data structures for the GPU Upgrade
Advisor API.

This package contains the request and response models shared between the HTTP
handlers and clients. It serves as the single source of truth for the public
JSON contract.

Key Components:

  - RecommendationRequest: Body of POST /api/v1/recommendations
  - RecommendationResponse: Body of POST /api/v1/recommendations responses
  - Recommendation: The winning upgrade candidate with affiliate links
  - APIResponse: Standardized wrapper for the supplementary endpoints
  - CatalogEntry / GameWeightEntry: Read-only catalog listings

Model Categories:

 1. Core Contract Models:
    The recommendation endpoint's shape is a stable client contract: success
    responses carry a "recommendation" object, business and error outcomes
    carry a bare "error" string. These bodies are never wrapped in
    APIResponse.

 2. Wrapped Endpoint Models:
    Supplementary endpoints (catalog, games, health) use APIResponse with a
    status string, data payload, response metadata, and structured APIError.

Presence Semantics:

Required request fields are pointers so validation can distinguish an absent
key from a present zero value. CurrentGPU is required but may be the empty
string; the advisor then estimates from VRAM instead of the card name.
*/
package models

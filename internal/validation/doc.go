// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It integrates
// with the application's API error format for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - JSON tag names in error messages (wire-format field names)
//   - Error translation to human-readable messages
//   - APIError conversion matching the application's error format
//   - MissingFields helper for required-field error reporting
//
// # Quick Start
//
//	type RecommendationRequest struct {
//	    Budget     *decimal.Decimal `json:"budget" validate:"required"`
//	    CurrentGPU *string          `json:"currentGpu" validate:"required"`
//	    FormFactor *string          `json:"formFactor" validate:"required,oneof=desktop laptop"`
//	    Resolution *string          `json:"resolution" validate:"required,oneof=1080p 1440p 4K"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    var req RecommendationRequest
//	    if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
//	        // handle decode error
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        if missing := verr.MissingFields(); len(missing) > 0 {
//	            // "Missing required fields: budget, resolution"
//	        }
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Pointer Fields and Presence
//
// Request models use pointer fields so that "required" distinguishes an
// absent JSON key (nil pointer, fails) from a present-but-zero value
// (non-nil pointer, passes). An empty currentGpu string is therefore valid
// input while a missing key is not.
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required     -> "budget is required"
//	gte=0        -> "vramGb must be greater than or equal to 0"
//	gt=0         -> "cpuCores must be greater than 0"
//	oneof=a b    -> "resolution must be one of: 1080p 1440p 4K"
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation

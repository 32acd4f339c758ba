// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// postRecommendation sends a JSON body to the Recommend handler directly
// and returns the recorder.
func postRecommendation(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Recommend(rec, req)
	return rec
}

// decodeBody decodes a response body into a generic map so tests can assert
// on key presence, not just values.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func TestRecommend_DesktopUpgradeUnderBudget(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 600,
		"currentGpu": "GTX 1060",
		"vramGb": 6,
		"formFactor": "desktop",
		"resolution": "1080p",
		"games": "valorant"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body %s)", http.StatusOK, rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	if _, hasErr := body["error"]; hasErr {
		t.Fatalf("Expected no error key, got %v", body["error"])
	}

	recommendation, ok := body["recommendation"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected recommendation object in response")
	}

	// GTX 1060 scores 55; valorant damps every candidate to 60% of its raw
	// score. The RTX 4060 wins on cost per point despite lower raw perf.
	if got := recommendation["id"]; got != "rtx-4060" {
		t.Errorf("Expected winner rtx-4060, got %v", got)
	}
	if got := recommendation["price"].(float64); got != 299 {
		t.Errorf("Expected price 299, got %v", got)
	}

	// gain = 130*0.6 - 55 = 23; percent = 23/55*100 = 41.8.. rounds to 42
	if got := recommendation["estFpsGainPercent"].(float64); got != 42 {
		t.Errorf("Expected estFpsGainPercent 42, got %v", got)
	}

	// 299 / 41.81.. = 7.1500.. rounds to 7.15
	cpp, ok := recommendation["costPerFpsPoint"].(float64)
	if !ok {
		t.Fatal("Expected numeric costPerFpsPoint")
	}
	if math.Abs(cpp-7.15) > 1e-9 {
		t.Errorf("Expected costPerFpsPoint 7.15, got %v", cpp)
	}

	urls, ok := recommendation["affiliateUrls"].(map[string]interface{})
	if !ok {
		t.Fatal("Expected affiliateUrls object")
	}
	if got := urls["canonical"]; got != "https://www.amazon.com/dp/B0C6W2J1HF" {
		t.Errorf("Expected canonical product URL, got %v", got)
	}
	for _, key := range []string{"amazon", "newegg", "ebay"} {
		if _, present := urls[key]; !present {
			t.Errorf("Expected %s link to be populated", key)
		}
	}
}

func TestRecommend_BudgetTooLowForAnyCandidate(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 50,
		"currentGpu": "GTX 1060",
		"formFactor": "desktop",
		"resolution": "1080p"
	}`)

	// No candidates is a business outcome, not a server fault.
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	if _, hasRec := body["recommendation"]; hasRec {
		t.Error("Expected no recommendation key for an unmatchable budget")
	}

	msg, ok := body["error"].(string)
	if !ok || msg == "" {
		t.Fatal("Expected explanatory error message")
	}
	if !strings.Contains(msg, "$50.00") || !strings.Contains(msg, "desktop") {
		t.Errorf("Expected message naming budget and form factor, got %q", msg)
	}
}

func TestRecommend_UnknownGPUFallsBackToVRAM(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 600,
		"currentGpu": "",
		"vramGb": 16,
		"formFactor": "desktop",
		"resolution": "1080p"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body %s)", http.StatusOK, rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	recommendation, ok := body["recommendation"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected recommendation object, got %v", body)
	}

	// 16 GB lands in the top VRAM tier, current perf 100. Against that
	// baseline the RTX 4070 (160 raw, gain 60%) is the cheapest per point;
	// a weaker estimate would have picked a different winner.
	if got := recommendation["id"]; got != "rtx-4070" {
		t.Errorf("Expected winner rtx-4070, got %v", got)
	}
	if got := recommendation["estFpsGainPercent"].(float64); got != 60 {
		t.Errorf("Expected estFpsGainPercent 60, got %v", got)
	}
}

func TestRecommend_LaptopOnlyMatchesLaptopAndBothFormFactors(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 1200,
		"currentGpu": "GTX 1060",
		"formFactor": "laptop",
		"resolution": "1080p"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	recommendation, ok := body["recommendation"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected recommendation object, got %v", body)
	}

	// The eGPU kit carries the "both" form factor and beats the laptop-only
	// RTX 4070 on cost per point.
	if got := recommendation["id"]; got != "rx-7600-xt-egpu" {
		t.Errorf("Expected winner rx-7600-xt-egpu, got %v", got)
	}
}

func TestRecommend_CPUBottleneckDampsGain(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 600,
		"currentGpu": "GTX 1060",
		"cpuCores": 4,
		"formFactor": "desktop",
		"resolution": "1080p"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	recommendation := body["recommendation"].(map[string]interface{})

	// 4 cores damp effective perf to 80%: 130*0.8 = 104, gain 49 over 55,
	// 89.09% rounds to 89. Without damping the gain would round to 136.
	if got := recommendation["estFpsGainPercent"].(float64); got != 89 {
		t.Errorf("Expected estFpsGainPercent 89 with CPU damping, got %v", got)
	}
}

func TestRecommend_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "empty_object",
			body:      `{}`,
			wantError: "Missing required fields: budget, currentGpu, formFactor, resolution",
		},
		{
			name:      "missing_budget",
			body:      `{"currentGpu": "GTX 1060", "formFactor": "desktop", "resolution": "1080p"}`,
			wantError: "Missing required fields: budget",
		},
		{
			name:      "missing_current_gpu",
			body:      `{"budget": 600, "formFactor": "desktop", "resolution": "1080p"}`,
			wantError: "Missing required fields: currentGpu",
		},
		{
			name:      "missing_form_factor",
			body:      `{"budget": 600, "currentGpu": "GTX 1060", "resolution": "1080p"}`,
			wantError: "Missing required fields: formFactor",
		},
		{
			name:      "missing_resolution",
			body:      `{"budget": 600, "currentGpu": "GTX 1060", "formFactor": "desktop"}`,
			wantError: "Missing required fields: resolution",
		},
		{
			name:      "null_budget",
			body:      `{"budget": null, "currentGpu": "GTX 1060", "formFactor": "desktop", "resolution": "1080p"}`,
			wantError: "Missing required fields: budget",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, "")
			rec := postRecommendation(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}

			body := decodeBody(t, rec)
			if got := body["error"]; got != tt.wantError {
				t.Errorf("Expected error %q, got %v", tt.wantError, got)
			}
		})
	}
}

func TestRecommend_EmptyCurrentGPUIsNotMissing(t *testing.T) {
	t.Parallel()

	// A present-but-empty currentGpu is a valid "unknown card" request and
	// must not be rejected as missing.
	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{
		"budget": 600,
		"currentGpu": "",
		"formFactor": "desktop",
		"resolution": "1080p"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body %s)", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestRecommend_InvalidEnumValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		wantSub string
	}{
		{
			name:    "bad_form_factor",
			body:    `{"budget": 600, "currentGpu": "GTX 1060", "formFactor": "console", "resolution": "1080p"}`,
			wantSub: "formFactor",
		},
		{
			name:    "bad_resolution",
			body:    `{"budget": 600, "currentGpu": "GTX 1060", "formFactor": "desktop", "resolution": "720p"}`,
			wantSub: "resolution",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, "")
			rec := postRecommendation(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}

			body := decodeBody(t, rec)
			msg, _ := body["error"].(string)
			if !strings.Contains(msg, tt.wantSub) {
				t.Errorf("Expected error naming %s, got %q", tt.wantSub, msg)
			}
		})
	}
}

func TestRecommend_NonPositiveBudget(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero", body: `{"budget": 0, "currentGpu": "GTX 1060", "formFactor": "desktop", "resolution": "1080p"}`},
		{name: "negative", body: `{"budget": -100, "currentGpu": "GTX 1060", "formFactor": "desktop", "resolution": "1080p"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t, "")
			rec := postRecommendation(t, h, tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
			}

			body := decodeBody(t, rec)
			if got := body["error"]; got != "budget must be greater than 0" {
				t.Errorf("Expected budget error, got %v", got)
			}
		})
	}
}

func TestRecommend_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	rec := postRecommendation(t, h, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	body := decodeBody(t, rec)
	if got := body["error"]; got != "Invalid JSON body" {
		t.Errorf("Expected error 'Invalid JSON body', got %v", got)
	}
}

func TestRecommend_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations", nil)
	rec := httptest.NewRecorder()

	h.Recommend(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status %d, got %d", http.StatusMethodNotAllowed, rec.Code)
	}

	body := decodeBody(t, rec)
	if got := body["error"]; got != "Method not allowed" {
		t.Errorf("Expected error 'Method not allowed', got %v", got)
	}
}

func TestRecommend_GamesListUsesHighestMultiplier(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")

	// cyberpunk 2077 (1.3) outweighs valorant (0.6); the max rule means the
	// demanding title dominates: 130*1.3 = 169, gain 114 over 55 -> 207%.
	rec := postRecommendation(t, h, `{
		"budget": 330,
		"currentGpu": "GTX 1060",
		"formFactor": "desktop",
		"resolution": "1080p",
		"games": "valorant, cyberpunk 2077"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	recommendation := body["recommendation"].(map[string]interface{})

	if got := recommendation["id"]; got != "rtx-4060" {
		t.Errorf("Expected winner rtx-4060 (only card under 330), got %v", got)
	}
	if got := recommendation["estFpsGainPercent"].(float64); got != 207 {
		t.Errorf("Expected estFpsGainPercent 207, got %v", got)
	}
}

func TestRecommend_AffiliateTagAppendedWhenConfigured(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "advisor-20")
	rec := postRecommendation(t, h, `{
		"budget": 600,
		"currentGpu": "GTX 1060",
		"formFactor": "desktop",
		"resolution": "1080p"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	recommendation := body["recommendation"].(map[string]interface{})
	urls := recommendation["affiliateUrls"].(map[string]interface{})

	amazon, ok := urls["amazon"].(string)
	if !ok {
		t.Fatal("Expected amazon link")
	}
	if !strings.Contains(amazon, "tag=advisor-20") {
		t.Errorf("Expected amazon link to carry the tracking tag, got %q", amazon)
	}

	// The canonical link stays untouched either way.
	if got := urls["canonical"].(string); strings.Contains(got, "advisor-20") {
		t.Errorf("Expected canonical URL without tracking tag, got %q", got)
	}
}

func TestRecommend_ResolutionDampsScores(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, "")

	// At 4K every candidate is damped to 60%: 130*0.6 = 78, gain 23 over
	// 55 -> 41.8% -> 42.
	rec := postRecommendation(t, h, `{
		"budget": 330,
		"currentGpu": "GTX 1060",
		"formFactor": "desktop",
		"resolution": "4K"
	}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
	}

	body := decodeBody(t, rec)
	recommendation := body["recommendation"].(map[string]interface{})
	if got := recommendation["estFpsGainPercent"].(float64); got != 42 {
		t.Errorf("Expected estFpsGainPercent 42 at 4K, got %v", got)
	}
}

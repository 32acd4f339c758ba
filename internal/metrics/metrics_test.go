// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{
			name:       "successful recommendation",
			method:     "POST",
			endpoint:   "/api/v1/recommendations",
			statusCode: "200",
			duration:   2 * time.Millisecond,
		},
		{
			name:       "catalog listing",
			method:     "GET",
			endpoint:   "/api/v1/catalog",
			statusCode: "200",
			duration:   1 * time.Millisecond,
		},
		{
			name:       "validation failure",
			method:     "POST",
			endpoint:   "/api/v1/recommendations",
			statusCode: "400",
			duration:   500 * time.Microsecond,
		},
		{
			name:       "not found",
			method:     "GET",
			endpoint:   "/api/v1/unknown",
			statusCode: "404",
			duration:   200 * time.Microsecond,
		},
		{
			name:       "internal server error",
			method:     "POST",
			endpoint:   "/api/v1/recommendations",
			statusCode: "500",
			duration:   5 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request - should not panic
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
		})
	}
}

// TestRecordRecommendation tests engine outcome metric recording
func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		name       string
		outcome    string
		candidates int
		duration   time.Duration
	}{
		{
			name:       "recommended with several candidates",
			outcome:    OutcomeRecommended,
			candidates: 4,
			duration:   50 * time.Microsecond,
		},
		{
			name:       "no candidates in budget",
			outcome:    OutcomeNoCandidates,
			candidates: 0,
			duration:   10 * time.Microsecond,
		},
		{
			name:       "single candidate",
			outcome:    OutcomeRecommended,
			candidates: 1,
			duration:   20 * time.Microsecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordRecommendation(tt.outcome, tt.candidates, tt.duration)
		})
	}
}

// TestRecordRateLimitHit tests rate limit hit counter
func TestRecordRateLimitHit(t *testing.T) {
	endpoints := []string{
		"/api/v1/recommendations",
		"/api/v1/catalog",
	}

	for _, endpoint := range endpoints {
		RecordRateLimitHit(endpoint)
	}
}

// TestSetCatalogSize tests catalog size gauge updates
func TestSetCatalogSize(t *testing.T) {
	sizes := []int{0, 8, 100, 8}

	for _, size := range sizes {
		SetCatalogSize(size)
	}
}

// TestTrackActiveRequests exercises the active request gauge lifecycle
func TestTrackActiveRequests(t *testing.T) {
	for i := 0; i < 10; i++ {
		APIActiveRequests.Inc()
	}
	for i := 0; i < 10; i++ {
		APIActiveRequests.Dec()
	}
}

// TestConcurrentMetricRecording tests thread safety of metric recording
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	numGoroutines := 50
	operationsPerGoroutine := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordAPIRequest("POST", "/api/v1/recommendations", "200", time.Duration(j)*time.Microsecond)
			}
		}()
	}

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < operationsPerGoroutine; j++ {
				RecordRecommendation(OutcomeRecommended, j%5, time.Duration(j)*time.Microsecond)
				APIActiveRequests.Inc()
				APIActiveRequests.Dec()
			}
		}()
	}

	wg.Wait()
}

// TestMetricsRegistration verifies all metrics are properly registered
func TestMetricsRegistration(t *testing.T) {
	metrics := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		RecommendationsTotal,
		RecommendationDuration,
		RecommendationCandidates,
		CatalogSize,
	}

	// Verify each metric can be described
	for _, m := range metrics {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)
	RecordRecommendation(OutcomeRecommended, 3, time.Millisecond)

	// Verify we can lint the metrics (checks for consistency issues)
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

// Benchmark tests for metrics performance

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("POST", "/api/v1/recommendations", "200", 2*time.Millisecond)
	}
}

func BenchmarkRecordRecommendation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRecommendation(OutcomeRecommended, 4, 50*time.Microsecond)
	}
}

// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package api

import (
	"io"
	"testing"
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/advisor"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/config"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/links"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/logging"
)

// newTestHandler builds a handler over the built-in catalog with the given
// affiliate tag. Engine logs are discarded.
func newTestHandler(t *testing.T, tag string) *Handler {
	t.Helper()

	cat := catalog.Default()
	engine, err := advisor.NewEngine(cat, nil, logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	cfg := testConfig()
	return NewHandler(engine, cat, links.NewBuilder(tag), cfg)
}

// newTestRouter builds a full router around a test handler. Rate limiting
// stays enabled with the default budgets, which no test comes close to.
func newTestRouter(t *testing.T, tag string) *Router {
	t.Helper()
	return NewRouter(newTestHandler(t, tag), testConfig())
}

// testConfig returns a config with defaults suitable for handler tests.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port: 8080,
			Host: "127.0.0.1",
		},
		API: config.APIConfig{
			MaxBodyBytes:   1 << 20,
			RequestTimeout: 10 * time.Second,
		},
		Security: config.SecurityConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
	}
}

func TestNewHandler(t *testing.T) {
	t.Parallel()

	handler := newTestHandler(t, "")

	if handler == nil {
		t.Fatal("NewHandler returned nil")
	}

	if handler.perfMon == nil {
		t.Error("Expected performance monitor to be initialized")
	}

	if handler.startTime.IsZero() {
		t.Error("Expected start time to be set")
	}

	if !handler.ready() {
		t.Error("Expected handler over the built-in catalog to be ready")
	}
}

func TestHandlerReady_MissingDependencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler *Handler
	}{
		{name: "nil_engine", handler: &Handler{catalog: catalog.Default()}},
		{name: "nil_catalog", handler: &Handler{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.handler.ready() {
				t.Error("Expected handler with missing dependencies to not be ready")
			}
		})
	}
}

func TestHandlerDefaults_NilConfig(t *testing.T) {
	t.Parallel()

	h := &Handler{}

	if got := h.requestTimeout(); got != 10*time.Second {
		t.Errorf("Expected default request timeout 10s, got %v", got)
	}

	if got := h.maxBodyBytes(); got != 1<<20 {
		t.Errorf("Expected default body cap 1MiB, got %d", got)
	}
}

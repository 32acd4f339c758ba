// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

// Command server runs the GPU Upgrade Advisor HTTP service.
//
// The service answers one question: given a budget, a current GPU, and a
// target resolution, which catalog GPU delivers the best estimated FPS gain
// for the money? Around that core it serves read-only catalog endpoints,
// health and readiness probes, Prometheus metrics, and an optional static
// frontend.
//
// # Startup Sequence
//
//  1. Load configuration (defaults, optional YAML file, environment variables)
//  2. Initialize structured logging
//  3. Load the GPU catalog and game weight table
//  4. Build the scoring engine and affiliate link builder
//  5. Register HTTP routes and start the server
//
// Each step logs its outcome. A failure in any step aborts startup with a
// non-zero exit code.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins):
//   - Environment variables (HTTP_PORT, AFFILIATE_TAG, CATALOG_PATH, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//
// # Example Usage
//
// Default catalog, affiliate tracking enabled:
//
//	export AFFILIATE_TAG=myshop-20
//	./gpu-upgrade-advisor
//
// Custom catalog file and frontend:
//
//	export CATALOG_PATH=/etc/gpu-advisor/catalog.yaml
//	export STATIC_DIR=/srv/gpu-advisor/web
//	./gpu-upgrade-advisor
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/advisor"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/api"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/catalog"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/config"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/links"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/logging"
	"github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/metrics"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal arrives.
const shutdownTimeout = 10 * time.Second

func main() {
	// Configuration must load before logging is configured, so failures
	// here go to stderr directly.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("log_level", cfg.Logging.Level).
		Msg("GPU Upgrade Advisor starting")

	cat, err := loadCatalog(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load GPU catalog")
	}
	metrics.SetCatalogSize(cat.Len())
	logging.Info().
		Int("gpus", cat.Len()).
		Int("game_weights", len(cat.Weights())).
		Msg("Catalog loaded")

	engine, err := advisor.NewEngine(cat, &advisor.EngineConfig{
		MaxGames: cfg.Advisor.MaxGames,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize scoring engine")
	}

	builder := links.NewBuilder(cfg.Affiliate.Tag)
	if cfg.Affiliate.Tag == "" {
		logging.Info().Msg("AFFILIATE_TAG not set, links are served without tracking parameters")
	}

	handler := api.NewHandler(engine, cat, builder, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", server.Addr).
			Str("static_dir", cfg.Server.StaticDir).
			Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown did not complete")
		os.Exit(1)
	}

	logging.Info().Msg("Server stopped")
}

// loadCatalog returns the catalog configured via CATALOG_PATH, falling back
// to the built-in data when no path is set.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.Catalog.Path)
}

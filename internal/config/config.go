// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

package config

import "time"

// Config holds all application configuration loaded from environment variables and config files.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	// cfg.Server.Port, cfg.Affiliate.Tag, etc. are now populated
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Affiliate AffiliateConfig `koanf:"affiliate"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Advisor   AdvisorConfig   `koanf:"advisor"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // Environment mode: "development", "staging", "production" (default: "development")
	StaticDir   string        `koanf:"static_dir"`  // Optional directory with the web UI; empty disables static serving
}

// APIConfig holds per-request API settings.
type APIConfig struct {
	// MaxBodyBytes caps the accepted JSON request body size.
	// Default: 1 MiB
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// RequestTimeout bounds recommendation computation per request.
	// Default: 10s
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// JSON is recommended for production (structured, machine-parseable).
	// Console is human-readable for development.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Adds slight performance overhead.
	// Default: false
	Caller bool `koanf:"caller"`
}

// AffiliateConfig holds retailer link tracking settings.
type AffiliateConfig struct {
	// Tag is the tracking tag appended to retailer links (AFFILIATE_TAG).
	// Empty disables tracking parameters; link building still works without it.
	Tag string `koanf:"tag"`
}

// CatalogConfig holds GPU catalog settings.
type CatalogConfig struct {
	// Path points to an optional YAML file replacing the built-in catalog
	// (CATALOG_PATH). Empty uses the built-in catalog.
	Path string `koanf:"path"`
}

// AdvisorConfig holds scoring engine settings.
type AdvisorConfig struct {
	// MaxGames caps how many game titles are parsed from one request.
	// Default: 32
	MaxGames int `koanf:"max_games"`
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
			StaticDir:   "",
		},
		API: APIConfig{
			MaxBodyBytes:   1 << 20,
			RequestTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Affiliate: AffiliateConfig{
			Tag: "",
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Advisor: AdvisorConfig{
			MaxGames: 32,
		},
	}
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development" || c.Server.Environment == ""
}

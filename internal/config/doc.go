// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

/*
Package config provides centralized configuration management for the advisor service.

Configuration is layered with koanf: built-in defaults first, then an
optional YAML config file, then environment variables (highest priority).
The loaded Config is validated and immutable afterwards.

# Environment Variables

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - SERVER_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)
  - STATIC_DIR: Optional web UI directory; empty disables static serving

API (APIConfig):
  - API_MAX_BODY_BYTES: Max accepted JSON body size (default: 1048576)
  - API_REQUEST_TIMEOUT: Per-request computation timeout (default: 10s)

Security (SecurityConfig):
  - RATE_LIMIT_REQS: Requests per window (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - RATE_LIMIT_DISABLED: Disable rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

Domain:
  - AFFILIATE_TAG: Tracking tag appended to retailer links (default: unset)
  - CATALOG_PATH: YAML file replacing the built-in GPU catalog (default: unset)
  - ADVISOR_MAX_GAMES: Max game titles parsed per request (default: 32)

Config file discovery:
  - CONFIG_PATH: Explicit config file path, else the first existing of
    config.yaml, config.yml, /etc/gpu-advisor/config.yaml, /etc/gpu-advisor/config.yml

# Usage Example

	import "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/config"

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load config")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

# Validation

The package validates after loading:

  - Numeric ranges: HTTP_PORT (1-65535), RATE_LIMIT_REQS (1-100000),
    ADVISOR_MAX_GAMES (1-1024), API_MAX_BODY_BYTES (>=1024)
  - Duration ranges: RATE_LIMIT_WINDOW (1s-1h), positive timeouts
  - Enumerations: LOG_LEVEL, LOG_FORMAT, ENVIRONMENT

Validation errors name the offending environment variable.
*/
package config

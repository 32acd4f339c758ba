// GPU Upgrade Advisor - Cost-Efficient GPU Upgrade Recommendations
// Copyright 2026 clmtsfinest858-cmd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/clmtsfinest858-cmd/gpu-upgrade-advisor

// Package logging provides centralized zerolog-based structured logging.
//
// The package wraps a single global zerolog logger configured once at
// startup. Production output is JSON; development output can use the
// human-readable console format.
//
// # Quick Start
//
//	import "github.com/clmtsfinest858-cmd/gpu-upgrade-advisor/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages with structured fields
//	logging.Info().Str("catalog", path).Msg("catalog loaded")
//	logging.Error().Err(err).Msg("request failed")
//
// # Log Levels
//
// Supported log levels (from most to least verbose):
//
//	trace  - Very detailed diagnostic information
//	debug  - Detailed diagnostic information
//	info   - General operational information (default)
//	warn   - Warning conditions that should be addressed
//	error  - Error conditions requiring attention
//	fatal  - Fatal errors that terminate the program
//
// # Structured Logging Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
//
// Use structured fields instead of string formatting:
//
//	logging.Info().
//	    Str("gpu", winner.ID).
//	    Int("candidates", n).
//	    Dur("elapsed", elapsed).
//	    Msg("recommendation computed")
//
// # Component Loggers
//
// Create component-specific loggers with default fields:
//
//	engineLogger := logging.WithComponent("advisor")
//	engineLogger.Info().Msg("engine ready")
//
// # Context-Aware Logging
//
// The request ID middleware stores a request-scoped logger and ID in the
// request context. Handlers retrieve them with Ctx:
//
//	logging.Ctx(ctx).Info().Msg("Processing request")
//
// # Output Formats
//
// JSON Format (Production):
//
//	{"level":"info","time":"2026-01-03T10:30:00Z","message":"Server starting","port":8080}
//
// Console Format (Development):
//
//	10:30:00 INF Server starting port=8080
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger
// is protected by sync.RWMutex for configuration changes.
//
// # Testing
//
// Create test loggers that capture output:
//
//	var buf bytes.Buffer
//	logger := logging.NewTestLogger(&buf)
//	logger.Info().Msg("test message")
//	output := buf.String()
package logging

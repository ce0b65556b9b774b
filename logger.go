// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package lightfield

import (
	"log/slog"

	"github.com/gogpu/lightfield/internal/logging"
)

// SetLogger configures the logger for lightfield and all its sub-packages.
// By default, lightfield produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by lightfield:
//   - [slog.LevelDebug]: resizes, skipped pipeline slots, decoded images
//   - [slog.LevelInfo]: lifecycle events (calibration resolved, driver running)
//   - [slog.LevelWarn]: non-fatal issues (optional feature missing, default
//     calibration substituted, failed draws)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	lightfield.SetLogger(slog.Default())
//
//	// Enable debug-level logging for full diagnostics:
//	lightfield.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// Logger returns the current logger used by lightfield.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}

// Package logging provides structured logging on top of log/slog.
//
// # Overview
//
//   - JSON, text, and console output formats
//   - Configurable log levels (debug, info, warn, error)
//   - Run-scoped context fields: run_id, table, file
//
// # Usage
//
//	logger, err := logging.New(logging.Config{Level: "info", Format: "json"})
//
//	ctx := logging.WithRunID(ctx, report.RunID)
//	logger.InfoContext(ctx, "Report written", "path", path)
//
// Libraries that take a *slog.Logger receive logger.Slog().
package logging

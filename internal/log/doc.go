// Package log provides logging with automatic truncation of oversized
// attribute values, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of long string attributes (input texts, rendered documents)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// The TruncatingHandler clamps string attribute values to a rune budget
// before they reach the underlying handler, so logging a snapshot's input
// text or a rendered document never floods the log output. Truncation is
// rune-aware and will not cut multi-byte CJK characters in half.
//
// # Usage
//
//	// Create a logger with truncation
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("rendering report",
//	    "input", snapshot.InputText, // Clamped to 256 runes
//	    "format", "markdown",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log

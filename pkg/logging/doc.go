// Package logging provides structured logging configuration for randr.
//
// This package wraps log/slog so every command logs the same way. Diagnostics
// always go to stderr; stdout is reserved for generated samples.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatText,
//	})
//
//	logger.Debug("resolved format", "input", "geo", "format", "GEO")
//
// The CLI logs at warn level by default. --log-level picks another level and
// --verbose forces debug.
//
// # Output Formats
//
//   - Text: human-readable key=value pairs
//   - JSON: one object per line
//
// Components that accept a *slog.Logger should fall back to Nop() when none
// is provided.
package logging

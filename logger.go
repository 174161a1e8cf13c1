package texel

import "log/slog"

import "github.com/tinne26/texel/internal/tracing"

// Configures the logger for texel and all its subpackages. By
// default, nothing is logged. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: invalid fonts, skipped override records,
//     layout pass summaries.
//   - [slog.LevelWarn]: geometry truncated due to too many quads.
func SetLogger(logger *slog.Logger) { tracing.SetLogger(logger) }

// Returns the current logger. Never nil.
func Logger() *slog.Logger { return tracing.Logger() }

// Package tracing holds the logger shared by texel and its
// subpackages, so they can all log through the same handler
// without importing the root package.
package tracing

import "context"
import "log/slog"
import "sync/atomic"

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Stores the logger. A nil logger restores the silent default.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger. Never nil.
func Logger() *slog.Logger { return loggerPtr.Load() }

// Reports whether the current logger would emit records
// at the given level. Useful to skip building expensive
// attributes on hot paths.
func Enabled(level slog.Level) bool {
	return loggerPtr.Load().Enabled(context.Background(), level)
}

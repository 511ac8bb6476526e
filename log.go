//go:build !ios && !android && (amd64 || arm64)

package uigo

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/obinnaokechukwu/uigo/internal/dispatch"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
	dispatch.SetLogger(l)
}

// SetLogger configures the logger for uigo and its internal packages.
// By default uigo produces no log output. Pass nil to restore silence.
//
// Log levels used by uigo:
//   - [slog.LevelDebug]: callback handles bound, replaced and released
//   - [slog.LevelInfo]: toolkit init and uninit, library path
//   - [slog.LevelWarn]: release failures, unsupported optional symbols
//   - [slog.LevelError]: a callback reached a stale handle (followed by a panic)
//
// Example:
//
//	uigo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	dispatch.SetLogger(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

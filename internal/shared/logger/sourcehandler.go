package logger

import (
	"context"
	"log/slog"
	"runtime"
)

// sourceHandler attaches the caller location to records at or above
// a threshold level. The wrapped handler must have AddSource disabled.
type sourceHandler struct {
	next      slog.Handler
	threshold slog.Level
}

// NewSourceHandler wraps next so that records with level >= threshold carry
// a source attribute. Debug and info lines stay compact in production while
// warnings and errors point at the code that emitted them.
func NewSourceHandler(next slog.Handler, threshold slog.Level) slog.Handler {
	return &sourceHandler{next: next, threshold: threshold}
}

func (h *sourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.threshold {
		// skip runtime.Callers, Handle and the slog frame
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		f, _ := runtime.CallersFrames(pcs[:]).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: f.Function,
			File:     f.File,
			Line:     f.Line,
		}))
	}
	return h.next.Handle(ctx, r)
}

func (h *sourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sourceHandler{next: h.next.WithAttrs(attrs), threshold: h.threshold}
}

func (h *sourceHandler) WithGroup(name string) slog.Handler {
	return &sourceHandler{next: h.next.WithGroup(name), threshold: h.threshold}
}

func (h *sourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

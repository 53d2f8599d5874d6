// Package logging builds the structured console logger shared by every
// component of a run.
package logging

import (
	"context"
	"io"
	"log/slog"
)

// LevelCritical sits above slog.LevelError and marks conditions the user
// must notice even when the run recovers from them.
const LevelCritical = slog.LevelError + 4

// Options selects the verbosity of the logger.
type Options struct {
	Verbose bool // debug and above
	Quiet   bool // warnings and above; wins over Verbose
}

// Level returns the minimum level implied by the options.
func (o Options) Level() slog.Level {
	switch {
	case o.Quiet:
		return slog.LevelWarn
	case o.Verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// New returns a text logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       opts.Level(),
		ReplaceAttr: replaceLevel,
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything. Used by tests and by
// callers that have no console.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Critical logs msg at LevelCritical.
func Critical(l *slog.Logger, msg string, args ...any) {
	l.Log(context.Background(), LevelCritical, msg, args...)
}

func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}

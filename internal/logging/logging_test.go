package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelInfo},
		{"verbose", Options{Verbose: true}, slog.LevelDebug},
		{"quiet", Options{Quiet: true}, slog.LevelWarn},
		{"quiet wins", Options{Verbose: true, Quiet: true}, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Level())
		})
	}
}

func TestCriticalRendersLevelName(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{Quiet: true})

	Critical(log, "missing structure", "name", "huge")

	out := buf.String()
	assert.Contains(t, out, "level=CRITICAL")
	assert.Contains(t, out, `msg="missing structure"`)
	assert.Contains(t, out, "name=huge")
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, Options{})

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

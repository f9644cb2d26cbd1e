package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopLogger(t *testing.T) {
	l := NopLogger{}
	// None of these may panic.
	l.Debug("m", "k", "v")
	l.Info("m", "k", "v")
	l.Warn("m", "k", "v")
	l.Error("m", "k", "v")

	_, ok := l.With("k", "v").(NopLogger)
	assert.True(t, ok, "With should return NopLogger")
}

func TestSlogAdapter(t *testing.T) {
	t.Run("nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.NotNil(t, adapter.logger)
	})

	t.Run("writes all levels with attrs", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		logger := NewSlogAdapter(slog.New(handler))

		logger.Debug("debug message", "key", "debug")
		logger.Info("info message")
		logger.Warn("warn message")
		logger.Error("error message")

		out := buf.String()
		for _, want := range []string{"debug message", "key=debug", "info message", "warn message", "error message"} {
			assert.Contains(t, out, want)
		}
	})

	t.Run("With prepends attrs", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, nil)))
		logger.With("stage", "assemble").Warn("skipped")
		assert.Contains(t, buf.String(), "stage=assemble")
	})
}

func TestOrNop(t *testing.T) {
	_, ok := OrNop(nil).(NopLogger)
	assert.True(t, ok)

	adapter := NewSlogAdapter(nil)
	assert.Same(t, adapter, OrNop(adapter))
}

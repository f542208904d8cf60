package slogdedup

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newLogger(buf *bytes.Buffer, opts Options) *slog.Logger {
	return slog.New(New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}), opts))
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSpace(buf.String()), "\n")
}

func TestHandler(t *testing.T) {
	t.Run("suppresses repeated message", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, Options{})

		logger.Info("url already exists", slog.String("long_url", "https://a.com"))
		logger.Info("url already exists", slog.String("long_url", "https://b.com"))

		assert.Len(t, lines(&buf), 1)
	})

	t.Run("level is part of the key", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, Options{})

		logger.Info("store error")
		logger.Error("store error")
		logger.Info("other message")

		assert.Len(t, lines(&buf), 3)
	})

	t.Run("derived loggers share the cache", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, Options{})

		logger.Info("starting")
		logger.With(slog.String("op", "x")).Info("starting")
		logger.WithGroup("g").Info("starting")

		assert.Len(t, lines(&buf), 1)
	})

	t.Run("message is logged again after the window", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, Options{Window: 20 * time.Millisecond})

		logger.Info("tick")
		time.Sleep(60 * time.Millisecond)
		logger.Info("tick")

		assert.Len(t, lines(&buf), 2)
	})

	t.Run("negative window disables suppression", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger(&buf, Options{Window: -1})

		logger.Info("tick")
		logger.Info("tick")

		assert.Len(t, lines(&buf), 2)
	})

	t.Run("disabled levels are not recorded", func(t *testing.T) {
		var buf bytes.Buffer
		next := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		h := New(next, Options{})

		assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	})
}

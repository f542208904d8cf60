package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/short-url/internal/config"
	"github.com/vadimbarashkov/short-url/pkg/slogdedup"
)

const serviceName = "short-url"

var logWriter io.Writer = os.Stdout

// newHTTPLogger builds the request logger. Its handler is shared with the
// application logger.
func newHTTPLogger(cfg *config.Config) (*httplog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	return httplog.NewLogger(serviceName, httplog.Options{
		LogLevel:        level,
		JSON:            cfg.Log.JSON,
		Concise:         cfg.Log.Concise,
		TimeFieldFormat: time.RFC3339,
		Tags: map[string]string{
			"env": cfg.Env,
		},
		Writer: logWriter,
	}), nil
}

// newAppLogger wraps the request logger's handler so that a message repeated
// within the dedup window is written once.
func newAppLogger(httpLogger *httplog.Logger, cfg config.Log) *slog.Logger {
	return slog.New(slogdedup.New(httpLogger.Logger.Handler(), slogdedup.Options{
		Window: cfg.DedupWindow,
		Size:   cfg.DedupSize,
	}))
}

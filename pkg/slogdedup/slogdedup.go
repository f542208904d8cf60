// Package slogdedup provides a slog.Handler that drops records repeating the
// same level and message within a time window.
package slogdedup

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultWindow = time.Minute
	DefaultSize   = 1000
)

type Options struct {
	// Window is how long a level and message pair stays suppressed after it
	// was first written. Zero means DefaultWindow, a negative value disables
	// suppression.
	Window time.Duration
	// Size caps the number of tracked pairs. Zero means DefaultSize.
	Size int
}

type cache struct {
	mu   sync.Mutex
	seen *expirable.LRU[string, struct{}]
}

// firstSeen records key and reports whether it was absent.
func (c *cache) firstSeen(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen.Get(key); ok {
		return false
	}
	c.seen.Add(key, struct{}{})

	return true
}

type Handler struct {
	next  slog.Handler
	cache *cache
}

// New wraps next. Handlers derived through WithAttrs and WithGroup share
// the same suppression cache.
func New(next slog.Handler, opts Options) slog.Handler {
	if opts.Window < 0 {
		return next
	}
	if opts.Window == 0 {
		opts.Window = DefaultWindow
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}

	return &Handler{
		next: next,
		cache: &cache{
			seen: expirable.NewLRU[string, struct{}](opts.Size, nil, opts.Window),
		},
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if !h.cache.firstSeen(r.Level.String() + ":" + r.Message) {
		return nil
	}

	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{next: h.next.WithAttrs(attrs), cache: h.cache}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{next: h.next.WithGroup(name), cache: h.cache}
}

// Package registry owns the persistence of URL mappings. It generates short
// codes, stamps timestamps and bounds every store call with a timeout.
package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vadimbarashkov/short-url/internal/entity"
)

const (
	defaultTimeout     = 5 * time.Second
	defaultMaxAttempts = 5
)

// Store is the persistence contract the registry works on.
type Store interface {
	// ExistsByLongURL reports whether any mapping has exactly this long URL.
	ExistsByLongURL(ctx context.Context, longURL string) (bool, error)

	// Save inserts the mapping and returns the stored record with its ID assigned.
	// Returns entity.ErrShortCodeExists when the short code is already taken.
	Save(ctx context.Context, mapping *entity.URLMapping) (*entity.URLMapping, error)

	// List returns every mapping ordered by ID.
	List(ctx context.Context) ([]entity.URLMapping, error)
}

// Generator produces short codes.
type Generator interface {
	Generate() (string, error)
}

type Option func(*Registry)

// WithTimeout bounds each store call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithMaxAttempts sets how many codes are tried when the store reports a
// short code collision. Non-positive values are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// Registry is the persistence-backed URL registry.
type Registry struct {
	store       Store
	gen         Generator
	timeout     time.Duration
	maxAttempts int
	now         func() time.Time
}

func New(store Store, gen Generator, opts ...Option) *Registry {
	r := &Registry{
		store:       store,
		gen:         gen,
		timeout:     defaultTimeout,
		maxAttempts: defaultMaxAttempts,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ExistsByLongURL reports whether a mapping with exactly longURL exists.
// The comparison is case-sensitive and applies no normalization.
func (r *Registry) ExistsByLongURL(ctx context.Context, longURL string) (bool, error) {
	const op = "registry.Registry.ExistsByLongURL"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	exists, err := r.store.ExistsByLongURL(ctx, longURL)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, storeError(ctx, err))
	}

	return exists, nil
}

// Create generates a short code and persists a new mapping for longURL.
// It does not check whether longURL is already registered.
//
// Short codes are not checked before the insert. When the store rejects a
// code as taken, a fresh one is generated, up to the configured attempts.
func (r *Registry) Create(ctx context.Context, longURL string, name *string) (*entity.URLMapping, error) {
	const op = "registry.Registry.Create"

	for i := 0; i < r.maxAttempts; i++ {
		code, err := r.gen.Generate()
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate short code: %w", op, err)
		}

		now := r.now().UTC()
		mapping := &entity.URLMapping{
			Name:      name,
			LongURL:   longURL,
			ShortURL:  code,
			CreatedAt: now,
			UpdatedAt: now,
		}

		saved, err := r.save(ctx, mapping)
		if err != nil {
			if errors.Is(err, entity.ErrShortCodeExists) {
				continue
			}

			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return saved, nil
	}

	return nil, fmt.Errorf("%s: %w", op, entity.ErrMaxAttemptsExceeded)
}

func (r *Registry) save(ctx context.Context, mapping *entity.URLMapping) (*entity.URLMapping, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	saved, err := r.store.Save(ctx, mapping)
	if err != nil {
		if errors.Is(err, entity.ErrShortCodeExists) {
			return nil, err
		}

		return nil, storeError(ctx, err)
	}

	return saved, nil
}

// ListAll returns every mapping in insertion order.
func (r *Registry) ListAll(ctx context.Context) ([]entity.URLMapping, error) {
	const op = "registry.Registry.ListAll"

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	mappings, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storeError(ctx, err))
	}

	if mappings == nil {
		mappings = []entity.URLMapping{}
	}

	return mappings, nil
}

// storeError tags err with the store kind, using the timeout variant when
// the call's deadline has passed.
func storeError(ctx context.Context, err error) error {
	if errors.Is(err, entity.ErrStoreUnavailable) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", entity.ErrStoreTimeout, err)
	}

	return fmt.Errorf("%w: %w", entity.ErrStoreUnavailable, err)
}

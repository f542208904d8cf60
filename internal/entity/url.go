// Package entity defines the entities and errors used in the application.
// It includes the URLMapping struct, which ties a long URL to its generated
// short code, and the error kinds shared by every layer.
package entity

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrValidation is returned when the caller supplied missing or malformed input.
	ErrValidation = errors.New("validation error")
	// ErrConflict is returned when a mapping for the same long URL already exists.
	ErrConflict = errors.New("url already exists")
	// ErrStoreUnavailable is returned when the persistence layer fails or cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrStoreTimeout is the timeout variant of ErrStoreUnavailable.
	ErrStoreTimeout = fmt.Errorf("%w: timeout exceeded", ErrStoreUnavailable)
	// ErrInternal is the catch-all kind reported by the orchestration layer.
	ErrInternal = errors.New("internal error")

	// ErrInvalidArgument is returned by the short code generator on bad parameters.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrShortCodeExists is returned by a store when the short code is already taken.
	ErrShortCodeExists = errors.New("short code exists")
	// ErrMaxAttemptsExceeded is returned when every generated short code collided.
	ErrMaxAttemptsExceeded = errors.New("maximum attempts exceeded for generating short code")
)

// URLMapping represents a shortened URL.
type URLMapping struct {
	ID        int64     // ID is the identifier assigned by the store.
	Name      *string   // Name is an optional human label, nil when absent.
	LongURL   string    // LongURL is the original URL and the dedup key.
	ShortURL  string    // ShortURL is the generated short code.
	CreatedAt time.Time // CreatedAt is the timestamp when the mapping was created.
	UpdatedAt time.Time // UpdatedAt is set together with CreatedAt.
}

// Package memory provides an in-process URL mapping store. It is used when
// the service runs without a database and as a fake in tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vadimbarashkov/short-url/internal/entity"
)

type URLRepository struct {
	mu       sync.RWMutex
	lastID   int64
	mappings []entity.URLMapping
	byShort  map[string]struct{}
}

func NewURLRepository() *URLRepository {
	return &URLRepository{
		byShort: make(map[string]struct{}),
	}
}

func (r *URLRepository) ExistsByLongURL(ctx context.Context, longURL string) (bool, error) {
	const op = "adapter.repository.memory.URLRepository.ExistsByLongURL"

	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.mappings {
		if m.LongURL == longURL {
			return true, nil
		}
	}

	return false, nil
}

func (r *URLRepository) Save(ctx context.Context, mapping *entity.URLMapping) (*entity.URLMapping, error) {
	const op = "adapter.repository.memory.URLRepository.Save"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byShort[mapping.ShortURL]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
	}

	r.lastID++

	saved := *mapping
	saved.ID = r.lastID
	if mapping.Name != nil {
		name := *mapping.Name
		saved.Name = &name
	}

	r.byShort[saved.ShortURL] = struct{}{}
	r.mappings = append(r.mappings, saved)

	return copyMapping(saved), nil
}

func (r *URLRepository) List(ctx context.Context) ([]entity.URLMapping, error) {
	const op = "adapter.repository.memory.URLRepository.List"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	mappings := make([]entity.URLMapping, 0, len(r.mappings))
	for _, m := range r.mappings {
		mappings = append(mappings, *copyMapping(m))
	}

	return mappings, nil
}

// copyMapping detaches the returned value from stored state.
func copyMapping(m entity.URLMapping) *entity.URLMapping {
	if m.Name != nil {
		name := *m.Name
		m.Name = &name
	}
	return &m
}

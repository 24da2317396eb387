package apptheme

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu    sync.RWMutex
	theme *Theme
}

// NewInMemoryRepository creates a new in-memory theme repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Get retrieves the current theme, or the default when none was stored.
func (r *InMemoryRepository) Get(_ context.Context) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.theme == nil {
		return DefaultTheme(), nil
	}
	return *r.theme, nil
}

// Set overwrites the stored theme.
func (r *InMemoryRepository) Set(_ context.Context, theme Theme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = &theme
	return nil
}

package sales

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu    sync.RWMutex
	sales []*Sale // newest first
}

// NewInMemoryRepository creates a new in-memory sale ledger.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert appends a sale to the ledger.
func (r *InMemoryRepository) Insert(_ context.Context, sale *Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *sale
	r.sales = append([]*Sale{&copied}, r.sales...)
	return nil
}

// List retrieves all sales, newest first.
func (r *InMemoryRepository) List(_ context.Context) ([]*Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Sale, len(r.sales))
	for i, s := range r.sales {
		copied := *s
		out[i] = &copied
	}
	return out, nil
}

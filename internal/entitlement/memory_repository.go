package entitlement

import (
	"context"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewInMemoryRepository creates a new in-memory entitlement repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		records: make(map[string]*Record),
	}
}

// Get retrieves the record for a device.
func (r *InMemoryRepository) Get(_ context.Context, deviceID string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[deviceID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	copied := *rec
	return &copied, nil
}

// Save creates or replaces the record for a device.
func (r *InMemoryRepository) Save(_ context.Context, rec *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *rec
	r.records[rec.DeviceID] = &copied
	return nil
}

// List retrieves all records.
func (r *InMemoryRepository) List(_ context.Context) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*Record, 0, len(r.records))
	for _, rec := range r.records {
		copied := *rec
		records = append(records, &copied)
	}
	return records, nil
}

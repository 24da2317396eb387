package device

import (
	"context"
	"sync"
	"time"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu         sync.RWMutex
	identities map[string]*Identity
}

// NewInMemoryRepository creates a new in-memory device repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		identities: make(map[string]*Identity),
	}
}

// Get retrieves an identity by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, ok := r.identities[id]
	if !ok {
		return nil, ErrIdentityNotFound
	}

	copied := *identity
	return &copied, nil
}

// Create persists a new identity.
func (r *InMemoryRepository) Create(_ context.Context, identity *Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.identities[identity.ID]; ok {
		return ErrIdentityExists
	}

	copied := *identity
	r.identities[identity.ID] = &copied
	return nil
}

// Touch updates the last-seen timestamp of an identity.
func (r *InMemoryRepository) Touch(_ context.Context, id string, seenAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	identity, ok := r.identities[id]
	if !ok {
		return ErrIdentityNotFound
	}

	identity.LastSeenAt = seenAt
	return nil
}

package device

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"
)

// createAttempts bounds the retry loop on ID collisions. With a 36^6 keyspace
// collisions are rare; more than a few retries means the repository is broken.
const createAttempts = 5

// Service provides device identity operations.
type Service struct {
	repo Repository
}

// NewService creates a new device service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetOrCreate resolves an installation identity.
//
// If id names a known identity it is returned unchanged (identities are never
// regenerated once issued). An empty or unknown id provisions a fresh identity.
// Returns the identity and whether it was newly created.
func (s *Service) GetOrCreate(ctx context.Context, id string) (*Identity, bool, error) {
	if id != "" {
		identity, err := s.repo.Get(ctx, id)
		if err == nil {
			_ = s.repo.Touch(ctx, id, time.Now())
			return identity, false, nil
		}
		if !errors.Is(err, ErrIdentityNotFound) {
			return nil, false, err
		}
	}

	now := time.Now()
	for attempt := 0; attempt < createAttempts; attempt++ {
		identity := &Identity{
			ID:         NewID(),
			CreatedAt:  now,
			LastSeenAt: now,
		}

		err := s.repo.Create(ctx, identity)
		if err == nil {
			return identity, true, nil
		}
		if !errors.Is(err, ErrIdentityExists) {
			return nil, false, err
		}
	}

	return nil, false, fmt.Errorf("exhausted %d attempts to create a device identity", createAttempts)
}

// NewID generates a 6-character uppercase alphanumeric identifier.
func NewID() string {
	buf := make([]byte, IDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails if the OS entropy source is broken.
		panic(fmt.Sprintf("device: reading random bytes: %v", err))
	}

	id := make([]byte, IDLength)
	for i, b := range buf {
		id[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(id)
}

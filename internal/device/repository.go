package device

import (
	"context"
	"time"
)

// Repository defines the interface for device identity persistence.
type Repository interface {
	// Get retrieves an identity by ID.
	Get(ctx context.Context, id string) (*Identity, error)

	// Create persists a new identity.
	Create(ctx context.Context, identity *Identity) error

	// Touch updates the last-seen timestamp of an identity.
	Touch(ctx context.Context, id string, seenAt time.Time) error
}

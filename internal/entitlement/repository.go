package entitlement

import "context"

// Repository defines the interface for entitlement record persistence.
type Repository interface {
	// Get retrieves the record for a device.
	// Returns ErrRecordNotFound when absent or unreadable.
	Get(ctx context.Context, deviceID string) (*Record, error)

	// Save creates or replaces the record for a device.
	Save(ctx context.Context, rec *Record) error

	// List retrieves all records. Used by the sweep job.
	List(ctx context.Context) ([]*Record, error)
}

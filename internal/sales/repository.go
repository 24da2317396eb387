package sales

import "context"

// Repository defines the interface for sale ledger persistence.
type Repository interface {
	// Insert appends a sale to the ledger.
	Insert(ctx context.Context, sale *Sale) error

	// List retrieves all sales, newest first.
	List(ctx context.Context) ([]*Sale, error)
}

package stats

import "context"

// Repository defines the interface for daily stat persistence.
type Repository interface {
	// IncrementVisits adds one visit to the given day, creating the row if needed.
	IncrementVisits(ctx context.Context, day string) error

	// IncrementGenerations adds one generated sermon to the given day,
	// creating the row (with one implied visit) if needed.
	IncrementGenerations(ctx context.Context, day string) error

	// MarkVisited records that a device already counted a visit on a day.
	// Returns true if this is the first visit mark for the pair.
	MarkVisited(ctx context.Context, deviceID, day string) (bool, error)

	// List retrieves all daily stats, newest day first.
	List(ctx context.Context) ([]*DailyStat, error)
}

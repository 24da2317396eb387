package stats

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// This is intended for testing. Production should use the PostgreSQL implementation.
type InMemoryRepository struct {
	mu      sync.Mutex
	days    map[string]*DailyStat
	visited map[string]bool // deviceID + "|" + day
}

// NewInMemoryRepository creates a new in-memory stats repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		days:    make(map[string]*DailyStat),
		visited: make(map[string]bool),
	}
}

// IncrementVisits adds one visit to the given day.
func (r *InMemoryRepository) IncrementVisits(_ context.Context, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.row(day).Visits++
	return nil
}

// IncrementGenerations adds one generated sermon to the given day.
func (r *InMemoryRepository) IncrementGenerations(_ context.Context, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, existed := r.days[day]
	if !existed {
		row = r.row(day)
		row.Visits = 1
	}
	row.SermonsGenerated++
	return nil
}

// MarkVisited records a device/day visit mark.
func (r *InMemoryRepository) MarkVisited(_ context.Context, deviceID, day string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := deviceID + "|" + day
	if r.visited[key] {
		return false, nil
	}
	r.visited[key] = true
	return true, nil
}

// List retrieves all daily stats, newest day first.
func (r *InMemoryRepository) List(_ context.Context) ([]*DailyStat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*DailyStat, 0, len(r.days))
	for _, row := range r.days {
		copied := *row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// row returns the stat row for a day, creating it if absent. Callers hold the lock.
func (r *InMemoryRepository) row(day string) *DailyStat {
	if row, ok := r.days[day]; ok {
		return row
	}
	row := &DailyStat{Date: day}
	r.days[day] = row
	return row
}

package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL stats repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// IncrementVisits adds one visit to the given day.
func (r *PostgresRepository) IncrementVisits(ctx context.Context, day string) error {
	query := `
		INSERT INTO daily_stats (day, visits, sermons_generated)
		VALUES ($1, 1, 0)
		ON CONFLICT (day) DO UPDATE SET
			visits = daily_stats.visits + 1
	`

	_, err := r.pool.Exec(ctx, query, day)
	return err
}

// IncrementGenerations adds one generated sermon to the given day.
// A row created here starts with one implied visit, matching the counters
// written by earlier client releases.
func (r *PostgresRepository) IncrementGenerations(ctx context.Context, day string) error {
	query := `
		INSERT INTO daily_stats (day, visits, sermons_generated)
		VALUES ($1, 1, 1)
		ON CONFLICT (day) DO UPDATE SET
			sermons_generated = daily_stats.sermons_generated + 1
	`

	_, err := r.pool.Exec(ctx, query, day)
	return err
}

// MarkVisited records a device/day visit mark.
func (r *PostgresRepository) MarkVisited(ctx context.Context, deviceID, day string) (bool, error) {
	query := `
		INSERT INTO visit_marks (device_id, day)
		VALUES ($1, $2)
		ON CONFLICT (device_id, day) DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query, deviceID, day)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// List retrieves all daily stats, newest day first.
func (r *PostgresRepository) List(ctx context.Context) ([]*DailyStat, error) {
	query := `
		SELECT day, visits, sermons_generated
		FROM daily_stats
		ORDER BY day DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DailyStat
	for rows.Next() {
		var row DailyStat
		if err := rows.Scan(&row.Date, &row.Visits, &row.SermonsGenerated); err != nil {
			return nil, err
		}
		out = append(out, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

package sales

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL sale ledger.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert appends a sale to the ledger.
func (r *PostgresRepository) Insert(ctx context.Context, sale *Sale) error {
	query := `
		INSERT INTO sales (id, phone_number, device_id, plan_name, price, sold_at, key, duration_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		sale.ID,
		sale.PhoneNumber,
		sale.DeviceID,
		sale.PlanName,
		sale.Price,
		sale.Date,
		sale.Key,
		sale.DurationDays,
	)
	return err
}

// List retrieves all sales, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Sale, error) {
	query := `
		SELECT id, phone_number, device_id, plan_name, price, sold_at, key, duration_days
		FROM sales
		ORDER BY sold_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Sale
	for rows.Next() {
		var sale Sale
		err := rows.Scan(
			&sale.ID,
			&sale.PhoneNumber,
			&sale.DeviceID,
			&sale.PlanName,
			&sale.Price,
			&sale.Date,
			&sale.Key,
			&sale.DurationDays,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

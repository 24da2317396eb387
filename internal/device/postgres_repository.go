package device

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL device repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves an identity by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*Identity, error) {
	query := `
		SELECT id, created_at, last_seen_at
		FROM device_identities
		WHERE id = $1
	`

	var identity Identity
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&identity.ID,
		&identity.CreatedAt,
		&identity.LastSeenAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}

	return &identity, nil
}

// Create persists a new identity.
func (r *PostgresRepository) Create(ctx context.Context, identity *Identity) error {
	query := `
		INSERT INTO device_identities (id, created_at, last_seen_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, identity.ID, identity.CreatedAt, identity.LastSeenAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrIdentityExists
		}
		return err
	}

	return nil
}

// Touch updates the last-seen timestamp of an identity.
func (r *PostgresRepository) Touch(ctx context.Context, id string, seenAt time.Time) error {
	query := `
		UPDATE device_identities
		SET last_seen_at = $2
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, seenAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrIdentityNotFound
	}

	return nil
}

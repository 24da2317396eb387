package entitlement

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
//
// Records are stored as one JSON document per device, mirroring the shape the
// client wrote to local storage. A document that no longer parses is treated
// as absent so the store can reinitialize instead of failing every read.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL entitlement repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the record for a device.
func (r *PostgresRepository) Get(ctx context.Context, deviceID string) (*Record, error) {
	query := `
		SELECT record
		FROM entitlement_records
		WHERE device_id = $1
	`

	var doc []byte
	err := r.pool.QueryRow(ctx, query, deviceID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(doc, &rec); err != nil {
		// Corrupt document: degrade to absent.
		return nil, ErrRecordNotFound
	}

	rec.DeviceID = deviceID
	return &rec, nil
}

// Save creates or replaces the record for a device.
func (r *PostgresRepository) Save(ctx context.Context, rec *Record) error {
	query := `
		INSERT INTO entitlement_records (device_id, record, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (device_id) DO UPDATE SET
			record = EXCLUDED.record,
			updated_at = EXCLUDED.updated_at
	`

	doc, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, rec.DeviceID, doc, time.Now())
	return err
}

// List retrieves all records, skipping unreadable documents.
func (r *PostgresRepository) List(ctx context.Context) ([]*Record, error) {
	query := `
		SELECT device_id, record
		FROM entitlement_records
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			deviceID string
			doc      []byte
		)
		if err := rows.Scan(&deviceID, &doc); err != nil {
			return nil, err
		}

		var rec Record
		if err := json.Unmarshal(doc, &rec); err != nil {
			continue
		}
		rec.DeviceID = deviceID
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

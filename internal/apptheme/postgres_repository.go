package apptheme

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// themeRowID is the primary key of the single theme row.
const themeRowID = 1

// PostgresRepository is a PostgreSQL implementation of Repository. The theme
// is one JSON document in a single-row table; a missing or unreadable row
// yields the default theme.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL theme repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Get retrieves the current theme, or the default when none was stored.
func (r *PostgresRepository) Get(ctx context.Context) (Theme, error) {
	query := `
		SELECT theme
		FROM app_theme
		WHERE id = $1
	`

	var doc []byte
	err := r.pool.QueryRow(ctx, query, themeRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultTheme(), nil
		}
		return Theme{}, err
	}

	var theme Theme
	if err := json.Unmarshal(doc, &theme); err != nil {
		return DefaultTheme(), nil
	}
	return theme, nil
}

// Set overwrites the stored theme.
func (r *PostgresRepository) Set(ctx context.Context, theme Theme) error {
	query := `
		INSERT INTO app_theme (id, theme, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			theme = EXCLUDED.theme,
			updated_at = EXCLUDED.updated_at
	`

	doc, err := json.Marshal(theme)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query, themeRowID, doc, time.Now())
	return err
}

package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL feedback repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert adds a message to the inbox.
func (r *PostgresRepository) Insert(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO feedback_messages (id, sent_at, type, message, contact, read)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query, msg.ID, msg.Date, msg.Type, msg.Message, msg.Contact, msg.Read)
	return err
}

// List retrieves all messages, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*Message, error) {
	query := `
		SELECT id, sent_at, type, message, contact, read
		FROM feedback_messages
		ORDER BY sent_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var msg Message
		if err := rows.Scan(&msg.ID, &msg.Date, &msg.Type, &msg.Message, &msg.Contact, &msg.Read); err != nil {
			return nil, err
		}
		out = append(out, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// MarkRead flags a message as read.
func (r *PostgresRepository) MarkRead(ctx context.Context, id string) error {
	query := `
		UPDATE feedback_messages
		SET read = TRUE
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// Delete removes a message.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM feedback_messages
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMessageNotFound
	}
	return nil
}

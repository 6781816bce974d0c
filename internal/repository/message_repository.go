package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/database"
)

type Message struct {
	ID          uuid.UUID
	Seq         int64
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Body        string
	CreatedAt   time.Time
}

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)

	// ThreadBetween returns both directions of the pair's conversation in
	// chronological order, insertion order breaking timestamp ties.
	ThreadBetween(ctx context.Context, a, b uuid.UUID) ([]Message, error)

	// Inbox returns the user's most recent messages, newest first.
	Inbox(ctx context.Context, userID uuid.UUID, limit int) ([]Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m Message) (Message, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, sender_id, recipient_id, body)
		 VALUES ($1, $2, $3, $4)
		 RETURNING seq, created_at`,
		m.ID, m.SenderID, m.RecipientID, m.Body,
	)
	if err := row.Scan(&m.Seq, &m.CreatedAt); err != nil {
		return Message{}, err
	}
	return m, nil
}

func (r *PostgresMessageRepository) ThreadBetween(ctx context.Context, a, b uuid.UUID) ([]Message, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, seq, sender_id, recipient_id, body, created_at
		 FROM messages
		 WHERE (sender_id = $1 AND recipient_id = $2) OR (sender_id = $2 AND recipient_id = $1)
		 ORDER BY created_at ASC, seq ASC`,
		a, b,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *PostgresMessageRepository) Inbox(ctx context.Context, userID uuid.UUID, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, seq, sender_id, recipient_id, body, created_at
		 FROM messages
		 WHERE sender_id = $1 OR recipient_id = $1
		 ORDER BY created_at DESC, seq DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func collectMessages(rows database.Rows) ([]Message, error) {
	out := make([]Message, 0)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Seq, &m.SenderID, &m.RecipientID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

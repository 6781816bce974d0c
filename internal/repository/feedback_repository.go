package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"skillswap/internal/database"
)

var ErrDuplicateFeedback = errors.New("feedback already submitted for this session")

const pgUniqueViolation = "23505"

type Feedback struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	AuthorID  uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// ReceivedFeedback is a feedback row seen from the rated user's side.
type ReceivedFeedback struct {
	Feedback
	AuthorName string
}

type FeedbackRepository interface {
	Create(ctx context.Context, f Feedback) (Feedback, error)
	AverageForUser(ctx context.Context, userID uuid.UUID) (*float64, error)
	ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]ReceivedFeedback, error)
}

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, f Feedback) (Feedback, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO feedback (id, session_id, author_id, rating, comment)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		f.ID, f.SessionID, f.AuthorID, f.Rating, f.Comment,
	)
	if err := row.Scan(&f.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Feedback{}, ErrDuplicateFeedback
		}
		return Feedback{}, err
	}
	return f, nil
}

// AverageForUser averages ratings a user received, i.e. feedback on sessions
// where the user was the participant other than the author. Nil when the user
// has no feedback yet.
func (r *PostgresFeedbackRepository) AverageForUser(ctx context.Context, userID uuid.UUID) (*float64, error) {
	var avg *float64
	row := r.db.QueryRow(ctx,
		`SELECT AVG(f.rating)::float8
		 FROM feedback f
		 JOIN exchange_sessions s ON s.id = f.session_id
		 WHERE f.author_id <> $1 AND (s.initiator_id = $1 OR s.recipient_id = $1)`,
		userID,
	)
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	return avg, nil
}

func (r *PostgresFeedbackRepository) ListReceivedByUser(ctx context.Context, userID uuid.UUID) ([]ReceivedFeedback, error) {
	rows, err := r.db.Query(ctx,
		`SELECT f.id, f.session_id, f.author_id, f.rating, f.comment, f.created_at, u.display_name
		 FROM feedback f
		 JOIN exchange_sessions s ON s.id = f.session_id
		 JOIN users u ON u.id = f.author_id
		 WHERE f.author_id <> $1 AND (s.initiator_id = $1 OR s.recipient_id = $1)
		 ORDER BY f.created_at DESC, f.id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ReceivedFeedback, 0)
	for rows.Next() {
		var f ReceivedFeedback
		if err := rows.Scan(&f.ID, &f.SessionID, &f.AuthorID, &f.Rating, &f.Comment, &f.CreatedAt, &f.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

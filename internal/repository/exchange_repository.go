package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skillswap/internal/database"
	"skillswap/internal/domain/exchange"
)

var (
	ErrSessionNotFound = errors.New("exchange session not found")
	ErrNotAccepted     = errors.New("session not in accepted status")
)

const sessionColumns = `id, initiator_id, recipient_id, offered_skill, wanted_skill, status,
	 initiator_confirmed, recipient_confirmed, proposed_at, responded_at, closed_at`

type ExchangeRepository interface {
	Create(ctx context.Context, s exchange.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (exchange.Session, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]exchange.Session, error)

	// TransitionIf moves the session from one status to another only when it
	// is still in the expected status, so two concurrent responders cannot
	// both win. Returns false when the guard did not hold.
	TransitionIf(ctx context.Context, id uuid.UUID, from, to exchange.Status) (bool, error)

	// Confirm records one participant's completion confirmation under a row
	// lock and flips the session to completed once both sides have confirmed.
	Confirm(ctx context.Context, id uuid.UUID, byInitiator bool) (exchange.Session, error)
}

type PostgresExchangeRepository struct {
	db database.DB
}

func NewPostgresExchangeRepository(db database.DB) *PostgresExchangeRepository {
	return &PostgresExchangeRepository{db: db}
}

func (r *PostgresExchangeRepository) Create(ctx context.Context, s exchange.Session) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO exchange_sessions (id, initiator_id, recipient_id, offered_skill, wanted_skill, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.InitiatorID, s.RecipientID, s.OfferedSkill, s.WantedSkill, s.Status,
	)
	return err
}

func (r *PostgresExchangeRepository) GetByID(ctx context.Context, id uuid.UUID) (exchange.Session, error) {
	row := r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM exchange_sessions WHERE id = $1`, id)
	return scanSession(row)
}

func (r *PostgresExchangeRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]exchange.Session, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+`
		 FROM exchange_sessions
		 WHERE initiator_id = $1 OR recipient_id = $1
		 ORDER BY proposed_at DESC, id ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]exchange.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresExchangeRepository) TransitionIf(ctx context.Context, id uuid.UUID, from, to exchange.Status) (bool, error) {
	var closedAt string
	if to.Terminal() {
		closedAt = `, closed_at = now()`
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE exchange_sessions
		 SET status = $1, responded_at = COALESCE(responded_at, now())`+closedAt+`
		 WHERE id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresExchangeRepository) Confirm(ctx context.Context, id uuid.UUID, byInitiator bool) (exchange.Session, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return exchange.Session{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	row := tx.QueryRow(ctx, `SELECT `+sessionColumns+` FROM exchange_sessions WHERE id = $1 FOR UPDATE`, id)
	s, err := scanSession(row)
	if err != nil {
		return exchange.Session{}, err
	}

	// Status may have changed between the caller's read and this lock.
	if s.Status != exchange.StatusAccepted {
		return s, ErrNotAccepted
	}

	if byInitiator {
		s.InitiatorConfirmed = true
	} else {
		s.RecipientConfirmed = true
	}
	if s.InitiatorConfirmed && s.RecipientConfirmed {
		s.Status = exchange.StatusCompleted
	}

	if _, err := tx.Exec(ctx,
		`UPDATE exchange_sessions
		 SET initiator_confirmed = $1, recipient_confirmed = $2, status = $3,
		     closed_at = CASE WHEN $3 = 'completed' THEN now() ELSE closed_at END
		 WHERE id = $4`,
		s.InitiatorConfirmed, s.RecipientConfirmed, s.Status, s.ID,
	); err != nil {
		return exchange.Session{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return exchange.Session{}, err
	}
	return s, nil
}

func scanSession(row database.Row) (exchange.Session, error) {
	var s exchange.Session
	err := row.Scan(
		&s.ID, &s.InitiatorID, &s.RecipientID, &s.OfferedSkill, &s.WantedSkill, &s.Status,
		&s.InitiatorConfirmed, &s.RecipientConfirmed, &s.ProposedAt, &s.RespondedAt, &s.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return exchange.Session{}, ErrSessionNotFound
		}
		return exchange.Session{}, err
	}
	return s, nil
}

package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/domain/exchange"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"
)

var (
	ErrSessionNotFound   = errors.New("exchange session not found")
	ErrNotParticipant    = errors.New("user is not a participant of this session")
	ErrInvalidTransition = errors.New("invalid session state transition")
	ErrSelfExchange      = errors.New("cannot open an exchange with yourself")
)

type ProposeInput struct {
	RecipientID  uuid.UUID
	OfferedSkill string
	WantedSkill  string
}

type ExchangeUsecase interface {
	Propose(ctx context.Context, initiatorID uuid.UUID, in ProposeInput) (exchange.Session, error)
	Respond(ctx context.Context, sessionID, byUser uuid.UUID, accept bool) (exchange.Session, error)
	Confirm(ctx context.Context, sessionID, byUser uuid.UUID) (exchange.Session, error)
	Cancel(ctx context.Context, sessionID, byUser uuid.UUID) (exchange.Session, error)
	SessionsFor(ctx context.Context, userID uuid.UUID) ([]exchange.Session, error)
}

type Exchange struct {
	sessions repository.ExchangeRepository
	users    user.Repository
}

func NewExchangeUsecase(sessions repository.ExchangeRepository, users user.Repository) *Exchange {
	return &Exchange{sessions: sessions, users: users}
}

func (e *Exchange) Propose(ctx context.Context, initiatorID uuid.UUID, in ProposeInput) (exchange.Session, error) {
	if initiatorID == in.RecipientID {
		return exchange.Session{}, ErrSelfExchange
	}

	recipient, err := e.users.GetByID(ctx, in.RecipientID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return exchange.Session{}, ErrUserNotFound
		}
		return exchange.Session{}, ErrInternal
	}
	if !recipient.IsActive {
		return exchange.Session{}, ErrUserNotFound
	}

	s := exchange.Session{
		ID:           uuid.New(),
		InitiatorID:  initiatorID,
		RecipientID:  in.RecipientID,
		OfferedSkill: strings.ToLower(strings.TrimSpace(in.OfferedSkill)),
		WantedSkill:  strings.ToLower(strings.TrimSpace(in.WantedSkill)),
		Status:       exchange.StatusProposed,
	}
	if err := e.sessions.Create(ctx, s); err != nil {
		return exchange.Session{}, ErrInternal
	}

	return e.sessions.GetByID(ctx, s.ID)
}

// Respond lets the recipient accept or decline a proposal. The transition is
// guarded at the database so a second concurrent response loses cleanly.
func (e *Exchange) Respond(ctx context.Context, sessionID, byUser uuid.UUID, accept bool) (exchange.Session, error) {
	s, err := e.get(ctx, sessionID)
	if err != nil {
		return exchange.Session{}, err
	}

	if s.RecipientID != byUser {
		if !s.HasParticipant(byUser) {
			return exchange.Session{}, ErrNotParticipant
		}
		return exchange.Session{}, ErrUnauthorized
	}
	if s.Status != exchange.StatusProposed {
		return exchange.Session{}, ErrInvalidTransition
	}

	next := exchange.StatusAccepted
	if !accept {
		next = exchange.StatusDeclined
	}

	ok, err := e.sessions.TransitionIf(ctx, sessionID, exchange.StatusProposed, next)
	if err != nil {
		return exchange.Session{}, ErrInternal
	}
	if !ok {
		return exchange.Session{}, ErrInvalidTransition
	}

	return e.get(ctx, sessionID)
}

// Confirm records a completion confirmation. The session completes only once
// both participants have confirmed; confirming twice is a no-op.
func (e *Exchange) Confirm(ctx context.Context, sessionID, byUser uuid.UUID) (exchange.Session, error) {
	s, err := e.get(ctx, sessionID)
	if err != nil {
		return exchange.Session{}, err
	}

	if !s.HasParticipant(byUser) {
		return exchange.Session{}, ErrNotParticipant
	}
	if s.Status != exchange.StatusAccepted {
		return exchange.Session{}, ErrInvalidTransition
	}

	updated, err := e.sessions.Confirm(ctx, sessionID, byUser == s.InitiatorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSessionNotFound):
			return exchange.Session{}, ErrSessionNotFound
		case errors.Is(err, repository.ErrNotAccepted):
			return exchange.Session{}, ErrInvalidTransition
		default:
			return exchange.Session{}, ErrInternal
		}
	}
	return updated, nil
}

// Cancel aborts an accepted session. Either participant may cancel.
func (e *Exchange) Cancel(ctx context.Context, sessionID, byUser uuid.UUID) (exchange.Session, error) {
	s, err := e.get(ctx, sessionID)
	if err != nil {
		return exchange.Session{}, err
	}

	if !s.HasParticipant(byUser) {
		return exchange.Session{}, ErrNotParticipant
	}
	if !s.Status.CanTransition(exchange.StatusCancelled) {
		return exchange.Session{}, ErrInvalidTransition
	}

	ok, err := e.sessions.TransitionIf(ctx, sessionID, exchange.StatusAccepted, exchange.StatusCancelled)
	if err != nil {
		return exchange.Session{}, ErrInternal
	}
	if !ok {
		return exchange.Session{}, ErrInvalidTransition
	}

	return e.get(ctx, sessionID)
}

func (e *Exchange) SessionsFor(ctx context.Context, userID uuid.UUID) ([]exchange.Session, error) {
	out, err := e.sessions.ListForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (e *Exchange) get(ctx context.Context, sessionID uuid.UUID) (exchange.Session, error) {
	s, err := e.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return exchange.Session{}, ErrSessionNotFound
		}
		return exchange.Session{}, ErrInternal
	}
	return s, nil
}

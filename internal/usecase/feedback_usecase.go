package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/domain/exchange"
	"skillswap/internal/repository"
)

var (
	ErrSessionNotCompleted = errors.New("session is not completed")
	ErrDuplicateFeedback   = errors.New("feedback already submitted")
	ErrRatingOutOfRange    = errors.New("rating must be between 1 and 5")
)

const (
	RatingMin = 1
	RatingMax = 5
)

type SubmitFeedbackInput struct {
	SessionID uuid.UUID
	Rating    int
	Comment   string
}

type FeedbackUsecase interface {
	Submit(ctx context.Context, authorID uuid.UUID, in SubmitFeedbackInput) (repository.Feedback, error)
	AverageRatingFor(ctx context.Context, userID uuid.UUID) (*float64, error)
}

type FeedbackLedger struct {
	feedback repository.FeedbackRepository
	sessions repository.ExchangeRepository
}

func NewFeedbackUsecase(feedback repository.FeedbackRepository, sessions repository.ExchangeRepository) *FeedbackLedger {
	return &FeedbackLedger{feedback: feedback, sessions: sessions}
}

// Submit writes an immutable rating for a completed session. One feedback per
// (session, author); the unique index backs the check against races.
func (f *FeedbackLedger) Submit(ctx context.Context, authorID uuid.UUID, in SubmitFeedbackInput) (repository.Feedback, error) {
	if in.Rating < RatingMin || in.Rating > RatingMax {
		return repository.Feedback{}, ErrRatingOutOfRange
	}

	s, err := f.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return repository.Feedback{}, ErrSessionNotFound
		}
		return repository.Feedback{}, ErrInternal
	}

	if !s.HasParticipant(authorID) {
		return repository.Feedback{}, ErrNotParticipant
	}
	if s.Status != exchange.StatusCompleted {
		return repository.Feedback{}, ErrSessionNotCompleted
	}

	created, err := f.feedback.Create(ctx, repository.Feedback{
		ID:        uuid.New(),
		SessionID: in.SessionID,
		AuthorID:  authorID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFeedback) {
			return repository.Feedback{}, ErrDuplicateFeedback
		}
		return repository.Feedback{}, ErrInternal
	}
	return created, nil
}

func (f *FeedbackLedger) AverageRatingFor(ctx context.Context, userID uuid.UUID) (*float64, error) {
	avg, err := f.feedback.AverageForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return avg, nil
}

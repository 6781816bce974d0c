package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/domain/user"
	"skillswap/internal/repository"
)

var (
	ErrEmptyMessage = errors.New("message body is empty")
	ErrSelfMessage  = errors.New("cannot message yourself")
)

type MessageUsecase interface {
	Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (repository.Message, error)
	ThreadBetween(ctx context.Context, userID, peerID uuid.UUID) ([]repository.Message, error)
	Inbox(ctx context.Context, userID uuid.UUID) ([]repository.Message, error)
}

type Messaging struct {
	messages repository.MessageRepository
	users    user.Repository
}

func NewMessageUsecase(messages repository.MessageRepository, users user.Repository) *Messaging {
	return &Messaging{messages: messages, users: users}
}

func (m *Messaging) Send(ctx context.Context, senderID, recipientID uuid.UUID, body string) (repository.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return repository.Message{}, ErrEmptyMessage
	}
	if senderID == recipientID {
		return repository.Message{}, ErrSelfMessage
	}

	if _, err := m.users.GetByID(ctx, recipientID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return repository.Message{}, ErrUserNotFound
		}
		return repository.Message{}, ErrInternal
	}

	created, err := m.messages.Create(ctx, repository.Message{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	})
	if err != nil {
		return repository.Message{}, ErrInternal
	}
	return created, nil
}

func (m *Messaging) ThreadBetween(ctx context.Context, userID, peerID uuid.UUID) ([]repository.Message, error) {
	if _, err := m.users.GetByID(ctx, peerID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	out, err := m.messages.ThreadBetween(ctx, userID, peerID)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (m *Messaging) Inbox(ctx context.Context, userID uuid.UUID) ([]repository.Message, error) {
	out, err := m.messages.Inbox(ctx, userID, 100)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

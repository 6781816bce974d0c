package dto

import (
	"time"

	"github.com/google/uuid"

	"skillswap/internal/repository"
)

type FeedbackResponse struct {
	ID         uuid.UUID `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewFeedbackResponse(f repository.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		SessionID: f.SessionID,
		AuthorID:  f.AuthorID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt,
	}
}

func NewReceivedFeedbackResponses(items []repository.ReceivedFeedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		r := NewFeedbackResponse(f.Feedback)
		r.AuthorName = f.AuthorName
		out = append(out, r)
	}
	return out
}

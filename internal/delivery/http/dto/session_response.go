package dto

import (
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/exchange"
)

type SessionResponse struct {
	ID                 uuid.UUID  `json:"id"`
	InitiatorID        uuid.UUID  `json:"initiator_id"`
	RecipientID        uuid.UUID  `json:"recipient_id"`
	OfferedSkill       string     `json:"offered_skill"`
	WantedSkill        string     `json:"wanted_skill"`
	Status             string     `json:"status"`
	InitiatorConfirmed bool       `json:"initiator_confirmed"`
	RecipientConfirmed bool       `json:"recipient_confirmed"`
	ProposedAt         time.Time  `json:"proposed_at"`
	RespondedAt        *time.Time `json:"responded_at"`
	ClosedAt           *time.Time `json:"closed_at"`
}

func NewSessionResponse(s exchange.Session) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		InitiatorID:        s.InitiatorID,
		RecipientID:        s.RecipientID,
		OfferedSkill:       s.OfferedSkill,
		WantedSkill:        s.WantedSkill,
		Status:             string(s.Status),
		InitiatorConfirmed: s.InitiatorConfirmed,
		RecipientConfirmed: s.RecipientConfirmed,
		ProposedAt:         s.ProposedAt,
		RespondedAt:        s.RespondedAt,
		ClosedAt:           s.ClosedAt,
	}
}

func NewSessionResponses(sessions []exchange.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, NewSessionResponse(s))
	}
	return out
}

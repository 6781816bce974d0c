// Package exchange models the lifecycle of a single skill barter between two
// users, from proposal to completion.
package exchange

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusProposed  Status = "proposed"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// CanTransition reports whether moving from s to next is a legal step in the
// session state machine. Declined, cancelled and completed are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusProposed:
		return next == StatusAccepted || next == StatusDeclined
	case StatusAccepted:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

func (s Status) Terminal() bool {
	return s == StatusDeclined || s == StatusCancelled || s == StatusCompleted
}

type Session struct {
	ID          uuid.UUID
	InitiatorID uuid.UUID
	RecipientID uuid.UUID

	// OfferedSkill is taught by the initiator, WantedSkill by the recipient.
	// Either may be empty for an asymmetric barter.
	OfferedSkill string
	WantedSkill  string

	Status Status

	// Completion requires both participants to confirm.
	InitiatorConfirmed bool
	RecipientConfirmed bool

	ProposedAt  time.Time
	RespondedAt *time.Time
	ClosedAt    *time.Time
}

func (s Session) HasParticipant(id uuid.UUID) bool {
	return s.InitiatorID == id || s.RecipientID == id
}

func (s Session) PartnerOf(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case s.InitiatorID:
		return s.RecipientID, true
	case s.RecipientID:
		return s.InitiatorID, true
	default:
		return uuid.Nil, false
	}
}

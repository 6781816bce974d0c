package exchange

import (
	"testing"

	"github.com/google/uuid"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusProposed, StatusAccepted, true},
		{StatusProposed, StatusDeclined, true},
		{StatusProposed, StatusCompleted, false},
		{StatusProposed, StatusCancelled, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusCancelled, true},
		{StatusAccepted, StatusDeclined, false},
		{StatusDeclined, StatusAccepted, false},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusAccepted, false},
	}
	for _, c := range cases {
		if got := c.from.CanTransition(c.to); got != c.ok {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusDeclined, StatusCancelled, StatusCompleted} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
	for _, s := range []Status{StatusProposed, StatusAccepted} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestSessionPartnerOf(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s := Session{InitiatorID: a, RecipientID: b}

	if got, ok := s.PartnerOf(a); !ok || got != b {
		t.Fatalf("partner of initiator: got %s, ok=%v", got, ok)
	}
	if got, ok := s.PartnerOf(b); !ok || got != a {
		t.Fatalf("partner of recipient: got %s, ok=%v", got, ok)
	}
	if _, ok := s.PartnerOf(uuid.New()); ok {
		t.Fatal("stranger has a partner")
	}
	if !s.HasParticipant(a) || !s.HasParticipant(b) {
		t.Fatal("participants not recognized")
	}
	if s.HasParticipant(uuid.New()) {
		t.Fatal("stranger recognized as participant")
	}
}

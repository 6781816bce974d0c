package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestMessaging_SendEmptyBody(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	bob := activeUser("Bob", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice, bob))
	ctx := context.Background()

	for _, body := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Send(ctx, alice.ID, bob.ID, body); !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("body %q: expected ErrEmptyMessage, got %v", body, err)
		}
	}
}

func TestMessaging_SendToUnknownUser(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice))

	if _, err := uc.Send(context.Background(), alice.ID, uuid.New(), "hi"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMessaging_SendToSelf(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice))

	if _, err := uc.Send(context.Background(), alice.ID, alice.ID, "hi"); !errors.Is(err, ErrSelfMessage) {
		t.Fatalf("expected ErrSelfMessage, got %v", err)
	}
}

func TestMessaging_ThreadChronological(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	bob := activeUser("Bob", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice, bob))
	ctx := context.Background()

	// Interleave directions; the thread must come back in send order.
	bodies := []string{"hey bob", "hey alice", "want to trade lessons?"}
	if _, err := uc.Send(ctx, alice.ID, bob.ID, bodies[0]); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := uc.Send(ctx, bob.ID, alice.ID, bodies[1]); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := uc.Send(ctx, alice.ID, bob.ID, bodies[2]); err != nil {
		t.Fatalf("send: %v", err)
	}

	thread, err := uc.ThreadBetween(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("threadBetween: %v", err)
	}
	if len(thread) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(thread))
	}
	for i, want := range bodies {
		if thread[i].Body != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, thread[i].Body)
		}
	}

	// Thread order is the same regardless of which side asks.
	mirror, err := uc.ThreadBetween(ctx, bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("threadBetween mirror: %v", err)
	}
	for i := range thread {
		if mirror[i].ID != thread[i].ID {
			t.Fatalf("mirror thread diverged at %d", i)
		}
	}
}

func TestMessaging_BodyTrimmedOnSend(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	bob := activeUser("Bob", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice, bob))

	msg, err := uc.Send(context.Background(), alice.ID, bob.ID, "  hello  ")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.Body != "hello" {
		t.Fatalf("expected trimmed body, got %q", msg.Body)
	}
}

func TestMessaging_Inbox(t *testing.T) {
	alice := activeUser("Alice", nil, nil)
	bob := activeUser("Bob", nil, nil)
	carol := activeUser("Carol", nil, nil)
	uc := NewMessageUsecase(&mockMessageRepo{}, newMockUserRepo(alice, bob, carol))
	ctx := context.Background()

	if _, err := uc.Send(ctx, alice.ID, bob.ID, "to bob"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := uc.Send(ctx, carol.ID, alice.ID, "to alice"); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := uc.Send(ctx, bob.ID, carol.ID, "not alice's"); err != nil {
		t.Fatalf("send: %v", err)
	}

	inbox, err := uc.Inbox(ctx, alice.ID)
	if err != nil {
		t.Fatalf("inbox: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(inbox))
	}
	// Newest first.
	if inbox[0].Body != "to alice" || inbox[1].Body != "to bob" {
		t.Fatalf("unexpected inbox order: %q, %q", inbox[0].Body, inbox[1].Body)
	}
}

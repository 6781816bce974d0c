package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockMatchCache struct {
	store       map[string][]byte
	invalidated int
}

func newMockMatchCache() *mockMatchCache {
	return &mockMatchCache{store: map[string][]byte{}}
}

func (m *mockMatchCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockMatchCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockMatchCache) DeleteByPattern(_ context.Context, _ string) error {
	m.store = map[string][]byte{}
	m.invalidated++
	return nil
}

func TestMatch_ComplementaryUsers(t *testing.T) {
	alice := activeUser("Alice", []string{"python"}, []string{"guitar"})
	bob := activeUser("Bob", []string{"guitar"}, []string{"python"})
	uc := NewMatchUsecase(newMockUserRepo(alice, bob), nil, nil)

	matches, err := uc.MatchesFor(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("matchesFor: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Candidate.UserID != bob.ID || matches[0].Score != 2 {
		t.Fatalf("expected (bob, 2), got (%s, %d)", matches[0].Candidate.UserID, matches[0].Score)
	}
}

func TestMatch_ExcludesInactiveUsers(t *testing.T) {
	alice := activeUser("Alice", []string{"python"}, []string{"guitar"})
	bob := activeUser("Bob", []string{"guitar"}, []string{"python"})
	bob.IsActive = false
	uc := NewMatchUsecase(newMockUserRepo(alice, bob), nil, nil)

	matches, err := uc.MatchesFor(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("matchesFor: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected no matches with inactive candidate, got %d", len(matches))
	}
}

func TestMatch_UnknownUser(t *testing.T) {
	uc := NewMatchUsecase(newMockUserRepo(), nil, nil)
	if _, err := uc.MatchesFor(context.Background(), uuid.New()); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMatch_CacheHitSkipsScan(t *testing.T) {
	alice := activeUser("Alice", []string{"python"}, []string{"guitar"})
	bob := activeUser("Bob", []string{"guitar"}, []string{"python"})
	users := newMockUserRepo(alice, bob)
	cache := newMockMatchCache()
	uc := NewMatchUsecase(users, cache, nil)
	ctx := context.Background()

	first, err := uc.MatchesFor(ctx, alice.ID)
	if err != nil {
		t.Fatalf("matchesFor: %v", err)
	}

	// Deactivate bob directly; the cached ranking should still be served
	// until something invalidates it.
	if err := users.Deactivate(ctx, bob.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	second, err := uc.MatchesFor(ctx, alice.ID)
	if err != nil {
		t.Fatalf("matchesFor cached: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("expected cached result, got fresh scan")
	}

	uc.InvalidateAll(ctx)
	if cache.invalidated != 1 {
		t.Fatalf("expected one invalidation, got %d", cache.invalidated)
	}

	third, err := uc.MatchesFor(ctx, alice.ID)
	if err != nil {
		t.Fatalf("matchesFor after invalidation: %v", err)
	}
	if len(third) != 0 {
		t.Fatalf("expected no matches after invalidation, got %d", len(third))
	}
}

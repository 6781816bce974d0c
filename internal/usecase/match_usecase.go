package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/matching"
	"skillswap/internal/domain/user"
)

const matchCachePattern = "match:user:*"

// MatchCache is the slice of the Redis layer the match usecase needs.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type MatchUsecase interface {
	MatchesFor(ctx context.Context, userID uuid.UUID) ([]matching.Match, error)
}

type Match struct {
	users  user.Repository
	cache  MatchCache
	logger *log.Logger
}

func NewMatchUsecase(users user.Repository, cache MatchCache, logger *log.Logger) *Match {
	return &Match{users: users, cache: cache, logger: logger}
}

// MatchesFor ranks every other active user against the given user. Results
// are cached per user; any profile change invalidates the whole keyspace.
func (m *Match) MatchesFor(ctx context.Context, userID uuid.UUID) ([]matching.Match, error) {
	self, err := m.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	key := matchCacheKey(userID)
	if m.cache != nil {
		var cached []matching.Match
		if ok, err := m.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	candidates, err := m.users.ListActiveExcept(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	ranked := matching.Rank(toProfile(self), toProfiles(candidates))

	if m.cache != nil {
		if err := m.cache.SetJSON(ctx, key, ranked, 0); err != nil && m.logger != nil {
			m.logger.Printf("match cache store failed for %s: %v", userID, err)
		}
	}
	return ranked, nil
}

// InvalidateAll drops every cached ranking. Called on registration, profile
// update and deactivation, since one user's skills affect everyone's matches.
func (m *Match) InvalidateAll(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.DeleteByPattern(ctx, matchCachePattern); err != nil && m.logger != nil {
		m.logger.Printf("match cache invalidation failed: %v", err)
	}
}

func matchCacheKey(userID uuid.UUID) string {
	return "match:user:" + userID.String()
}

func toProfile(u user.User) matching.Profile {
	return matching.Profile{
		UserID:        u.ID,
		DisplayName:   u.DisplayName,
		Location:      u.Location,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
	}
}

func toProfiles(users []user.User) []matching.Profile {
	out := make([]matching.Profile, 0, len(users))
	for _, u := range users {
		out = append(out, toProfile(u))
	}
	return out
}

package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type UpdateProfile struct {
	DisplayName   string
	Location      string
	Bio           string
	SkillsOffered []string
	SkillsWanted  []string
}

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateProfile replaces the profile fields and both skill sets in a
	// single statement so concurrent edits cannot interleave the two sets.
	UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfile) error

	// UpdateSkills replaces only the two skill sets, again in a single
	// statement, leaving every other profile column untouched.
	UpdateSkills(ctx context.Context, id uuid.UUID, offered, wanted []string) error

	Deactivate(ctx context.Context, id uuid.UUID) error

	// Search matches q case-insensitively against display name, location and
	// skill tokens of active users. Result is capped by limit.
	Search(ctx context.Context, q string, limit int) ([]User, error)

	// ListActiveExcept returns every active user except the given one,
	// ordered by id for deterministic match ranking.
	ListActiveExcept(ctx context.Context, id uuid.UUID) ([]User, error)
}

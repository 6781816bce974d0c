package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/domain/user"
	"skillswap/internal/repository"
	"skillswap/internal/skill"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
)

type UpdateProfileInput struct {
	DisplayName   string
	Location      string
	Bio           string
	SkillsOffered string
	SkillsWanted  string
}

// PublicProfile is a user as shown to other members, with the rating summary
// from the feedback ledger.
type PublicProfile struct {
	User          user.User
	AverageRating *float64
	Feedback      []repository.ReceivedFeedback
}

type DirectoryUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (PublicProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
	UpdateSkills(ctx context.Context, userID uuid.UUID, offered, wanted string) (user.User, error)
	Deactivate(ctx context.Context, userID uuid.UUID) error
	Search(ctx context.Context, q string) ([]user.User, error)
}

type Directory struct {
	users    user.Repository
	feedback repository.FeedbackRepository
	matches  MatchInvalidator
}

func NewDirectoryUsecase(users user.Repository, feedback repository.FeedbackRepository, matches MatchInvalidator) *Directory {
	return &Directory{users: users, feedback: feedback, matches: matches}
}

func (d *Directory) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := d.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	u.PasswordHash = ""
	return u, nil
}

func (d *Directory) GetPublicProfile(ctx context.Context, userID uuid.UUID) (PublicProfile, error) {
	u, err := d.GetProfile(ctx, userID)
	if err != nil {
		return PublicProfile{}, err
	}

	avg, err := d.feedback.AverageForUser(ctx, userID)
	if err != nil {
		return PublicProfile{}, ErrInternal
	}
	received, err := d.feedback.ListReceivedByUser(ctx, userID)
	if err != nil {
		return PublicProfile{}, ErrInternal
	}

	return PublicProfile{User: u, AverageRating: avg, Feedback: received}, nil
}

// UpdateProfile replaces the profile fields and both skill sets in one write;
// skills are normalized at this boundary and never re-parsed downstream.
func (d *Directory) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	name := strings.TrimSpace(in.DisplayName)
	if name == "" {
		return user.User{}, ErrInvalidInput
	}

	err := d.users.UpdateProfile(ctx, userID, user.UpdateProfile{
		DisplayName:   name,
		Location:      strings.TrimSpace(in.Location),
		Bio:           strings.TrimSpace(in.Bio),
		SkillsOffered: skill.Normalize(in.SkillsOffered),
		SkillsWanted:  skill.Normalize(in.SkillsWanted),
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if d.matches != nil {
		d.matches.InvalidateAll(ctx)
	}

	return d.GetProfile(ctx, userID)
}

// UpdateSkills replaces only the two skill lists. The write is a single
// statement touching just the skill columns, so a concurrent profile edit is
// never read back and overwritten.
func (d *Directory) UpdateSkills(ctx context.Context, userID uuid.UUID, offered, wanted string) (user.User, error) {
	err := d.users.UpdateSkills(ctx, userID, skill.Normalize(offered), skill.Normalize(wanted))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if d.matches != nil {
		d.matches.InvalidateAll(ctx)
	}

	return d.GetProfile(ctx, userID)
}

func (d *Directory) Deactivate(ctx context.Context, userID uuid.UUID) error {
	if err := d.users.Deactivate(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrUserNotFound
		}
		return ErrInternal
	}
	if d.matches != nil {
		d.matches.InvalidateAll(ctx)
	}
	return nil
}

func (d *Directory) Search(ctx context.Context, q string) ([]user.User, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []user.User{}, nil
	}

	users, err := d.users.Search(ctx, q, 100)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

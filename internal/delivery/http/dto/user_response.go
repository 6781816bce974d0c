package dto

import (
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/user"
	"skillswap/internal/usecase"
)

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email,omitempty"`
	DisplayName   string    `json:"display_name"`
	Location      string    `json:"location"`
	Bio           string    `json:"bio"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Location:      u.Location,
		Bio:           u.Bio,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		CreatedAt:     u.CreatedAt,
	}
}

// NewPublicUserResponse omits the email, which only the owner sees.
func NewPublicUserResponse(u user.User) UserResponse {
	r := NewUserResponse(u)
	r.Email = ""
	return r
}

type PublicProfileResponse struct {
	User          UserResponse       `json:"user"`
	AverageRating *float64           `json:"average_rating"`
	Feedback      []FeedbackResponse `json:"feedback"`
}

func NewPublicProfileResponse(p usecase.PublicProfile) PublicProfileResponse {
	return PublicProfileResponse{
		User:          NewPublicUserResponse(p.User),
		AverageRating: p.AverageRating,
		Feedback:      NewReceivedFeedbackResponses(p.Feedback),
	}
}

package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID
	Email         string
	DisplayName   string
	Location      string
	Bio           string
	PasswordHash  string
	SkillsOffered []string
	SkillsWanted  []string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

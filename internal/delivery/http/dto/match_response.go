package dto

import (
	"github.com/google/uuid"

	"skillswap/internal/domain/matching"
)

type MatchResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Location    string    `json:"location"`
	TheyOffer   []string  `json:"they_offer"`
	TheyWant    []string  `json:"they_want"`
	Score       int       `json:"score"`
}

func NewMatchResponses(matches []matching.Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, MatchResponse{
			UserID:      m.Candidate.UserID,
			DisplayName: m.Candidate.DisplayName,
			Location:    m.Candidate.Location,
			TheyOffer:   m.TheyOffer,
			TheyWant:    m.TheyWant,
			Score:       m.Score,
		})
	}
	return out
}

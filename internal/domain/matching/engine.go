// Package matching ranks barter candidates by bidirectional skill overlap.
package matching

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"skillswap/internal/skill"
)

type Profile struct {
	UserID        uuid.UUID
	DisplayName   string
	Location      string
	SkillsOffered []string
	SkillsWanted  []string
}

type Match struct {
	Candidate Profile

	// TheyOffer holds tokens the candidate offers that the user wants;
	// TheyWant holds tokens the candidate wants that the user offers.
	TheyOffer []string
	TheyWant  []string

	// Score is |wanted ∩ candidate.offered| + |candidate.wanted ∩ offered|,
	// rewarding pairs where the barter works in both directions.
	Score int
}

// Rank scores every candidate against self, drops zero scores and returns the
// rest sorted by score descending, then candidate id ascending. The caller is
// expected to pass only active users other than self. A user with empty skill
// sets simply gets an empty result.
func Rank(self Profile, candidates []Profile) []Match {
	out := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == self.UserID {
			continue
		}
		theyOffer := skill.Intersect(self.SkillsWanted, c.SkillsOffered)
		theyWant := skill.Intersect(self.SkillsOffered, c.SkillsWanted)
		score := len(theyOffer) + len(theyWant)
		if score == 0 {
			continue
		}
		out = append(out, Match{
			Candidate: c,
			TheyOffer: theyOffer,
			TheyWant:  theyWant,
			Score:     score,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return strings.Compare(out[i].Candidate.UserID.String(), out[j].Candidate.UserID.String()) < 0
	})
	return out
}

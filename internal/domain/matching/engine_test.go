package matching

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func profile(id byte, offered, wanted []string) Profile {
	var raw [16]byte
	raw[15] = id
	return Profile{
		UserID:        uuid.UUID(raw),
		SkillsOffered: offered,
		SkillsWanted:  wanted,
	}
}

func TestRank_ComplementaryPair(t *testing.T) {
	a := profile(1, []string{"python"}, []string{"guitar"})
	b := profile(2, []string{"guitar"}, []string{"python"})

	got := Rank(a, []Profile{b})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Candidate.UserID != b.UserID {
		t.Fatalf("unexpected candidate")
	}
	if got[0].Score != 2 {
		t.Fatalf("expected score 2, got %d", got[0].Score)
	}
	if !reflect.DeepEqual(got[0].TheyOffer, []string{"guitar"}) {
		t.Fatalf("unexpected TheyOffer: %v", got[0].TheyOffer)
	}
	if !reflect.DeepEqual(got[0].TheyWant, []string{"python"}) {
		t.Fatalf("unexpected TheyWant: %v", got[0].TheyWant)
	}
}

func TestRank_ScoreSymmetric(t *testing.T) {
	a := profile(1, []string{"go", "sql"}, []string{"guitar", "piano"})
	b := profile(2, []string{"guitar", "piano"}, []string{"go"})

	fromA := Rank(a, []Profile{b})
	fromB := Rank(b, []Profile{a})
	if len(fromA) != 1 || len(fromB) != 1 {
		t.Fatalf("expected matches in both directions")
	}
	if fromA[0].Score != 3 || fromB[0].Score != 3 {
		t.Fatalf("expected symmetric score 3, got %d and %d", fromA[0].Score, fromB[0].Score)
	}
}

func TestRank_ExcludesZeroScoreAndSelf(t *testing.T) {
	a := profile(1, []string{"go"}, []string{"guitar"})
	unrelated := profile(2, []string{"welding"}, []string{"pottery"})

	got := Rank(a, []Profile{a, unrelated})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestRank_EmptySkillSetsYieldNoMatches(t *testing.T) {
	a := profile(1, nil, nil)
	b := profile(2, []string{"guitar"}, []string{"go"})

	if got := Rank(a, []Profile{b}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestRank_OrderingAndTieBreak(t *testing.T) {
	self := profile(9, []string{"go", "sql"}, []string{"guitar", "piano"})
	strong := profile(3, []string{"guitar", "piano"}, []string{"go", "sql"})
	tieHigh := profile(2, []string{"guitar"}, nil)
	tieLow := profile(1, []string{"piano"}, nil)

	got := Rank(self, []Profile{tieHigh, strong, tieLow})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	if got[0].Candidate.UserID != strong.UserID {
		t.Fatalf("expected highest score first")
	}
	// Equal scores fall back to candidate id ascending.
	if got[1].Candidate.UserID != tieLow.UserID || got[2].Candidate.UserID != tieHigh.UserID {
		t.Fatalf("tie-break by id ascending violated")
	}
}

package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"skillswap/internal/domain/exchange"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"
	"skillswap/internal/skill"
)

type mockUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]user.User
}

func newMockUserRepo(users ...user.User) *mockUserRepo {
	m := &mockUserRepo{users: map[uuid.UUID]user.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *mockUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, in user.UpdateProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return user.ErrNotFound
	}
	u.DisplayName = in.DisplayName
	u.Location = in.Location
	u.Bio = in.Bio
	u.SkillsOffered = in.SkillsOffered
	u.SkillsWanted = in.SkillsWanted
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) UpdateSkills(_ context.Context, id uuid.UUID, offered, wanted []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return user.ErrNotFound
	}
	u.SkillsOffered = offered
	u.SkillsWanted = wanted
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return user.ErrNotFound
	}
	u.IsActive = false
	m.users[id] = u
	return nil
}

func (m *mockUserRepo) Search(_ context.Context, q string, limit int) ([]user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q = strings.ToLower(q)
	out := make([]user.User, 0)
	for _, u := range m.users {
		if !u.IsActive {
			continue
		}
		if strings.Contains(strings.ToLower(u.DisplayName), q) ||
			strings.Contains(strings.ToLower(u.Location), q) ||
			skill.Contains(u.SkillsOffered, q) ||
			skill.Contains(u.SkillsWanted, q) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockUserRepo) ListActiveExcept(_ context.Context, id uuid.UUID) ([]user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]user.User, 0)
	for _, u := range m.users {
		if u.IsActive && u.ID != id {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

type mockExchangeRepo struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]exchange.Session
}

func newMockExchangeRepo() *mockExchangeRepo {
	return &mockExchangeRepo{sessions: map[uuid.UUID]exchange.Session{}}
}

func (m *mockExchangeRepo) Create(_ context.Context, s exchange.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ProposedAt = time.Now()
	m.sessions[s.ID] = s
	return nil
}

func (m *mockExchangeRepo) GetByID(_ context.Context, id uuid.UUID) (exchange.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return exchange.Session{}, repository.ErrSessionNotFound
	}
	return s, nil
}

func (m *mockExchangeRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]exchange.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]exchange.Session, 0)
	for _, s := range m.sessions {
		if s.HasParticipant(userID) {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProposedAt.After(out[j].ProposedAt) })
	return out, nil
}

func (m *mockExchangeRepo) TransitionIf(_ context.Context, id uuid.UUID, from, to exchange.Status) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok || s.Status != from {
		return false, nil
	}
	s.Status = to
	now := time.Now()
	if s.RespondedAt == nil {
		s.RespondedAt = &now
	}
	if to.Terminal() {
		s.ClosedAt = &now
	}
	m.sessions[id] = s
	return true, nil
}

func (m *mockExchangeRepo) Confirm(_ context.Context, id uuid.UUID, byInitiator bool) (exchange.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return exchange.Session{}, repository.ErrSessionNotFound
	}
	if s.Status != exchange.StatusAccepted {
		return s, repository.ErrNotAccepted
	}
	if byInitiator {
		s.InitiatorConfirmed = true
	} else {
		s.RecipientConfirmed = true
	}
	if s.InitiatorConfirmed && s.RecipientConfirmed {
		s.Status = exchange.StatusCompleted
		now := time.Now()
		s.ClosedAt = &now
	}
	m.sessions[id] = s
	return s, nil
}

type mockFeedbackRepo struct {
	mu    sync.Mutex
	items []repository.ReceivedFeedback
	repo  *mockExchangeRepo
}

func newMockFeedbackRepo(repo *mockExchangeRepo) *mockFeedbackRepo {
	return &mockFeedbackRepo{repo: repo}
}

func (m *mockFeedbackRepo) Create(_ context.Context, f repository.Feedback) (repository.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.SessionID == f.SessionID && it.AuthorID == f.AuthorID {
			return repository.Feedback{}, repository.ErrDuplicateFeedback
		}
	}
	f.CreatedAt = time.Now()
	m.items = append(m.items, repository.ReceivedFeedback{Feedback: f})
	return f, nil
}

func (m *mockFeedbackRepo) AverageForUser(_ context.Context, userID uuid.UUID) (*float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var sum, n float64
	for _, it := range m.items {
		s, ok := m.repo.sessions[it.SessionID]
		if !ok || it.AuthorID == userID || !s.HasParticipant(userID) {
			continue
		}
		sum += float64(it.Rating)
		n++
	}
	if n == 0 {
		return nil, nil
	}
	avg := sum / n
	return &avg, nil
}

func (m *mockFeedbackRepo) ListReceivedByUser(_ context.Context, userID uuid.UUID) ([]repository.ReceivedFeedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.ReceivedFeedback, 0)
	for _, it := range m.items {
		s, ok := m.repo.sessions[it.SessionID]
		if !ok || it.AuthorID == userID || !s.HasParticipant(userID) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

type mockMessageRepo struct {
	mu    sync.Mutex
	seq   int64
	items []repository.Message
}

func (m *mockMessageRepo) Create(_ context.Context, msg repository.Message) (repository.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	msg.Seq = m.seq
	msg.CreatedAt = time.Now()
	m.items = append(m.items, msg)
	return msg, nil
}

func (m *mockMessageRepo) ThreadBetween(_ context.Context, a, b uuid.UUID) ([]repository.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.Message, 0)
	for _, it := range m.items {
		if (it.SenderID == a && it.RecipientID == b) || (it.SenderID == b && it.RecipientID == a) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

func (m *mockMessageRepo) Inbox(_ context.Context, userID uuid.UUID, limit int) ([]repository.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repository.Message, 0)
	for _, it := range m.items {
		if it.SenderID == userID || it.RecipientID == userID {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func activeUser(name string, offered, wanted []string) user.User {
	return user.User{
		ID:            uuid.New(),
		Email:         strings.ToLower(name) + "@example.com",
		DisplayName:   name,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		IsActive:      true,
	}
}

package auth

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"skillswap/internal/domain/user"
)

type stubUserRepo struct {
	users map[uuid.UUID]user.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]user.User{}}
}

func (s *stubUserRepo) Create(_ context.Context, u user.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := s.GetByEmail(ctx, email)
	return err == nil, nil
}

func (s *stubUserRepo) UpdateProfile(context.Context, uuid.UUID, user.UpdateProfile) error {
	return nil
}

func (s *stubUserRepo) UpdateSkills(context.Context, uuid.UUID, []string, []string) error {
	return nil
}

func (s *stubUserRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	u := s.users[id]
	u.IsActive = false
	s.users[id] = u
	return nil
}

func (s *stubUserRepo) Search(context.Context, string, int) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) ListActiveExcept(context.Context, uuid.UUID) ([]user.User, error) {
	return nil, nil
}

func TestRegister_NormalizesEmailAndSkills(t *testing.T) {
	svc := NewService(newStubUserRepo())

	u, err := svc.Register(context.Background(), RegisterInput{
		DisplayName:   "Alice",
		Email:         " Alice@Example.COM ",
		Password:      "correct horse",
		SkillsOffered: "Python, python",
		SkillsWanted:  "Guitar",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if !reflect.DeepEqual(u.SkillsOffered, []string{"python"}) {
		t.Fatalf("offered not normalized: %v", u.SkillsOffered)
	}
	if !reflect.DeepEqual(u.SkillsWanted, []string{"guitar"}) {
		t.Fatalf("wanted not normalized: %v", u.SkillsWanted)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked from register")
	}
	if !u.IsActive {
		t.Fatalf("new user must be active")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newStubUserRepo())
	ctx := context.Background()

	in := RegisterInput{DisplayName: "Alice", Email: "alice@example.com", Password: "correct horse"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in.DisplayName = "Impostor"
	if _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RejectsShortPassword(t *testing.T) {
	svc := NewService(newStubUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		DisplayName: "Alice", Email: "alice@example.com", Password: "short",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{
		DisplayName: "Alice", Email: "alice@example.com", Password: "correct horse",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "ALICE@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("valid login: %v", err)
	}
}

func TestLogin_DeactivatedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{
		DisplayName: "Alice", Email: "alice@example.com", Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if _, err := svc.Login(ctx, LoginInput{Email: "alice@example.com", Password: "correct horse"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for deactivated user, got %v", err)
	}
}

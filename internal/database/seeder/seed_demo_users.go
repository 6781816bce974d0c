package seeder

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skillswap/internal/database"
)

// DemoUsersSeeder inserts a few complementary profiles so /matches has
// something to rank on a fresh development database. Only wired in
// development.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users",
		"id", "email", "display_name", "password_hash", "skills_offered", "skills_wanted", "is_active"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Email   string
		Name    string
		Offered []string
		Wanted  []string
	}{
		{Email: "alice@example.com", Name: "Alice", Offered: []string{"guitar"}, Wanted: []string{"cooking"}},
		{Email: "bob@example.com", Name: "Bob", Offered: []string{"cooking"}, Wanted: []string{"guitar"}},
		{Email: "carol@example.com", Name: "Carol", Offered: []string{"spanish", "cooking"}, Wanted: []string{"photography"}},
		{Email: "dave@example.com", Name: "Dave", Offered: []string{"photography"}, Wanted: []string{"spanish"}},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO users (email, display_name, password_hash, skills_offered, skills_wanted)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING`,
			it.Email,
			it.Name,
			string(hash),
			it.Offered,
			it.Wanted,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

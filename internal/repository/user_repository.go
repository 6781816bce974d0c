package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"skillswap/internal/database"
	"skillswap/internal/domain/user"
)

const userColumns = `id, email, display_name, location, bio, password_hash,
	 skills_offered, skills_wanted, is_active, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, display_name, location, bio, password_hash, skills_offered, skills_wanted)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.Email, u.DisplayName, u.Location, u.Bio, u.PasswordHash, u.SkillsOffered, u.SkillsWanted,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, in user.UpdateProfile) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET display_name = $1, location = $2, bio = $3, skills_offered = $4, skills_wanted = $5, updated_at = now()
		 WHERE id = $6 AND is_active`,
		in.DisplayName, in.Location, in.Bio, in.SkillsOffered, in.SkillsWanted, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) UpdateSkills(ctx context.Context, id uuid.UUID, offered, wanted []string) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET skills_offered = $1, skills_wanted = $2, updated_at = now()
		 WHERE id = $3 AND is_active`,
		offered, wanted, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) Search(ctx context.Context, q string, limit int) ([]user.User, error) {
	if limit <= 0 {
		limit = 100
	}
	pattern := "%" + q + "%"
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE is_active
		   AND (display_name ILIKE $1
		     OR location ILIKE $1
		     OR EXISTS (SELECT 1 FROM unnest(skills_offered) tok WHERE tok ILIKE $1)
		     OR EXISTS (SELECT 1 FROM unnest(skills_wanted) tok WHERE tok ILIKE $1))
		 ORDER BY display_name ASC, id ASC
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *PostgresUserRepository) ListActiveExcept(ctx context.Context, id uuid.UUID) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_active AND id <> $1 ORDER BY id ASC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows database.Rows) ([]user.User, error) {
	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.DisplayName, &u.Location, &u.Bio, &u.PasswordHash,
		&u.SkillsOffered, &u.SkillsWanted, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

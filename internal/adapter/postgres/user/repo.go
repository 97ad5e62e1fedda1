// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

type Repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO users (id, email, name, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, email, name, avatar_url, created_at, updated_at`

const getByIDSQL = `
SELECT id, email, name, avatar_url, created_at, updated_at
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT id, email, name, avatar_url, created_at, updated_at
FROM users
WHERE email = $1`

const updateProfileSQL = `
UPDATE users
SET name = $2, avatar_url = $3, updated_at = now()
WHERE id = $1
RETURNING id, email, name, avatar_url, created_at, updated_at`

// Create inserts a new user. A duplicate email maps to
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		u.ID, u.Email, ptrToText(u.Name), ptrToText(u.AvatarURL), u.CreatedAt, u.UpdatedAt)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// UpdateProfile replaces the mutable profile fields (name and avatar URL)
// with the values from the latest identity provider response.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, avatarURL *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateProfileSQL, id, ptrToText(name), ptrToText(avatarURL)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u      domain.User
		name   pgtype.Text
		avatar pgtype.Text
	)

	if err := row.Scan(&u.ID, &u.Email, &name, &avatar, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	if name.Valid {
		u.Name = &name.String
	}
	if avatar.Valid {
		u.AvatarURL = &avatar.String
	}

	return &u, nil
}

func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Package authmethod implements persistence for links between local users
// and external identity provider accounts.
package authmethod

import (
	"context"

	"github.com/google/uuid"
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
INSERT INTO auth_methods (id, user_id, provider, provider_id, created_at)
VALUES ($1, $2, $3, $4, $5)`

const getByProviderSQL = `
SELECT id, user_id, provider, provider_id, created_at
FROM auth_methods
WHERE provider = $1 AND provider_id = $2`

func (r *Repo) Create(ctx context.Context, m *domain.AuthMethod) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSQL, m.ID, m.UserID, m.Provider, m.ProviderID, m.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "auth method", m.ID)
	}

	return nil
}

// GetByProvider looks up the link for an external account. Returns
// domain.ErrNotFound when the account has never signed in before.
func (r *Repo) GetByProvider(ctx context.Context, provider, providerID string) (*domain.AuthMethod, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.AuthMethod
	err := q.QueryRow(ctx, getByProviderSQL, provider, providerID).
		Scan(&m.ID, &m.UserID, &m.Provider, &m.ProviderID, &m.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "auth method", uuid.Nil)
	}

	return &m, nil
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a linked google auth method.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      &name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Name, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO auth_methods (id, user_id, provider, provider_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), user.ID, "google", "google-"+suffix, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert auth_method: %v", err)
	}

	return user
}

// SeedContact creates a contact owned by userID. createdAt controls list
// ordering in tests.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, createdAt time.Time) domain.Contact {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	name := "Contact " + suffix
	contact := domain.Contact{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        &name,
		PhoneNumber: "6281234567890",
		CountryCode: "ID",
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contacts (id, user_id, name, phone_number, country_code, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		contact.ID, contact.UserID, contact.Name, contact.PhoneNumber, string(contact.CountryCode), contact.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact insert contact: %v", err)
	}

	return contact
}

// SeedRefreshToken inserts a refresh token row for userID.
func SeedRefreshToken(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, hash string, expiresAt time.Time) domain.RefreshToken {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	token := domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: hash,
		ExpiresAt: expiresAt.UTC().Truncate(time.Microsecond),
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt, token.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRefreshToken insert: %v", err)
	}

	return token
}

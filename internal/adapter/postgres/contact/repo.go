// Package contact implements the Contact repository using PostgreSQL.
// Every operation is scoped by the owning user's ID: a contact is only ever
// visible to, and mutable by, its owner.
package contact

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wadirect-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// builder is the squirrel statement builder with PostgreSQL placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// columns is the canonical column list; scan order must match.
var columns = []string{"id", "user_id", "name", "phone_number", "country_code", "created_at"}

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL for static statements
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO contacts (id, user_id, name, phone_number, country_code, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, name, phone_number, country_code, created_at`

const getByIDSQL = `
SELECT id, user_id, name, phone_number, country_code, created_at
FROM contacts
WHERE id = $1 AND user_id = $2`

const deleteSQL = `DELETE FROM contacts WHERE id = $1 AND user_id = $2`

const countByUserSQL = `SELECT count(*) FROM contacts WHERE user_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a contact by primary key with user_id filter.
// Returns domain.ErrNotFound if the contact does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContact(q.QueryRow(ctx, getByIDSQL, contactID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "contact", contactID)
	}

	return c, nil
}

// ListByUser returns all contacts for a user, newest first (created_at DESC,
// id as tiebreak). Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Select(columns...).
		From("contacts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}
	defer rows.Close()

	contacts := []*domain.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, postgres.MapError(err, "contact", uuid.Nil)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}

	return contacts, nil
}

// CountByUser returns the number of contacts a user has saved.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByUserSQL, userID).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "contact", uuid.Nil)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new contact and returns the persisted domain.Contact.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, c *domain.Contact) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		c.ID, userID, ptrStringToPgText(c.Name), c.PhoneNumber, string(c.CountryCode), c.CreatedAt)

	created, err := scanContact(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.ID)
	}

	return created, nil
}

// Update applies the non-nil fields of upd to the contact. Returns
// domain.ErrNotFound if the contact does not exist or belongs to another
// user. With no fields set it degrades to a read.
func (r *Repo) Update(ctx context.Context, userID, contactID uuid.UUID, upd domain.ContactUpdate) (*domain.Contact, error) {
	if upd.Name == nil && upd.PhoneNumber == nil && upd.CountryCode == nil {
		return r.GetByID(ctx, userID, contactID)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := builder.Update("contacts")
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.PhoneNumber != nil {
		b = b.Set("phone_number", *upd.PhoneNumber)
	}
	if upd.CountryCode != nil {
		b = b.Set("country_code", string(*upd.CountryCode))
	}

	sql, args, err := b.
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	updated, err := scanContact(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact", contactID)
	}

	return updated, nil
}

// Delete removes a contact. Returns domain.ErrNotFound if the contact does
// not exist or belongs to another user; deleting the same ID twice fails the
// second time.
func (r *Repo) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, contactID, userID)
	if err != nil {
		return postgres.MapError(err, "contact", contactID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", contactID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Scanning helpers
// ---------------------------------------------------------------------------

func columnList() string {
	return strings.Join(columns, ", ")
}

// scanContact reads one row in canonical column order.
func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		c       domain.Contact
		name    pgtype.Text
		country string
	)

	if err := row.Scan(&c.ID, &c.UserID, &name, &c.PhoneNumber, &country, &c.CreatedAt); err != nil {
		return nil, err
	}

	if name.Valid {
		c.Name = &name.String
	}
	c.CountryCode = domain.CountryCode(country)

	return &c, nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

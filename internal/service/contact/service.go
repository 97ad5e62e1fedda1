// Package contact implements the saved-contact use cases: format a number,
// save it to the caller's history, list/filter/sort that history, and edit or
// remove entries. All history operations are scoped to the authenticated user.
package contact

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// maxContactsPerUser caps how many contacts a single user may keep.
const maxContactsPerUser = 1000

type contactRepo interface {
	Create(ctx context.Context, userID uuid.UUID, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Contact, error)
	Update(ctx context.Context, userID, contactID uuid.UUID, upd domain.ContactUpdate) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type historyEngine interface {
	View(records []*domain.Contact, q domain.HistoryQuery) []*domain.Contact
}

// Service implements contact operations.
type Service struct {
	log      *slog.Logger
	contacts contactRepo
	history  historyEngine
}

// NewService creates a new contact service instance.
func NewService(logger *slog.Logger, contacts contactRepo, history historyEngine) *Service {
	return &Service{
		log:      logger.With("service", "contact"),
		contacts: contacts,
		history:  history,
	}
}

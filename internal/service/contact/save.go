package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/internal/phone"
	"github.com/heartmarshall/wadirect-backend/pkg/ctxutil"
)

// Save canonicalizes the phone number against the selected country and stores
// the contact in the caller's history. The persisted number is always the
// canonical digit form, never the raw input.
func (s *Service) Save(ctx context.Context, input SaveInput) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	canonical, err := phone.Format(input.PhoneNumber, domain.CountryCode(input.Country))
	if err != nil {
		return nil, fmt.Errorf("contact.Save format: %w", err)
	}

	count, err := s.contacts.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contact.Save count: %w", err)
	}
	if count >= maxContactsPerUser {
		return nil, domain.NewValidationError("history", "history limit reached")
	}

	contact := &domain.Contact{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        input.Name,
		PhoneNumber: canonical,
		CountryCode: domain.CountryCode(input.Country),
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.contacts.Create(ctx, userID, contact)
	if err != nil {
		return nil, fmt.Errorf("contact.Save create: %w", err)
	}

	s.log.InfoContext(ctx, "contact saved",
		slog.String("contact_id", created.ID.String()),
		slog.String("country", input.Country))

	return created, nil
}

package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/pkg/ctxutil"
)

// Update applies partial edits to a contact. An updated phone number must be
// canonical digits; it is deliberately not re-validated against the stored
// country, so a country edit never invalidates an existing number.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.contacts.Update(ctx, userID, input.ContactID, input.Fields())
	if err != nil {
		return nil, fmt.Errorf("contact.Update: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("contact_id", input.ContactID.String()))

	return updated, nil
}

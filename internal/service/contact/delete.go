package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/pkg/ctxutil"
)

// Delete removes a contact from the caller's history. Deleting an already
// removed contact returns ErrNotFound; the operation is not idempotent.
func (s *Service) Delete(ctx context.Context, input DeleteInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.contacts.Delete(ctx, userID, input.ContactID); err != nil {
		return fmt.Errorf("contact.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("contact_id", input.ContactID.String()))

	return nil
}

package contact

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/pkg/ctxutil"
)

// ListHistory returns the caller's contacts filtered and ordered per input.
// The repository supplies the rows; the history engine shapes the view.
func (s *Service) ListHistory(ctx context.Context, input HistoryInput) ([]*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.contacts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("contact.ListHistory: %w", err)
	}

	return s.history.View(records, input.Query()), nil
}

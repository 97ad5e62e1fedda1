package contact

import (
	"context"
	"fmt"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/internal/phone"
)

// FormatResult is returned by FormatNumber.
type FormatResult struct {
	PhoneNumber string
	WALink      string
}

// FormatNumber canonicalizes a phone number and builds its wa.me link without
// persisting anything. It requires no authentication: numbers can be formatted
// before signing in.
func (s *Service) FormatNumber(ctx context.Context, input FormatInput) (*FormatResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	canonical, err := phone.Format(input.PhoneNumber, domain.CountryCode(input.Country))
	if err != nil {
		return nil, fmt.Errorf("contact.FormatNumber: %w", err)
	}

	return &FormatResult{
		PhoneNumber: canonical,
		WALink:      phone.DeepLink(canonical),
	}, nil
}

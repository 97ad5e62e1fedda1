package contact

import (
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/wadirect-backend/internal/domain"
	"github.com/heartmarshall/wadirect-backend/internal/phone"
)

const (
	maxNameLen  = 255
	maxPhoneLen = 64
)

// SaveInput holds parameters for the Save operation. PhoneNumber is the raw
// user input; canonicalization happens inside Save.
type SaveInput struct {
	Name        *string
	PhoneNumber string
	Country     string
}

// Validate validates the save input. Number validity against the country's
// numbering plan is checked later by the formatter, not here.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.PhoneNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "required"})
	} else if len(i.PhoneNumber) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "too long"})
	}

	if i.Country == "" {
		errs = append(errs, domain.FieldError{Field: "country", Message: "required"})
	}

	if i.Name != nil && len(*i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput holds the search/filter/sort parameters for ListHistory.
// Zero values fall back to the defaults in domain.HistoryQuery.Normalize.
type HistoryInput struct {
	Search  string
	Country string
	SortBy  string
	SortDir string
}

// Validate validates the history input.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Search) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}

	switch i.SortBy {
	case "", string(domain.SortByName), string(domain.SortByPhoneNumber),
		string(domain.SortByCountryCode), string(domain.SortByCreatedAt):
	default:
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "unknown sort key"})
	}

	switch i.SortDir {
	case "", string(domain.SortAsc), string(domain.SortDesc):
	default:
		errs = append(errs, domain.FieldError{Field: "sort_dir", Message: "must be asc or desc"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Query converts the input to a domain.HistoryQuery.
func (i HistoryInput) Query() domain.HistoryQuery {
	return domain.HistoryQuery{
		Search:        i.Search,
		CountryFilter: i.Country,
		SortBy:        domain.SortKey(i.SortBy),
		SortDir:       domain.SortDirection(i.SortDir),
	}
}

// UpdateInput holds parameters for the Update operation. Nil fields are left
// unchanged.
type UpdateInput struct {
	ContactID   uuid.UUID
	Name        *string
	PhoneNumber *string
	Country     *string
}

// Validate validates the update input. An updated phone number must already
// be canonical (digits only); it is not re-checked against the country's
// numbering plan.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}

	if i.Name == nil && i.PhoneNumber == nil && i.Country == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "no fields to update"})
	}

	if i.Name != nil && len(*i.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.PhoneNumber != nil {
		switch {
		case *i.PhoneNumber == "":
			errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "required"})
		case len(*i.PhoneNumber) > maxPhoneLen:
			errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "too long"})
		case !phone.IsCanonical(*i.PhoneNumber):
			errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "must contain only digits"})
		}
	}

	if i.Country != nil && !phone.IsSupported(domain.CountryCode(*i.Country)) {
		errs = append(errs, domain.FieldError{Field: "country", Message: "unsupported country"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Fields converts the input to a domain.ContactUpdate.
func (i UpdateInput) Fields() domain.ContactUpdate {
	upd := domain.ContactUpdate{
		Name:        i.Name,
		PhoneNumber: i.PhoneNumber,
	}
	if i.Country != nil {
		cc := domain.CountryCode(*i.Country)
		upd.CountryCode = &cc
	}
	return upd
}

// DeleteInput holds parameters for the Delete operation.
type DeleteInput struct {
	ContactID uuid.UUID
}

// Validate validates the delete input.
func (i DeleteInput) Validate() error {
	if i.ContactID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// FormatInput holds parameters for the FormatNumber operation.
type FormatInput struct {
	PhoneNumber string
	Country     string
}

// Validate validates the format input.
func (i FormatInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.PhoneNumber) == "" {
		errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "required"})
	} else if len(i.PhoneNumber) > maxPhoneLen {
		errs = append(errs, domain.FieldError{Field: "phoneNumber", Message: "too long"})
	}

	if i.Country == "" {
		errs = append(errs, domain.FieldError{Field: "country", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

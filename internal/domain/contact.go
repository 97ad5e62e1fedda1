package domain

import (
	"time"

	"github.com/google/uuid"
)

// CountryCode is an ISO-3166 alpha-2 country code ("ID", "US", ...).
type CountryCode string

func (c CountryCode) String() string { return string(c) }

// CountryFilterAll disables country filtering in a HistoryQuery.
const CountryFilterAll = "all"

// Contact is a saved WhatsApp contact owned by a single user.
//
// PhoneNumber is the canonical form: the E.164 number without the leading
// plus sign, digits only. UserID never changes after creation.
type Contact struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        *string
	PhoneNumber string
	CountryCode CountryCode
	CreatedAt   time.Time
}

// SortKey selects the field history results are ordered by.
type SortKey string

const (
	SortByName        SortKey = "name"
	SortByPhoneNumber SortKey = "phone_number"
	SortByCountryCode SortKey = "country_code"
	SortByCreatedAt   SortKey = "created_at"
)

// SortDirection is the order direction for history results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// HistoryQuery holds the search/filter/sort parameters for the history view.
//
// CountryFilter is either a CountryCode or CountryFilterAll. An empty Search
// matches every record.
type HistoryQuery struct {
	Search        string
	CountryFilter string
	SortBy        SortKey
	SortDir       SortDirection
}

// Normalize applies the defaults used by the history view: sort by creation
// time, newest first, no country filter.
func (q *HistoryQuery) Normalize() {
	switch q.SortBy {
	case SortByName, SortByPhoneNumber, SortByCountryCode, SortByCreatedAt:
	default:
		q.SortBy = SortByCreatedAt
	}

	switch q.SortDir {
	case SortAsc, SortDesc:
	default:
		q.SortDir = SortDesc
	}

	if q.CountryFilter == "" {
		q.CountryFilter = CountryFilterAll
	}
}

// ContactUpdate carries the mutable Contact fields for a partial update.
// Nil fields are left unchanged.
type ContactUpdate struct {
	Name        *string
	PhoneNumber *string
	CountryCode *CountryCode
}

// Package history produces the ordered, filtered view of a user's saved
// contacts. It is pure: the engine never touches storage and never mutates
// its input.
package history

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// Engine applies HistoryQuery filtering and sorting to contact collections.
// String fields compare under Unicode collation for the configured language.
type Engine struct {
	lang language.Tag
}

// NewEngine creates an engine using language-neutral Unicode collation.
func NewEngine() *Engine {
	return &Engine{lang: language.Und}
}

// View returns a new slice with the records matching q, ordered by its sort
// key and direction. Ties keep their relative input order: the sort is
// stable and a descending direction negates the comparator rather than
// reversing the result.
func (e *Engine) View(records []*domain.Contact, q domain.HistoryQuery) []*domain.Contact {
	q.Normalize()

	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]*domain.Contact, 0, len(records))
	for _, c := range records {
		if matches(c, search, q.CountryFilter) {
			out = append(out, c)
		}
	}

	// Collators keep internal buffers, so one is built per call rather than
	// shared across requests.
	cmp := comparator(collate.New(e.lang), q.SortBy)
	if q.SortDir == domain.SortDesc {
		inner := cmp
		cmp = func(a, b *domain.Contact) int { return -inner(a, b) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return cmp(out[i], out[j]) < 0
	})

	return out
}

// matches implements the conjunctive filter: the search term must hit the
// name or the phone number, and the country filter must match. A contact
// without a name can only match a non-empty search through its phone number.
func matches(c *domain.Contact, search, countryFilter string) bool {
	if search != "" {
		nameHit := c.Name != nil && strings.Contains(strings.ToLower(*c.Name), search)
		phoneHit := strings.Contains(c.PhoneNumber, search)
		if !nameHit && !phoneHit {
			return false
		}
	}

	if countryFilter != domain.CountryFilterAll && string(c.CountryCode) != countryFilter {
		return false
	}

	return true
}

func comparator(col *collate.Collator, key domain.SortKey) func(a, b *domain.Contact) int {
	switch key {
	case domain.SortByName:
		return func(a, b *domain.Contact) int {
			return col.CompareString(nameOrEmpty(a), nameOrEmpty(b))
		}
	case domain.SortByPhoneNumber:
		return func(a, b *domain.Contact) int {
			return col.CompareString(a.PhoneNumber, b.PhoneNumber)
		}
	case domain.SortByCountryCode:
		return func(a, b *domain.Contact) int {
			return col.CompareString(string(a.CountryCode), string(b.CountryCode))
		}
	default: // domain.SortByCreatedAt
		return func(a, b *domain.Contact) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
}

// nameOrEmpty makes an absent name sort as the empty string.
func nameOrEmpty(c *domain.Contact) string {
	if c.Name == nil {
		return ""
	}
	return *c.Name
}

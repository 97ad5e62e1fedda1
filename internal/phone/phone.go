// Package phone validates raw phone-number input against a country's
// numbering plan and produces the canonical digit string used everywhere
// else in the system: the E.164 number without the leading plus sign.
//
// Parsing and plan validation are delegated to nyaruka/phonenumbers, the Go
// port of libphonenumber. This package never performs I/O and is
// deterministic for a given numbering-plan dataset.
package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/heartmarshall/wadirect-backend/internal/domain"
)

// waLinkBase is the WhatsApp click-to-chat URL prefix. Appending the
// canonical digits yields a deep link that opens a chat with that number.
const waLinkBase = "https://wa.me/"

// Format validates raw against the numbering plan of country and returns the
// canonical digit string.
//
// raw may contain spaces, dashes, parentheses, and an optional leading "+".
// Input that already carries the country prefix and input without it produce
// the same canonical result, as long as the plan can disambiguate.
//
// Errors: domain.ErrValidation for an unsupported country,
// domain.ErrInvalidNumber when the input does not parse or is not valid for
// the selected country (a number valid elsewhere is still invalid here), and
// domain.ErrUnavailable for numbering-plan failures that are not the
// caller's fault.
func Format(raw string, country domain.CountryCode) (string, error) {
	if !IsSupported(country) {
		return "", domain.NewValidationError("country", "unsupported country code")
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty input: %w", domain.ErrInvalidNumber)
	}

	num, err := phonenumbers.Parse(raw, country.String())
	if err != nil {
		if isInputError(err) {
			return "", fmt.Errorf("parse for region %s: %w", country, domain.ErrInvalidNumber)
		}
		return "", fmt.Errorf("numbering plan for region %s: %v: %w", country, err, domain.ErrUnavailable)
	}

	// The number must be valid for the selected region specifically; a
	// structurally fine number for another region is rejected rather than
	// silently reinterpreted.
	if !phonenumbers.IsValidNumberForRegion(num, country.String()) {
		return "", fmt.Errorf("not valid for region %s: %w", country, domain.ErrInvalidNumber)
	}

	return strings.TrimPrefix(phonenumbers.Format(num, phonenumbers.E164), "+"), nil
}

// DeepLink returns the wa.me click-to-chat URL for a canonical digit string.
func DeepLink(canonical string) string {
	return waLinkBase + canonical
}

// IsCanonical reports whether s is a plausible stored phone number:
// non-empty and digits only. Used to keep the stored invariant on edits,
// which deliberately do not re-run full plan validation.
func IsCanonical(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isInputError distinguishes "the input is not a usable number" from
// numbering-plan faults. The library reports input problems through a fixed
// set of sentinel errors.
func isInputError(err error) bool {
	return errors.Is(err, phonenumbers.ErrNotANumber) ||
		errors.Is(err, phonenumbers.ErrInvalidCountryCode) ||
		errors.Is(err, phonenumbers.ErrTooShortAfterIDD) ||
		errors.Is(err, phonenumbers.ErrTooShortNSN) ||
		errors.Is(err, phonenumbers.ErrNumTooLong)
}

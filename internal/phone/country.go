package phone

import "github.com/heartmarshall/wadirect-backend/internal/domain"

// Country describes a supported destination country: its ISO-3166 code, the
// international dialing prefix, and display metadata for clients.
type Country struct {
	Code     domain.CountryCode
	Name     string
	DialCode string
	Flag     string
}

// countries is the fixed set of supported countries. Order is the display
// order used by clients.
var countries = []Country{
	{Code: "ID", Name: "Indonesia", DialCode: "62", Flag: "🇮🇩"},
	{Code: "MY", Name: "Malaysia", DialCode: "60", Flag: "🇲🇾"},
	{Code: "SG", Name: "Singapore", DialCode: "65", Flag: "🇸🇬"},
	{Code: "TH", Name: "Thailand", DialCode: "66", Flag: "🇹🇭"},
	{Code: "PH", Name: "Philippines", DialCode: "63", Flag: "🇵🇭"},
	{Code: "US", Name: "United States", DialCode: "1", Flag: "🇺🇸"},
	{Code: "GB", Name: "United Kingdom", DialCode: "44", Flag: "🇬🇧"},
	{Code: "IN", Name: "India", DialCode: "91", Flag: "🇮🇳"},
	{Code: "BR", Name: "Brazil", DialCode: "55", Flag: "🇧🇷"},
	{Code: "MX", Name: "Mexico", DialCode: "52", Flag: "🇲🇽"},
	{Code: "ES", Name: "Spain", DialCode: "34", Flag: "🇪🇸"},
	{Code: "DE", Name: "Germany", DialCode: "49", Flag: "🇩🇪"},
}

// Countries returns the supported countries in display order.
// The returned slice is a copy; callers may not mutate package state.
func Countries() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// ByCode returns the country for the given code.
func ByCode(code domain.CountryCode) (Country, bool) {
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// IsSupported reports whether the code is one of the supported countries.
func IsSupported(code domain.CountryCode) bool {
	_, ok := ByCode(code)
	return ok
}

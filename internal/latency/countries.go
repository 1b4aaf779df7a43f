package latency

import (
	"strings"

	"github.com/biter777/countries"
)

// countryAliases maps the country spellings used in the site catalogs
// to ISO-2 codes. Kept ahead of the library lookup so catalog values
// resolve without depending on its name matching.
var countryAliases = map[string]string{
	"USA":            "US",
	"United States":  "US",
	"United Kingdom": "GB",
	"UK":             "GB",
	"Singapore":      "SG",
	"Japan":          "JP",
	"Netherlands":    "NL",
	"Ireland":        "IE",
	"Germany":        "DE",
}

// CountryCode resolves a free-text country name to an ISO-2 code.
// Resolution order: alias table, then full country-name lookup, then
// the first two characters uppercased. The last step is a heuristic,
// not a correctness guarantee; unknown strings degrade silently.
func CountryCode(country string) string {
	if code, ok := countryAliases[country]; ok {
		return code
	}

	if c := countries.ByName(country); c != countries.Unknown {
		return c.Alpha2()
	}

	if len(country) >= 2 {
		return strings.ToUpper(country[:2])
	}
	return strings.ToUpper(country)
}

package normalize

import (
	"errors"
	"strings"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

var errNotIATA = errors.New("not a 3-letter IATA code")

// NormalizeAirportCode upper-cases and trims a code and converts 4-letter US
// ICAO codes ("KDEN") to IATA ("DEN"). Codes that still do not look like
// IATA codes are returned as cleaned text.
func NormalizeAirportCode(code string) string {
	c, _ := normalizeAirportCode(code)
	return c
}

func normalizeAirportCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) == 4 && strings.HasPrefix(c, "K") && domain.IsIATACode(c[1:]) {
		c = c[1:]
	}
	if !domain.IsIATACode(c) {
		return c, errNotIATA
	}
	return c, nil
}

package normalize

import "github.com/flight-search/flight-normalization-service/internal/domain"

// UnavailableFare is the upstream sentinel for a fare tier that is sold out
// or not offered.
const UnavailableFare = -1

// CleanFare maps nil and the -1 sentinel to nil. Every other value,
// including 0, is returned as a fresh pointer.
func CleanFare(v *float64) *float64 {
	if v == nil || *v == UnavailableFare {
		return nil
	}
	out := *v
	return &out
}

// MapFlatFares maps the flat shape's three tiers onto the canonical tiers.
//
// Basic is the lowest available value among go_wild, discount_den and
// standard, ties going to the first listed. Economy is discount_den,
// premium is standard, and business is never offered by this source.
func MapFlatFares(raw domain.FlatFares) domain.Fares {
	goWild := CleanFare(raw.GoWild)
	den := CleanFare(raw.DiscountDen)
	standard := CleanFare(raw.Standard)

	return domain.Fares{
		Basic:    lowestFare(goWild, den, standard),
		Economy:  den,
		Premium:  standard,
		Business: nil,
	}
}

// MapLegFares maps the leg shape's tiers one to one with sentinel cleaning.
func MapLegFares(raw domain.LegFares) domain.Fares {
	return domain.Fares{
		Basic:    CleanFare(raw.Basic),
		Economy:  CleanFare(raw.Economy),
		Premium:  CleanFare(raw.Premium),
		Business: CleanFare(raw.Business),
	}
}

// lowestFare returns a copy of the smallest non-nil fare, earliest on ties.
func lowestFare(candidates ...*float64) *float64 {
	var best *float64
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || *c < *best {
			best = c
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

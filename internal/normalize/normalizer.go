package normalize

import (
	"errors"
	"strings"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

var (
	errNoLegs         = errors.New("record has no legs")
	errMissingVariant = errors.New("record variant payload missing")
	errUnknownKind    = errors.New("unknown record kind")
)

// Normalizer turns raw records into normalized flights and records a
// ParseWarning for every field it had to default. A Normalizer is meant to
// be used for one payload and is not safe for concurrent use.
type Normalizer struct {
	warnings []domain.ParseWarning
}

// New creates an empty Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// Warnings returns the warnings collected so far.
func (n *Normalizer) Warnings() []domain.ParseWarning {
	return n.warnings
}

func (n *Normalizer) warn(field, value string, err error) {
	n.warnings = append(n.warnings, domain.ParseWarning{
		Field:  field,
		Value:  value,
		Reason: err.Error(),
	})
}

// Flights normalizes every record, dropping only records without legs.
func (n *Normalizer) Flights(records []domain.RawFlightRecord) []domain.NormalizedFlight {
	out := make([]domain.NormalizedFlight, 0, len(records))
	for _, rec := range records {
		if f, ok := n.Flight(rec); ok {
			out = append(out, f)
		}
	}
	return out
}

// Flight normalizes a single record. It returns false when the record has
// no legs or an unknown kind; every other defect is defaulted field by field.
func (n *Normalizer) Flight(rec domain.RawFlightRecord) (domain.NormalizedFlight, bool) {
	legs := n.legs(rec.Legs)
	if len(legs) == 0 {
		n.warn("legs", "", errNoLegs)
		return domain.NormalizedFlight{}, false
	}

	minutes, err := parseDuration(rec.Duration)
	if err != nil {
		n.warn("duration", rec.Duration, err)
	}

	flight := domain.NormalizedFlight{
		TotalDurationMinutes: minutes,
		DurationLabel:        FormatDurationLabel(rec.Duration),
		Legs:                 legs,
	}

	first, last := legs[0], legs[len(legs)-1]

	switch rec.Kind {
	case domain.RawKindLeg:
		if rec.LegShape == nil {
			n.warn("kind", string(rec.Kind), errMissingVariant)
			return domain.NormalizedFlight{}, false
		}
		flight.Source = domain.SourceLeg
		flight.Fares = MapLegFares(rec.LegShape.Fares)
		flight.Stops = len(legs) - 1

		plusOne, err := plusOneDay(first.DepartureTime, last.ArrivalTime)
		if err != nil {
			plusOne = rec.LegShape.IsPlusOneDay
		}
		flight.IsPlusOneDay = plusOne

	case domain.RawKindFlat:
		if rec.FlatShape == nil {
			n.warn("kind", string(rec.Kind), errMissingVariant)
			return domain.NormalizedFlight{}, false
		}
		flight.Source = domain.SourceFlat
		flight.Fares = MapFlatFares(rec.FlatShape.Fares)

		stops, err := parseStops(rec.FlatShape.Stops)
		if err != nil {
			n.warn("stops", rec.FlatShape.Stops, err)
		}
		flight.Stops = stops

		plusOne, err := plusOneDay(first.DepartureTime, last.ArrivalTime)
		if err != nil {
			n.warn("arrival_time", last.ArrivalTime, err)
		}
		flight.IsPlusOneDay = plusOne

	default:
		n.warn("kind", string(rec.Kind), errUnknownKind)
		return domain.NormalizedFlight{}, false
	}

	return flight, true
}

func (n *Normalizer) legs(raw []domain.Leg) []domain.Leg {
	if len(raw) == 0 {
		return nil
	}
	out := make([]domain.Leg, len(raw))
	for i, l := range raw {
		out[i] = domain.Leg{
			Origin:        n.airportCode("origin", l.Origin),
			Destination:   n.airportCode("destination", l.Destination),
			DepartureTime: strings.TrimSpace(l.DepartureTime),
			ArrivalTime:   strings.TrimSpace(l.ArrivalTime),
		}
	}
	return out
}

func (n *Normalizer) airportCode(field, raw string) string {
	code, err := normalizeAirportCode(raw)
	if err != nil {
		n.warn(field, raw, err)
	}
	return code
}

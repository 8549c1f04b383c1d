package usecase

import (
	"sort"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// ApplyFilters returns the flights matching opts. A nil or zero opts returns
// the input unchanged. The input slice is never mutated.
func ApplyFilters(flights []domain.NormalizedFlight, opts *domain.FilterOptions) []domain.NormalizedFlight {
	if opts == nil || opts.IsZero() {
		return flights
	}

	result := make([]domain.NormalizedFlight, 0, len(flights))
	for _, f := range flights {
		if opts.Matches(f) {
			result = append(result, f)
		}
	}
	return result
}

// SortFlights returns a stably sorted copy of flights. SortNone returns the
// input unchanged.
func SortFlights(flights []domain.NormalizedFlight, sortBy domain.SortOption) []domain.NormalizedFlight {
	less := sortFunc(sortBy)
	if less == nil || len(flights) <= 1 {
		return flights
	}

	result := make([]domain.NormalizedFlight, len(flights))
	copy(result, flights)
	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}

func sortFunc(sortBy domain.SortOption) func(a, b domain.NormalizedFlight) bool {
	switch sortBy {
	case domain.SortByDeparture:
		return func(a, b domain.NormalizedFlight) bool {
			return a.FirstLeg().DepartureTime < b.FirstLeg().DepartureTime
		}
	case domain.SortByDuration:
		return func(a, b domain.NormalizedFlight) bool {
			return a.TotalDurationMinutes < b.TotalDurationMinutes
		}
	case domain.SortByStops:
		return func(a, b domain.NormalizedFlight) bool {
			return a.Stops < b.Stops
		}
	case domain.SortByFare:
		return func(a, b domain.NormalizedFlight) bool {
			fa, okA := a.LowestFare()
			fb, okB := b.LowestFare()
			if okA != okB {
				return okA
			}
			return fa < fb
		}
	default:
		return nil
	}
}

package usecase

import (
	"sort"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// GroupByDestination buckets flights by the destination of their last leg.
// Groups are labelled from airports and sorted by city name, falling back to
// the code for unknown airports. The sort is stable and case-sensitive;
// flights keep their input order inside a group. Every input flight lands in
// exactly one group.
func GroupByDestination(flights []domain.NormalizedFlight, airports map[string]domain.Airport) []domain.DestinationGroup {
	index := make(map[string]int)
	groups := make([]domain.DestinationGroup, 0)

	for _, f := range flights {
		code := f.FinalDestination()
		i, ok := index[code]
		if !ok {
			airport, known := airports[code]
			if !known {
				airport = domain.Airport{Code: code}
			}
			groups = append(groups, domain.DestinationGroup{
				DestinationCode: code,
				Label:           airport.Label(),
				City:            airport.SortKey(),
				Flights:         []domain.NormalizedFlight{},
			})
			i = len(groups) - 1
			index[code] = i
		}
		groups[i].Add(f)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].City < groups[j].City
	})
	return groups
}

// destinationCodes returns the distinct final destinations in first-seen order.
func destinationCodes(flights []domain.NormalizedFlight) []string {
	seen := make(map[string]struct{})
	codes := make([]string, 0)
	for _, f := range flights {
		code := f.FinalDestination()
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}

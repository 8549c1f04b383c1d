package http

import (
	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/usecase"
)

// ToOptions converts validated pipeline parameters to use case options.
// A request without any filter yields nil filters.
func ToOptions(p PipelineParams) usecase.Options {
	opts := usecase.DefaultOptions()

	// Validated already; an invalid value cannot reach here
	if sortBy, err := domain.ParseSortOption(p.Sort); err == nil {
		opts.SortBy = sortBy
	}

	filters := ToDomainFilters(p)
	if !filters.IsZero() {
		opts.Filters = &filters
	}
	return opts
}

// ToDomainFilters converts pipeline parameters to domain.FilterOptions.
func ToDomainFilters(p PipelineParams) domain.FilterOptions {
	return domain.FilterOptions{
		NonstopOnly:        p.NonstopOnly,
		GoWildOnly:         p.GoWildOnly,
		ExcludeBlackout:    p.ExcludeBlackout,
		MaxStops:           p.MaxStops,
		MaxDurationMinutes: p.MaxDurationMinutes,
	}
}

// ToSearchQuery converts search parameters to a domain.SearchQuery.
func ToSearchQuery(p SearchParams) domain.SearchQuery {
	return domain.SearchQuery{
		Origin:      p.Origin,
		Destination: p.Destination,
		Date:        p.Date,
	}
}

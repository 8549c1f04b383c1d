// Package usecase runs the normalization pipeline: ingestion, deduplication,
// field normalization, blackout annotation and grouping by destination.
package usecase

import "github.com/flight-search/flight-normalization-service/internal/domain"

// Options tune a single pipeline run.
type Options struct {
	// Filters narrows the returned flights; nil keeps all
	Filters *domain.FilterOptions

	// SortBy orders flights inside each group (or the flat list)
	SortBy domain.SortOption
}

// DefaultOptions returns options that keep upstream order and every flight.
func DefaultOptions() Options {
	return Options{SortBy: domain.SortNone}
}

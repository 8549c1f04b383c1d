package domain

import "context"

//go:generate mockgen -source=source.go -destination=mock_source.go -package=domain

// FlightSource fetches raw scraped flight payloads for a query.
// Implementations return the payload bytes untouched; shape handling
// belongs to ingestion.
type FlightSource interface {
	// Name returns the unique identifier of the source.
	Name() string

	// Fetch returns the raw payload for the query.
	Fetch(ctx context.Context, query SearchQuery) ([]byte, error)
}

// Package mock provides test doubles for the flight normalization service.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific payloads).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// Source is a configurable mock implementation of domain.FlightSource.
// It supports configurable delays, errors, and payloads for testing
// timeouts and upstream failures.
type Source struct {
	name    string
	payload []byte
	err     error
	delay   time.Duration

	mu      sync.Mutex
	queries []domain.SearchQuery
}

// NewSource creates a new mock source with the given name.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// WithPayload configures the source to return the given payload.
func (s *Source) WithPayload(payload []byte) *Source {
	s.payload = payload
	return s
}

// WithError configures the source to return the given error.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Name implements domain.FlightSource.
func (s *Source) Name() string {
	return s.name
}

// Fetch implements domain.FlightSource. It records the query, honours the
// configured delay and context, then returns the payload or error.
func (s *Source) Fetch(ctx context.Context, query domain.SearchQuery) ([]byte, error) {
	s.mu.Lock()
	s.queries = append(s.queries, query)
	s.mu.Unlock()

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.payload, nil
}

// CallCount returns the number of times Fetch was called.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

// LastQuery returns the most recent query, or a zero query before any call.
func (s *Source) LastQuery() domain.SearchQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queries) == 0 {
		return domain.SearchQuery{}
	}
	return s.queries[len(s.queries)-1]
}

// Reset clears the recorded calls.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = nil
}

// Ensure Source implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Source)(nil)

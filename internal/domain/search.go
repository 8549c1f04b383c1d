package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SearchQuery selects the departures to fetch from a flight source.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "DEN")
	Origin string `json:"origin"`

	// Destination optionally narrows the search; empty means all destinations
	Destination string `json:"destination,omitempty"`

	// Date is the departure date in YYYY-MM-DD format
	Date string `json:"date"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsIATACode reports whether code looks like a 3-letter IATA airport code.
func IsIATACode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// IsCalendarDate reports whether s is a valid zero-padded YYYY-MM-DD date.
func IsCalendarDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// Normalize upper-cases and trims the airport codes.
func (q *SearchQuery) Normalize() {
	q.Origin = strings.ToUpper(strings.TrimSpace(q.Origin))
	q.Destination = strings.ToUpper(strings.TrimSpace(q.Destination))
	q.Date = strings.TrimSpace(q.Date)
}

// Validate checks the query and returns a wrapped ErrInvalidRequest on failure.
func (q *SearchQuery) Validate() error {
	if q.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !IsIATACode(q.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Origin)
	}

	if q.Destination != "" {
		if !IsIATACode(q.Destination) {
			return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, q.Destination)
		}
		if q.Destination == q.Origin {
			return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
		}
	}

	if q.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidRequest)
	}
	if !IsCalendarDate(q.Date) {
		return fmt.Errorf("%w: date must be a valid YYYY-MM-DD date, got %q", ErrInvalidRequest, q.Date)
	}

	return nil
}

package domain

import (
	"fmt"
	"strings"
)

// SortOption orders the flights inside each destination group.
type SortOption string

// Supported sort options.
const (
	// SortNone keeps the upstream order
	SortNone SortOption = ""

	// SortByDeparture orders by first-leg departure time, as text
	SortByDeparture SortOption = "departure"

	// SortByDuration orders by total duration, shortest first
	SortByDuration SortOption = "duration"

	// SortByFare orders by the lowest available fare, flights without fares last
	SortByFare SortOption = "fare"

	// SortByStops orders by stop count, nonstop first
	SortByStops SortOption = "stops"
)

// ValidSortOptions lists the accepted sort option values.
var ValidSortOptions = []SortOption{SortNone, SortByDeparture, SortByDuration, SortByFare, SortByStops}

// IsValid reports whether the sort option is supported.
func (s SortOption) IsValid() bool {
	for _, v := range ValidSortOptions {
		if s == v {
			return true
		}
	}
	return false
}

// ParseSortOption parses a case-insensitive sort option.
func ParseSortOption(s string) (SortOption, error) {
	opt := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if !opt.IsValid() {
		return SortNone, fmt.Errorf("%w: sort must be one of departure, duration, fare, stops; got %q", ErrInvalidRequest, s)
	}
	return opt, nil
}

// FilterOptions narrows the normalized flights returned to the caller.
// A zero value keeps every flight.
type FilterOptions struct {
	// NonstopOnly keeps single-leg itineraries
	NonstopOnly bool `json:"nonstop_only,omitempty"`

	// GoWildOnly keeps flights with a basic (GoWild) fare
	GoWildOnly bool `json:"gowild_only,omitempty"`

	// ExcludeBlackout drops flights departing on a blackout day
	ExcludeBlackout bool `json:"exclude_blackout,omitempty"`

	// MaxStops keeps flights with at most this many stops
	MaxStops *int `json:"max_stops,omitempty"`

	// MaxDurationMinutes keeps flights no longer than this
	MaxDurationMinutes *int `json:"max_duration_minutes,omitempty"`
}

// IsZero reports whether no filter is set.
func (o FilterOptions) IsZero() bool {
	return !o.NonstopOnly && !o.GoWildOnly && !o.ExcludeBlackout && o.MaxStops == nil && o.MaxDurationMinutes == nil
}

// Validate rejects negative limits.
func (o FilterOptions) Validate() error {
	if o.MaxStops != nil && *o.MaxStops < 0 {
		return NewValidationError("max_stops", "must be zero or greater")
	}
	if o.MaxDurationMinutes != nil && *o.MaxDurationMinutes < 0 {
		return NewValidationError("max_duration_minutes", "must be zero or greater")
	}
	return nil
}

// Matches reports whether the flight passes every filter.
func (o FilterOptions) Matches(f NormalizedFlight) bool {
	switch {
	case o.NonstopOnly && !f.IsNonstop():
		return false
	case o.GoWildOnly && !f.HasGoWildFare():
		return false
	case o.ExcludeBlackout && f.Blackout:
		return false
	case o.MaxStops != nil && f.Stops > *o.MaxStops:
		return false
	case o.MaxDurationMinutes != nil && f.TotalDurationMinutes > *o.MaxDurationMinutes:
		return false
	}
	return true
}

// LowestFare returns the cheapest available fare tier of the flight.
func (f NormalizedFlight) LowestFare() (float64, bool) {
	var (
		lowest float64
		found  bool
	)
	for _, tier := range []*float64{f.Fares.Basic, f.Fares.Economy, f.Fares.Premium, f.Fares.Business} {
		if tier != nil && (!found || *tier < lowest) {
			lowest, found = *tier, true
		}
	}
	return lowest, found
}

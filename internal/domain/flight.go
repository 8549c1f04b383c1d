// Package domain contains the core entities of the flight normalization service.
// These types are source-agnostic and are shared by every pipeline stage.
package domain

// Source kinds of a normalized flight, mirroring the raw record variant it came from.
const (
	SourceLeg  = "leg"
	SourceFlat = "flat"
)

// NormalizedFlight is the canonical flight record consumed by presentation code.
type NormalizedFlight struct {
	// TotalDurationMinutes is the parsed itinerary duration (never negative)
	TotalDurationMinutes int `json:"total_duration_minutes"`

	// DurationLabel is a human-readable rendering of the upstream duration
	DurationLabel string `json:"duration_label"`

	// IsPlusOneDay is true when the arrival calendar date is after the departure date
	IsPlusOneDay bool `json:"is_plus_one_day"`

	// Stops is the number of intermediate stops (0 = nonstop)
	Stops int `json:"stops"`

	// Fares holds the canonical fare tiers
	Fares Fares `json:"fares"`

	// Legs is the ordered list of segments; always at least one
	Legs []Leg `json:"legs"`

	// Source is the raw shape this flight was normalized from (leg or flat)
	Source string `json:"source"`

	// Blackout is set when the departure date falls inside a blackout period
	Blackout bool `json:"blackout,omitempty"`
}

// Leg is one nonstop segment of an itinerary.
type Leg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// Fares holds the canonical fare tiers. A nil tier means no fare is available;
// zero is a valid fare and is kept distinct from nil.
type Fares struct {
	Basic    *float64 `json:"basic"`
	Economy  *float64 `json:"economy"`
	Premium  *float64 `json:"premium"`
	Business *float64 `json:"business"`
}

// FirstLeg returns the first segment of the itinerary.
func (f NormalizedFlight) FirstLeg() Leg {
	if len(f.Legs) == 0 {
		return Leg{}
	}
	return f.Legs[0]
}

// LastLeg returns the final segment of the itinerary.
func (f NormalizedFlight) LastLeg() Leg {
	if len(f.Legs) == 0 {
		return Leg{}
	}
	return f.Legs[len(f.Legs)-1]
}

// Origin is the origin airport of the first leg.
func (f NormalizedFlight) Origin() string {
	return f.FirstLeg().Origin
}

// FinalDestination is the destination airport of the last leg.
func (f NormalizedFlight) FinalDestination() string {
	return f.LastLeg().Destination
}

// IsNonstop reports whether the itinerary is a single leg.
func (f NormalizedFlight) IsNonstop() bool {
	return len(f.Legs) == 1
}

// HasGoWildFare reports whether the basic (GoWild) tier is available.
func (f NormalizedFlight) HasGoWildFare() bool {
	return f.Fares.Basic != nil
}

// SelectionKey builds the composite identity used by external persistence of
// user-confirmed selections: type + origin + destination + departure + arrival.
func SelectionKey(selectionType string, f NormalizedFlight) string {
	first, last := f.FirstLeg(), f.LastLeg()
	return selectionType + first.Origin + last.Destination + first.DepartureTime + last.ArrivalTime
}

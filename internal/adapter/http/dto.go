package http

// PipelineParams are the query parameters accepted by the payload and
// search endpoints.
type PipelineParams struct {
	// Sort orders flights: departure, duration, fare or stops (optional)
	Sort string

	// NonstopOnly keeps single-leg itineraries
	NonstopOnly bool

	// GoWildOnly keeps flights with a GoWild fare
	GoWildOnly bool

	// ExcludeBlackout drops flights departing on a blackout day
	ExcludeBlackout bool

	// MaxStops keeps flights with at most this many stops
	MaxStops *int

	// MaxDurationMinutes keeps flights no longer than this
	MaxDurationMinutes *int
}

// SearchParams select the departures fetched from the flight source.
type SearchParams struct {
	PipelineParams

	// Origin is the IATA code of the departure airport (e.g., "DEN")
	Origin string

	// Destination optionally narrows the search to one airport
	Destination string

	// Date is the departure date in YYYY-MM-DD format
	Date string
}

// RangeParams select the days of a blackout calendar range.
type RangeParams struct {
	From string
	To   string
}

// Query parameter names.
const (
	paramSort            = "sort"
	paramNonstopOnly     = "nonstop_only"
	paramGoWildOnly      = "gowild_only"
	paramExcludeBlackout = "exclude_blackout"
	paramMaxStops        = "max_stops"
	paramMaxDuration     = "max_duration"
	paramOrigin          = "origin"
	paramDestination     = "destination"
	paramDate            = "date"
	paramFrom            = "from"
	paramTo              = "to"
)

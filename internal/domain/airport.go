package domain

import "context"

//go:generate mockgen -source=airport.go -destination=mock_airport.go -package=domain

// Airport carries the display data of an airport.
type Airport struct {
	Code  string `json:"code" csv:"code"`
	City  string `json:"city" csv:"city"`
	State string `json:"state,omitempty" csv:"state"`
	Name  string `json:"name,omitempty" csv:"name"`
}

// Label returns "City, ST", "City", or the bare code when the city is unknown.
func (a Airport) Label() string {
	switch {
	case a.City == "":
		return a.Code
	case a.State == "":
		return a.City
	default:
		return a.City + ", " + a.State
	}
}

// SortKey is the city name, falling back to the airport code.
func (a Airport) SortKey() string {
	if a.City == "" {
		return a.Code
	}
	return a.City
}

// AirportLookup resolves IATA codes to display data.
// A miss is reported with ok == false and is never an error.
type AirportLookup interface {
	Lookup(ctx context.Context, code string) (Airport, bool)
}

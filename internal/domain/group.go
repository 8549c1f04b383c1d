package domain

// DestinationGroup collects flights sharing the same final destination.
// It is a derived view model and is never persisted.
type DestinationGroup struct {
	// DestinationCode is the IATA code of the last leg's destination
	DestinationCode string `json:"destination_code"`

	// Label is the display label (city and state, or the code when unknown)
	Label string `json:"label"`

	// City is the sort key; falls back to the code when the airport is unknown
	City string `json:"city"`

	Flights []NormalizedFlight `json:"flights"`

	FlightCount  int `json:"flight_count"`
	NonstopCount int `json:"nonstop_count"`
	GoWildCount  int `json:"gowild_count"`

	HasGoWildFare bool `json:"has_gowild_fare"`
	HasNonstop    bool `json:"has_nonstop"`
}

// Add appends a flight and updates the group counters.
func (g *DestinationGroup) Add(f NormalizedFlight) {
	g.Flights = append(g.Flights, f)
	g.FlightCount++
	if f.IsNonstop() {
		g.NonstopCount++
		g.HasNonstop = true
	}
	if f.HasGoWildFare() {
		g.GoWildCount++
		g.HasGoWildFare = true
	}
}

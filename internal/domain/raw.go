package domain

// RawKind tags the upstream shape of a scraped flight record.
type RawKind string

// Raw record variants.
const (
	// RawKindLeg is the multi-leg single-route shape (has a legs array)
	RawKindLeg RawKind = "leg"

	// RawKindFlat is the flat all-destinations shape (single leg)
	RawKindFlat RawKind = "flat"
)

// RawFlightRecord is the intermediate record produced by ingestion.
// Exactly one of LegShape or FlatShape is set, selected by Kind.
// Legs and Duration are populated for both variants.
type RawFlightRecord struct {
	Kind RawKind

	// Legs is the uniform leg view; flat records carry a single wrapped leg
	Legs []Leg

	// Duration is the raw duration text
	Duration string

	LegShape  *LegShape
	FlatShape *FlatShape
}

// IngestResult holds the raw records found in a payload envelope.
type IngestResult struct {
	Records []RawFlightRecord

	// Found is false when no flights array exists at any known path
	Found bool

	// Skipped counts array elements that were not JSON objects
	Skipped int
}

// LegShape is the multi-leg upstream variant.
type LegShape struct {
	TotalDuration string
	IsPlusOneDay  bool
	Fares         LegFares
	Legs          []Leg
}

// LegFares are the raw fare tiers of the leg shape. Nil means absent or null.
type LegFares struct {
	Basic    *float64
	Economy  *float64
	Premium  *float64
	Business *float64
}

// FlatShape is the flat single-leg upstream variant.
type FlatShape struct {
	Origin      string
	Destination string
	DepartTime  string
	ArriveTime  string
	Duration    string

	// Stops is the raw stop text; numeric upstream values are stringified
	Stops string

	Fares FlatFares
}

// FlatFares are the raw fare tiers of the flat shape. Nil means absent or null.
type FlatFares struct {
	Standard    *float64
	DiscountDen *float64
	GoWild      *float64
}

// DedupKey is the composite identity of a flat record.
type DedupKey struct {
	Origin      string
	Destination string
	DepartTime  string
	ArriveTime  string
	Duration    string
	Stops       string
}

// Key returns the composite dedup key of the flat record.
func (f FlatShape) Key() DedupKey {
	return DedupKey{
		Origin:      f.Origin,
		Destination: f.Destination,
		DepartTime:  f.DepartTime,
		ArriveTime:  f.ArriveTime,
		Duration:    f.Duration,
		Stops:       f.Stops,
	}
}

// WrapLeg wraps the flat origin/destination pair into a single leg.
func (f FlatShape) WrapLeg() Leg {
	return Leg{
		Origin:        f.Origin,
		Destination:   f.Destination,
		DepartureTime: f.DepartTime,
		ArrivalTime:   f.ArriveTime,
	}
}

// NewLegRecord builds a leg-variant raw record.
func NewLegRecord(s LegShape) RawFlightRecord {
	return RawFlightRecord{
		Kind:     RawKindLeg,
		Legs:     s.Legs,
		Duration: s.TotalDuration,
		LegShape: &s,
	}
}

// NewFlatRecord builds a flat-variant raw record with its wrapped leg.
func NewFlatRecord(s FlatShape) RawFlightRecord {
	return RawFlightRecord{
		Kind:      RawKindFlat,
		Legs:      []Leg{s.WrapLeg()},
		Duration:  s.Duration,
		FlatShape: &s,
	}
}

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

func TestNormalizer_FlatRecord(t *testing.T) {
	rec := domain.NewFlatRecord(domain.FlatShape{
		Origin:      "den",
		Destination: "MCO",
		DepartTime:  "2025-06-01T23:50:00Z",
		ArriveTime:  "2025-06-02T05:10:00Z",
		Duration:    "3 hrs 20 min",
		Stops:       "Nonstop",
		Fares: domain.FlatFares{
			Standard:    ptr(120),
			DiscountDen: ptr(95),
			GoWild:      ptr(80),
		},
	})

	n := New()
	f, ok := n.Flight(rec)
	require.True(t, ok)

	assert.Equal(t, domain.SourceFlat, f.Source)
	assert.Equal(t, 200, f.TotalDurationMinutes)
	assert.Equal(t, "3 hrs 20 min", f.DurationLabel)
	assert.True(t, f.IsPlusOneDay)
	assert.Equal(t, 0, f.Stops)
	require.Len(t, f.Legs, 1)
	assert.Equal(t, "DEN", f.Legs[0].Origin)
	assert.Equal(t, "MCO", f.Legs[0].Destination)
	assertFare(t, ptr(80), f.Fares.Basic, "basic")
	assertFare(t, ptr(95), f.Fares.Economy, "economy")
	assertFare(t, ptr(120), f.Fares.Premium, "premium")
	assert.Nil(t, f.Fares.Business)
	assert.Empty(t, n.Warnings())
}

func TestNormalizer_LegRecord(t *testing.T) {
	rec := domain.NewLegRecord(domain.LegShape{
		TotalDuration: "0.07:45:00",
		IsPlusOneDay:  false,
		Fares:         domain.LegFares{Basic: ptr(0), Economy: ptr(-1), Premium: ptr(199)},
		Legs: []domain.Leg{
			{Origin: "DEN", Destination: "ATL", DepartureTime: "2025-06-01T18:00:00-06:00", ArrivalTime: "2025-06-01T23:00:00-04:00"},
			{Origin: "ATL", Destination: "SJU", DepartureTime: "2025-06-01T23:59:00-04:00", ArrivalTime: "2025-06-02T03:45:00-04:00"},
		},
	})

	n := New()
	f, ok := n.Flight(rec)
	require.True(t, ok)

	assert.Equal(t, domain.SourceLeg, f.Source)
	assert.Equal(t, 465, f.TotalDurationMinutes)
	assert.Equal(t, "7 hrs 45 min", f.DurationLabel)
	assert.True(t, f.IsPlusOneDay, "computed from the leg timestamps")
	assert.Equal(t, 1, f.Stops)
	assertFare(t, ptr(0), f.Fares.Basic, "basic")
	assert.Nil(t, f.Fares.Economy)
	assertFare(t, ptr(199), f.Fares.Premium, "premium")
	assert.Equal(t, "SJU", f.FinalDestination())
}

func TestNormalizer_LegRecordFallsBackToUpstreamFlag(t *testing.T) {
	rec := domain.NewLegRecord(domain.LegShape{
		TotalDuration: "5:00",
		IsPlusOneDay:  true,
		Legs:          []domain.Leg{{Origin: "DEN", Destination: "PHL", DepartureTime: "11:30 PM", ArrivalTime: "5:30 AM"}},
	})

	f, ok := New().Flight(rec)
	require.True(t, ok)
	assert.True(t, f.IsPlusOneDay)
}

func TestNormalizer_DefaultsMalformedFields(t *testing.T) {
	rec := domain.NewFlatRecord(domain.FlatShape{
		Origin:      "Denver",
		Destination: "LAS",
		DepartTime:  "7:00 AM",
		ArriveTime:  "8:15 AM",
		Duration:    "soon",
		Stops:       "TBD",
	})

	n := New()
	f, ok := n.Flight(rec)
	require.True(t, ok, "malformed fields never drop the record")

	assert.Equal(t, 0, f.TotalDurationMinutes)
	assert.Equal(t, 1, f.Stops)
	assert.False(t, f.IsPlusOneDay)
	assert.Nil(t, f.Fares.Basic)
	assert.Equal(t, "DENVER", f.Legs[0].Origin)

	fields := make([]string, 0, len(n.Warnings()))
	for _, w := range n.Warnings() {
		fields = append(fields, w.Field)
	}
	assert.ElementsMatch(t, []string{"origin", "duration", "stops", "arrival_time"}, fields)
}

func TestNormalizer_OversizedDurationDefaultsToZero(t *testing.T) {
	rec := domain.NewFlatRecord(domain.FlatShape{
		Origin:      "DEN",
		Destination: "LAS",
		DepartTime:  "2025-06-01T08:00:00Z",
		ArriveTime:  "2025-06-01T10:20:00Z",
		Duration:    "9000000000000000 days",
		Stops:       "Nonstop",
	})

	n := New()
	f, ok := n.Flight(rec)
	require.True(t, ok)

	assert.Equal(t, 0, f.TotalDurationMinutes)
	require.Len(t, n.Warnings(), 1)
	assert.Equal(t, "duration", n.Warnings()[0].Field)
}

func TestNormalizer_DropsRecordsWithoutLegs(t *testing.T) {
	n := New()
	flights := n.Flights([]domain.RawFlightRecord{
		domain.NewLegRecord(domain.LegShape{TotalDuration: "1:00"}),
		{Kind: domain.RawKind("mystery"), Duration: "1:00", Legs: []domain.Leg{{Origin: "DEN", Destination: "LAS"}}},
		domain.NewFlatRecord(domain.FlatShape{Origin: "DEN", Destination: "LAS", Duration: "1:30", Stops: "0"}),
	})

	require.Len(t, flights, 1)
	assert.Equal(t, "LAS", flights[0].FinalDestination())
	assert.Len(t, n.Warnings(), 3, "no legs, unknown kind, unparseable arrival")
}

// Package scraper adapts payloads from the flight scraping service.
//
// Ingest turns a response envelope into raw flight records without loss of
// any field the normalizer needs. Client and FileSource fetch such
// envelopes from the scraping service or from disk.
package scraper

import (
	"encoding/json"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

// flightsPaths are the envelope locations of the flights array, tried in order.
var flightsPaths = [][]string{
	{"data", "json", "flights"},
	{"json", "flights"},
	{"data", "flights"},
	{"flights"},
}

// Ingest locates the flights array in the payload and converts every element
// into a RawFlightRecord. Elements with a "legs" key are leg-shaped, all
// others flat-shaped. Malformed JSON or a missing path yields no records and
// never an error. No deduplication or fare cleaning happens here.
func Ingest(payload []byte) domain.IngestResult {
	elems, ok := locateFlights(payload)
	if !ok {
		return domain.IngestResult{Records: []domain.RawFlightRecord{}}
	}

	result := domain.IngestResult{
		Records: make([]domain.RawFlightRecord, 0, len(elems)),
		Found:   true,
	}
	for _, elem := range elems {
		obj, ok := asObject(elem)
		if !ok {
			result.Skipped++
			continue
		}
		if _, hasLegs := obj["legs"]; hasLegs {
			result.Records = append(result.Records, domain.NewLegRecord(legShape(obj)))
		} else {
			result.Records = append(result.Records, domain.NewFlatRecord(flatShape(obj)))
		}
	}
	return result
}

func locateFlights(payload []byte) ([]json.RawMessage, bool) {
	root, ok := asObject(payload)
	if !ok {
		return nil, false
	}

	for _, path := range flightsPaths {
		if elems, ok := walk(root, path); ok {
			return elems, true
		}
	}
	return nil, false
}

// walk follows path through nested objects. Intermediate nodes encoded as
// JSON strings are decoded, since the scraper sometimes double-encodes.
func walk(root map[string]json.RawMessage, path []string) ([]json.RawMessage, bool) {
	node := root
	for i, key := range path {
		raw, ok := node[key]
		if !ok {
			return nil, false
		}
		if i == len(path)-1 {
			return asArray(raw)
		}
		next, ok := asObject(raw)
		if !ok {
			return nil, false
		}
		node = next
	}
	return nil, false
}

// legShape reads a multi-leg element. Missing leg fields become "".
func legShape(obj map[string]json.RawMessage) domain.LegShape {
	fares, _ := asObject(obj["fares"])
	rawLegs, _ := asArray(obj["legs"])

	legs := make([]domain.Leg, 0, len(rawLegs))
	for _, rl := range rawLegs {
		lo, _ := asObject(rl)
		legs = append(legs, domain.Leg{
			Origin:        asString(lo["origin"]),
			Destination:   asString(lo["destination"]),
			DepartureTime: asString(lo["departure_time"]),
			ArrivalTime:   asString(lo["arrival_time"]),
		})
	}

	return domain.LegShape{
		TotalDuration: asString(obj["total_duration"]),
		IsPlusOneDay:  asBool(obj["is_plus_one_day"]),
		Fares: domain.LegFares{
			Basic:    asFare(fares["basic"]),
			Economy:  asFare(fares["economy"]),
			Premium:  asFare(fares["premium"]),
			Business: asFare(fares["business"]),
		},
		Legs: legs,
	}
}

// flatShape reads a single-leg element.
func flatShape(obj map[string]json.RawMessage) domain.FlatShape {
	fares, _ := asObject(obj["fares"])

	return domain.FlatShape{
		Origin:      asString(obj["origin"]),
		Destination: asString(obj["destination"]),
		DepartTime:  asString(obj["depart_time"]),
		ArriveTime:  asString(obj["arrive_time"]),
		Duration:    asString(obj["duration"]),
		Stops:       asString(obj["stops"]),
		Fares: domain.FlatFares{
			Standard:    asFare(fares["standard"]),
			DiscountDen: asFare(fares["discount_den"]),
			GoWild:      asFare(fares["go_wild"]),
		},
	}
}

package usecase

import "github.com/flight-search/flight-normalization-service/internal/domain"

// Dedup removes repeated flat records, keyed by origin, destination, depart
// time, arrive time, duration and stops. The first occurrence wins and input
// order is preserved. Leg records always pass through. It returns the kept
// records and the number removed.
func Dedup(records []domain.RawFlightRecord) ([]domain.RawFlightRecord, int) {
	seen := make(map[domain.DedupKey]struct{}, len(records))
	out := make([]domain.RawFlightRecord, 0, len(records))

	for _, rec := range records {
		if rec.Kind == domain.RawKindFlat && rec.FlatShape != nil {
			key := rec.FlatShape.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, rec)
	}
	return out, len(records) - len(out)
}

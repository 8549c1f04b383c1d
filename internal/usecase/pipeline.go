package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-normalization-service/internal/normalize"
)

// Default tuning values.
const (
	DefaultSourceTimeout     = 15 * time.Second
	DefaultLookupConcurrency = 8
)

// IngestFunc extracts raw records from a payload envelope.
type IngestFunc func(payload []byte) domain.IngestResult

// BlackoutChecker reports whether a calendar day is blacked out.
type BlackoutChecker interface {
	IsBlackout(date string) bool
}

// NormalizeUseCase runs raw payloads through the pipeline.
type NormalizeUseCase interface {
	// Normalize returns the flat list of normalized flights in the payload.
	Normalize(ctx context.Context, payload []byte, opts Options) (*domain.NormalizedFlightsResponse, error)

	// Group returns the normalized flights of the payload grouped by destination.
	Group(ctx context.Context, payload []byte, opts Options) (*domain.GroupsResponse, error)

	// Search fetches a payload from the flight source and groups it.
	Search(ctx context.Context, query domain.SearchQuery, opts Options) (*domain.GroupsResponse, error)
}

// Dependencies are the collaborators of the pipeline. Ingest is required;
// without Airports groups are labelled by code, without Calendar no flight is
// marked as blackout, and without Source Search reports the source unavailable.
type Dependencies struct {
	Ingest   IngestFunc
	Source   domain.FlightSource
	Airports domain.AirportLookup
	Calendar BlackoutChecker
	Clock    timeutil.Clock
}

// Config contains tuning options for the use case.
type Config struct {
	// SourceTimeout bounds a single Search fetch
	SourceTimeout time.Duration

	// LookupConcurrency caps concurrent airport lookups per request
	LookupConcurrency int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SourceTimeout:     DefaultSourceTimeout,
		LookupConcurrency: DefaultLookupConcurrency,
	}
}

type normalizeUseCase struct {
	deps              Dependencies
	sourceTimeout     time.Duration
	lookupConcurrency int
}

// NewNormalizeUseCase creates the pipeline. A nil config uses defaults.
// It panics when deps.Ingest is nil.
func NewNormalizeUseCase(deps Dependencies, config *Config) NormalizeUseCase {
	if deps.Ingest == nil {
		panic("usecase: Dependencies.Ingest is required")
	}
	if deps.Clock == nil {
		deps.Clock = timeutil.NewRealClock()
	}

	cfg := DefaultConfig()
	if config != nil {
		if config.SourceTimeout > 0 {
			cfg.SourceTimeout = config.SourceTimeout
		}
		if config.LookupConcurrency > 0 {
			cfg.LookupConcurrency = config.LookupConcurrency
		}
	}

	return &normalizeUseCase{
		deps:              deps,
		sourceTimeout:     cfg.SourceTimeout,
		lookupConcurrency: cfg.LookupConcurrency,
	}
}

// Normalize implements NormalizeUseCase.
func (uc *normalizeUseCase) Normalize(ctx context.Context, payload []byte, opts Options) (*domain.NormalizedFlightsResponse, error) {
	start := uc.deps.Clock.Now()

	flights, meta, err := uc.run(ctx, payload, opts)
	if err != nil {
		return nil, err
	}

	meta.ProcessingTimeMs = uc.deps.Clock.Now().Sub(start).Milliseconds()
	resp := domain.NewNormalizedFlightsResponse(SortFlights(flights, opts.SortBy), meta)
	return &resp, nil
}

// Group implements NormalizeUseCase.
func (uc *normalizeUseCase) Group(ctx context.Context, payload []byte, opts Options) (*domain.GroupsResponse, error) {
	start := uc.deps.Clock.Now()

	flights, meta, err := uc.run(ctx, payload, opts)
	if err != nil {
		return nil, err
	}

	airports, err := uc.resolveAirports(ctx, destinationCodes(flights))
	if err != nil {
		return nil, err
	}

	groups := GroupByDestination(flights, airports)
	for i := range groups {
		groups[i].Flights = SortFlights(groups[i].Flights, opts.SortBy)
	}

	meta.ProcessingTimeMs = uc.deps.Clock.Now().Sub(start).Milliseconds()
	resp := domain.NewGroupsResponse(groups, meta)
	return &resp, nil
}

// Search implements NormalizeUseCase.
func (uc *normalizeUseCase) Search(ctx context.Context, query domain.SearchQuery, opts Options) (*domain.GroupsResponse, error) {
	query.Normalize()
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if uc.deps.Source == nil {
		return nil, domain.ErrSourceUnavailable
	}

	source := uc.deps.Source.Name()
	log := logger.FromContext(ctx).WithProvider(source)

	fetchCtx, cancel := context.WithTimeout(ctx, uc.sourceTimeout)
	defer cancel()

	payload, err := uc.deps.Source.Fetch(fetchCtx, query)
	if err != nil {
		if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil && !domain.IsSourceTimeout(err) {
			err = domain.NewSourceTimeoutError(source)
		}
		log.Error().Err(err).Str("origin", query.Origin).Str("date", query.Date).Msg("flight source fetch failed")
		return nil, err
	}

	resp, err := uc.Group(ctx, payload, opts)
	if err != nil {
		return nil, err
	}
	resp.Metadata.Source = source

	log.Info().
		Str("origin", query.Origin).
		Str("date", query.Date).
		Int("groups", len(resp.Groups)).
		Int("flights", resp.Metadata.TotalResults).
		Msg("search completed")
	return resp, nil
}

// run executes ingest, dedup, normalization, blackout annotation and filters.
func (uc *normalizeUseCase) run(ctx context.Context, payload []byte, opts Options) ([]domain.NormalizedFlight, domain.PipelineMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.PipelineMetadata{}, err
	}
	if opts.Filters != nil {
		if err := opts.Filters.Validate(); err != nil {
			return nil, domain.PipelineMetadata{}, err
		}
	}

	log := logger.FromContext(ctx)

	ingested := uc.deps.Ingest(payload)
	if !ingested.Found {
		log.Debug().Int("bytes", len(payload)).Msg("no flights array found in payload")
	}

	records, removed := Dedup(ingested.Records)

	n := normalize.New()
	flights := n.Flights(records)

	if uc.deps.Calendar != nil {
		for i := range flights {
			flights[i].Blackout = uc.deps.Calendar.IsBlackout(flights[i].FirstLeg().DepartureTime)
		}
	}

	kept := ApplyFilters(flights, opts.Filters)

	warnings := n.Warnings()
	for _, w := range warnings {
		log.Debug().Str("field", w.Field).Str("value", w.Value).Str("reason", w.Reason).Msg("field defaulted")
	}

	meta := domain.PipelineMetadata{
		RawRecords:        len(ingested.Records),
		SkippedRecords:    ingested.Skipped,
		DuplicatesRemoved: removed,
		DroppedRecords:    len(records) - len(flights),
		FilteredRecords:   len(flights) - len(kept),
		Warnings:          len(warnings),
	}
	return kept, meta, nil
}

// resolveAirports looks up every code concurrently. Unknown codes are left out
// of the result.
func (uc *normalizeUseCase) resolveAirports(ctx context.Context, codes []string) (map[string]domain.Airport, error) {
	airports := make(map[string]domain.Airport, len(codes))
	if uc.deps.Airports == nil || len(codes) == 0 {
		return airports, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.lookupConcurrency)

	for _, code := range codes {
		code := code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a, ok := uc.deps.Airports.Lookup(gctx, code)
			if !ok {
				return nil
			}
			mu.Lock()
			airports[code] = a
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return airports, nil
}

var _ NormalizeUseCase = (*normalizeUseCase)(nil)

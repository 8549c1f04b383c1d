package airport

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/retry"
)

// RefreshFunc reloads a data source.
type RefreshFunc func(ctx context.Context) error

// Refresher runs a set of refresh steps on a cron schedule. Steps run in
// order; a failing step stops the run. Overlapping runs are skipped.
type Refresher struct {
	cron  *cron.Cron
	steps []RefreshFunc
	retry retry.Config
	log   *logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRefresher schedules steps with a standard five-field cron spec or a
// descriptor such as "@every 6h".
func NewRefresher(schedule string, log *logger.Logger, steps ...RefreshFunc) (*Refresher, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("airport-refresher")

	ctx, cancel := context.WithCancel(context.Background())
	r := &Refresher{
		steps:  steps,
		retry:  retry.DefaultConfig,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}

	cl := cronLogger{log: log}
	r.cron = cron.New(cron.WithLogger(cl), cron.WithChain(cron.SkipIfStillRunning(cl)))
	if _, err := r.cron.AddFunc(schedule, func() { _ = r.RunOnce(r.ctx) }); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}
	return r, nil
}

// RunOnce executes every step immediately, retrying each with backoff.
func (r *Refresher) RunOnce(ctx context.Context) error {
	for i, step := range r.steps {
		if err := retry.Do(ctx, func() error { return step(ctx) }, r.retry); err != nil {
			r.log.Error().Err(err).Int("step", i).Msg("airport refresh failed")
			return err
		}
	}
	r.log.Debug().Int("steps", len(r.steps)).Msg("airport refresh complete")
	return nil
}

// Start begins the schedule in the background.
func (r *Refresher) Start() {
	r.cron.Start()
	r.log.Info().Int("entries", len(r.cron.Entries())).Msg("airport refresher started")
}

// Stop halts the schedule, cancels a running refresh and waits for it to return.
func (r *Refresher) Stop() {
	r.cancel()
	<-r.cron.Stop().Done()
	r.log.Info().Msg("airport refresher stopped")
}

// cronLogger adapts the service logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}

package airport

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/retry"
)

func TestNewRefresher_InvalidSchedule(t *testing.T) {
	_, err := NewRefresher("every now and then", nil)
	assert.Error(t, err)
}

func TestRefresher_RunOnce(t *testing.T) {
	var order []string
	r, err := NewRefresher("@every 1h", nil,
		func(context.Context) error { order = append(order, "directory"); return nil },
		func(context.Context) error { order = append(order, "cache"); return nil },
	)
	require.NoError(t, err)

	require.NoError(t, r.RunOnce(context.Background()))
	assert.Equal(t, []string{"directory", "cache"}, order)
}

func TestRefresher_RunOnce_RetriesAndStops(t *testing.T) {
	var calls, later int32
	boom := errors.New("boom")

	r, err := NewRefresher("@every 1h", nil,
		func(context.Context) error { atomic.AddInt32(&calls, 1); return boom },
		func(context.Context) error { atomic.AddInt32(&later, 1); return nil },
	)
	require.NoError(t, err)
	r.retry = retry.Config{MaxAttempts: 2, InitialDelay: time.Millisecond, Multiplier: 1}

	assert.ErrorIs(t, r.RunOnce(context.Background()), boom)
	assert.Equal(t, int32(2), calls)
	assert.Equal(t, int32(0), later)
}

func TestRefresher_Schedule(t *testing.T) {
	var calls int32
	r, err := NewRefresher("@every 1s", nil, func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	require.NoError(t, err)

	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) > 0 }, 3*time.Second, 50*time.Millisecond)
}

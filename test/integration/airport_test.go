package integration

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-normalization-service/internal/airport"
	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/test/testutil"
)

const twoAirports = `code,city,state,name
MCO,Orlando,FL,Orlando International
LAS,Las Vegas,NV,Harry Reid International
`

// TestAirports_CachedDirectoryRefresh wires a file-backed directory behind
// the Redis cache and checks that a refresh run reaches the HTTP output.
func TestAirports_CachedDirectoryRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	require.NoError(t, os.WriteFile(path, []byte(twoAirports), 0o600))

	directory, err := airport.NewDirectory(path, logger.Nop())
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := airport.NewRedisCache(client, directory, time.Hour, logger.Nop())

	refresher, err := airport.NewRefresher("@every 1h", logger.Nop(), directory.Refresh, cache.Invalidate)
	require.NoError(t, err)
	t.Cleanup(refresher.Stop)

	ts := NewTestServer(CreateUseCaseWithAirports(nil, cache, nil))
	payload := testutil.LoadMockJSON(t, testutil.ScraperMockFile)

	resp := ts.Groups("", payload)
	require.Equal(t, http.StatusOK, resp.Code)
	labels := groupLabels(resp.ParseGroups(t).Groups)
	assert.Equal(t, "Orlando, FL", labels["MCO"])
	assert.Equal(t, "MIA", labels["MIA"], "unknown airports fall back to the code")
	assert.True(t, mr.Exists("airport:MCO"), "hits are cached")

	// Update the table on disk and refresh: the cache is invalidated.
	updated := twoAirports + "MIA,Miami,FL,Miami International\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))
	require.NoError(t, refresher.RunOnce(context.Background()))
	assert.False(t, mr.Exists("airport:MCO"))

	resp = ts.Groups("", payload)
	require.Equal(t, http.StatusOK, resp.Code)
	labels = groupLabels(resp.ParseGroups(t).Groups)
	assert.Equal(t, "Miami, FL", labels["MIA"])
}

func groupLabels(groups []domain.DestinationGroup) map[string]string {
	labels := make(map[string]string, len(groups))
	for _, g := range groups {
		labels[g.DestinationCode] = g.Label
	}
	return labels
}

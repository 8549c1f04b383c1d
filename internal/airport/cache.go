package airport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

// DefaultCacheTTL is how long a resolved airport stays in Redis.
const DefaultCacheTTL = 24 * time.Hour

// Connect parses redisURL, creates a client and verifies it with a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// RedisCache is a domain.AirportLookup that caches hits of another lookup in
// Redis. Misses are not cached. Redis failures are logged and the call falls
// through to the wrapped lookup.
type RedisCache struct {
	client *redis.Client
	next   domain.AirportLookup
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisCache wraps next with a Redis cache. A non-positive ttl uses DefaultCacheTTL.
func NewRedisCache(client *redis.Client, next domain.AirportLookup, ttl time.Duration, log *logger.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{
		client: client,
		next:   next,
		ttl:    ttl,
		log:    log.WithComponent("airport-cache"),
	}
}

func cacheKey(code string) string {
	return "airport:" + strings.ToUpper(strings.TrimSpace(code))
}

// Lookup implements domain.AirportLookup.
func (c *RedisCache) Lookup(ctx context.Context, code string) (domain.Airport, bool) {
	if a, ok, err := c.get(ctx, code); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("airport cache read failed")
	} else if ok {
		return a, true
	}

	a, ok := c.next.Lookup(ctx, code)
	if !ok {
		return domain.Airport{}, false
	}

	if err := c.set(ctx, code, a); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("airport cache write failed")
	}
	return a, true
}

// Invalidate removes every cached airport. It is called after the
// underlying directory is refreshed.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "airport:*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan airport cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("clear airport cache: %w", err)
	}
	return nil
}

func (c *RedisCache) get(ctx context.Context, code string) (domain.Airport, bool, error) {
	val, err := c.client.Get(ctx, cacheKey(code)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Airport{}, false, nil
		}
		return domain.Airport{}, false, fmt.Errorf("cache get for %s: %w", code, err)
	}

	var a domain.Airport
	if err := json.Unmarshal(val, &a); err != nil {
		return domain.Airport{}, false, fmt.Errorf("unmarshaling cached airport %s: %w", code, err)
	}
	return a, true, nil
}

func (c *RedisCache) set(ctx context.Context, code string, a domain.Airport) error {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling airport %s: %w", code, err)
	}
	if err := c.client.Set(ctx, cacheKey(code), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", code, err)
	}
	return nil
}

var _ domain.AirportLookup = (*RedisCache)(nil)

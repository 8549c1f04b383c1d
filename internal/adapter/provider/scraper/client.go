package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/retry"
)

// SourceName identifies the scraping service source.
const SourceName = "scraper"

// maxPayloadBytes caps the size of an upstream payload.
const maxPayloadBytes = 10 << 20

// APIKeyHeader carries the scraping service credential.
const APIKeyHeader = "X-API-Key"

// ClientConfig holds the scraping service client settings.
type ClientConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	Retry             retry.Config
}

// Client fetches raw flight payloads from the scraping service over HTTP.
// Requests are rate limited and retried with exponential backoff; 4xx
// answers other than 429 are not retried.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
	retry   retry.Config
	log     *logger.Logger
}

// NewClient creates a scraping service client.
func NewClient(cfg ClientConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(limit, cfg.Burst),
		retry:   cfg.Retry.WithRetryIf(retry.SkipPermanent),
		log:     log.WithProvider(SourceName),
	}
}

// Name implements domain.FlightSource.
func (c *Client) Name() string {
	return SourceName
}

// Fetch implements domain.FlightSource.
func (c *Client) Fetch(ctx context.Context, query domain.SearchQuery) ([]byte, error) {
	cfg := c.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		c.log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("backoff", wait).
			Str("origin", query.Origin).
			Msg("scraper request failed, retrying")
	})

	body, err := retry.DoWithResult(ctx, func() ([]byte, error) {
		return c.fetchOnce(ctx, query)
	}, cfg)
	if err != nil {
		c.log.Error().Err(err).Str("origin", query.Origin).Str("date", query.Date).Msg("scraper request failed")
		return nil, c.classify(err)
	}

	c.log.Debug().
		Str("origin", query.Origin).
		Str("date", query.Date).
		Int("bytes", len(body)).
		Msg("scraper payload fetched")
	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, query domain.SearchQuery) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.flightsURL(query), nil)
	if err != nil {
		return nil, retry.NewPermanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request scraper: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("scraper returned status %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, retry.NewPermanent(fmt.Errorf("scraper returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("read scraper response: %w", err)
	}
	return body, nil
}

func (c *Client) flightsURL(query domain.SearchQuery) string {
	params := url.Values{}
	params.Set("origin", query.Origin)
	params.Set("date", query.Date)
	if query.Destination != "" {
		params.Set("destination", query.Destination)
	}
	return c.baseURL + "/flights?" + params.Encode()
}

// classify maps a final fetch error to a domain SourceError.
func (c *Client) classify(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewSourceTimeoutError(SourceName)
	case errors.Is(err, context.Canceled):
		return domain.NewSourceError(SourceName, context.Canceled)
	case retry.IsPermanent(err):
		return domain.NewSourceError(SourceName, err)
	default:
		return domain.NewRetryableSourceError(SourceName, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err))
	}
}

var _ domain.FlightSource = (*Client)(nil)

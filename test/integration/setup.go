// Package integration provides helpers and integration tests for the flight normalization service.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the pipeline, the airport directory and mock sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-search/flight-normalization-service/internal/adapter/http"
	"github.com/flight-search/flight-normalization-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-normalization-service/internal/adapter/provider/scraper"
	"github.com/flight-search/flight-normalization-service/internal/airport"
	"github.com/flight-search/flight-normalization-service/internal/calendar"
	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.FlightHandler
}

// NewTestServer creates a test server with the production middleware chain
// around the given use case and the built-in blackout calendar.
func NewTestServer(uc usecase.NormalizeUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(uc, calendar.Default())
	httpAdapter.RegisterRoutesWithMiddleware(e, handler, logger.Nop(), middleware.DefaultConfig())

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request with a raw body and returns the response.
func (ts *TestServer) Do(method, path string, body []byte) Response {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Normalize posts a payload to the normalize endpoint.
func (ts *TestServer) Normalize(query string, payload []byte) Response {
	return ts.Do(http.MethodPost, withQuery("/api/v1/flights/normalize", query), payload)
}

// Groups posts a payload to the groups endpoint.
func (ts *TestServer) Groups(query string, payload []byte) Response {
	return ts.Do(http.MethodPost, withQuery("/api/v1/flights/groups", query), payload)
}

// Search calls the search endpoint.
func (ts *TestServer) Search(query string) Response {
	return ts.Do(http.MethodGet, withQuery("/api/v1/flights/search", query), nil)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(http.MethodGet, "/health", nil)
}

func withQuery(path, query string) string {
	if query == "" {
		return path
	}
	return path + "?" + query
}

// ParseFlights parses the response body as a flat flight list.
func (r *Response) ParseFlights(t *testing.T) *domain.NormalizedFlightsResponse {
	t.Helper()
	var resp domain.NormalizedFlightsResponse
	require.NoError(t, json.Unmarshal(r.Body, &resp))
	return &resp
}

// ParseGroups parses the response body as grouped flights.
func (r *Response) ParseGroups(t *testing.T) *domain.GroupsResponse {
	t.Helper()
	var resp domain.GroupsResponse
	require.NoError(t, json.Unmarshal(r.Body, &resp))
	return &resp
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError(t *testing.T) map[string]interface{} {
	t.Helper()
	var errResp map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &errResp))
	return errResp
}

// CreateUseCase creates a pipeline over the embedded airport table and the
// built-in blackout calendar. A nil source leaves Search unavailable.
func CreateUseCase(t *testing.T, source domain.FlightSource) usecase.NormalizeUseCase {
	t.Helper()
	directory, err := airport.NewDirectory("", logger.Nop())
	require.NoError(t, err)
	return CreateUseCaseWithAirports(source, directory, nil)
}

// CreateUseCaseWithAirports creates a pipeline with a custom airport lookup and config.
func CreateUseCaseWithAirports(source domain.FlightSource, airports domain.AirportLookup, config *usecase.Config) usecase.NormalizeUseCase {
	return usecase.NewNormalizeUseCase(usecase.Dependencies{
		Ingest:   scraper.Ingest,
		Source:   source,
		Airports: airports,
		Calendar: calendar.Default(),
	}, config)
}

// ShortTimeout is a source timeout for timeout scenarios.
var ShortTimeout = &usecase.Config{SourceTimeout: 50 * time.Millisecond}

// GroupCodes returns the destination codes of the groups in order.
func GroupCodes(groups []domain.DestinationGroup) []string {
	codes := make([]string, 0, len(groups))
	for _, g := range groups {
		codes = append(codes, g.DestinationCode)
	}
	return codes
}

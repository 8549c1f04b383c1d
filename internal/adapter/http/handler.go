package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-normalization-service/internal/adapter/http/response"
	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/usecase"
)

// BlackoutCalendar annotates calendar days with blackout information.
type BlackoutCalendar interface {
	Day(date string) domain.DayEntry
	Range(from, to string) ([]domain.DayEntry, error)
}

// FlightHandler handles HTTP requests for the flight and blackout endpoints.
type FlightHandler struct {
	useCase  usecase.NormalizeUseCase
	calendar BlackoutCalendar
}

// NewFlightHandler creates a new FlightHandler with the given use case and calendar.
func NewFlightHandler(uc usecase.NormalizeUseCase, cal BlackoutCalendar) *FlightHandler {
	return &FlightHandler{
		useCase:  uc,
		calendar: cal,
	}
}

// NormalizeFlights handles POST /api/v1/flights/normalize.
// The body is a raw scraper envelope; the response is the flat list of
// normalized flights.
func (h *FlightHandler) NormalizeFlights(c echo.Context) error {
	params, err := bindPipelineParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	payload, err := readPayload(c)
	if err != nil {
		return h.handlePayloadError(c, err)
	}

	result, err := h.useCase.Normalize(c.Request().Context(), payload, ToOptions(params))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Flights(c, result)
}

// GroupFlights handles POST /api/v1/flights/groups.
// The body is a raw scraper envelope; the response groups the normalized
// flights by destination.
func (h *FlightHandler) GroupFlights(c echo.Context) error {
	params, err := bindPipelineParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	payload, err := readPayload(c)
	if err != nil {
		return h.handlePayloadError(c, err)
	}

	result, err := h.useCase.Group(c.Request().Context(), payload, ToOptions(params))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Groups(c, result)
}

// SearchFlights handles GET /api/v1/flights/search.
// It fetches a payload from the configured flight source and groups it.
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	params, err := bindSearchParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToSearchQuery(params), ToOptions(params.PipelineParams))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Groups(c, result)
}

// BlackoutDay handles GET /api/v1/blackouts/:date.
func (h *FlightHandler) BlackoutDay(c echo.Context) error {
	date := strings.TrimSpace(c.Param(paramDate))

	errs := &ValidationErrors{}
	validateDate(errs, paramDate, date)
	if errs.HasErrors() {
		return h.handleValidationError(c, errs)
	}

	return response.Day(c, h.calendar.Day(date))
}

// BlackoutRange handles GET /api/v1/blackouts?from=&to=.
func (h *FlightHandler) BlackoutRange(c echo.Context) error {
	params, err := bindRangeParams(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	days, err := h.calendar.Range(params.From, params.To)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Days(c, params.From, params.To, days)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// errEmptyPayload reports a request without a flight payload.
var errEmptyPayload = errors.New("empty payload")

// readPayload reads the raw request body.
func readPayload(c echo.Context) ([]byte, error) {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return nil, errEmptyPayload
	}
	return payload, nil
}

// handlePayloadError writes a 400 for unreadable or empty bodies. Errors
// raised by the body limit middleware are returned for Echo to render.
func (h *FlightHandler) handlePayloadError(c echo.Context, err error) error {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, errEmptyPayload):
		return response.BadRequest(c, response.MsgEmptyPayload)
	default:
		return response.InvalidRequestBody(c)
	}
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case domain.IsInvalidRequest(err):
		return h.handleValidationError(c, err)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	case domain.IsSourceTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case domain.IsSourceUnavailable(err):
		return response.BadGateway(c)
	}

	logger.FromContext(c.Request().Context()).Error().Err(err).Msg("unhandled request error")
	return response.InternalServerError(c)
}

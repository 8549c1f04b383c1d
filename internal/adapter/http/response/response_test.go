package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-normalization-service/internal/domain"
)

func setupEcho() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealth(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(c echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "date is required") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "date is required",
		},
		{
			name:        "bad gateway",
			write:       BadGateway,
			wantStatus:  http.StatusBadGateway,
			wantCode:    CodeUpstreamError,
			wantMessage: MsgUpstreamError,
		},
		{
			name:        "bad gateway with message",
			write:       func(c echo.Context) error { return BadGatewayWithMessage(c, "scraper returned 503") },
			wantStatus:  http.StatusBadGateway,
			wantCode:    CodeUpstreamError,
			wantMessage: "scraper returned 503",
		},
		{
			name:        "gateway timeout",
			write:       GatewayTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgTimeout,
		},
		{
			name:        "request cancelled",
			write:       RequestCancelled,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgRequestCancelled,
		},
		{
			name:        "internal error",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := setupEcho()

			require.NoError(t, tt.write(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var result ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Empty(t, result.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	c, rec := setupEcho()

	err := ValidationError(c, map[string]string{
		"sort":      "sort must be one of departure, duration, fare, stops",
		"max_stops": "must be zero or greater",
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var result ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, CodeValidationError, result.Code)
	assert.Equal(t, MsgValidationFailed, result.Message)
	assert.Len(t, result.Details, 2)
	assert.Contains(t, result.Details, "max_stops")
}

func TestGroups(t *testing.T) {
	c, rec := setupEcho()

	resp := domain.NewGroupsResponse(nil, domain.PipelineMetadata{RawRecords: 3})
	require.NoError(t, Groups(c, &resp))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, []interface{}{}, result["groups"])

	meta, ok := result["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(3), meta["raw_records"])
}

func TestDays(t *testing.T) {
	c, rec := setupEcho()

	require.NoError(t, Days(c, "2025-01-01", "2025-01-01", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result DaysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "2025-01-01", result.From)
	assert.NotNil(t, result.Days)
	assert.Empty(t, result.Days)
}

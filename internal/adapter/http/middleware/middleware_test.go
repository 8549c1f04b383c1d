package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithOutput(logger.Config{Level: "debug", Format: "json", ServiceName: "test"}, buf)
}

// logEntries parses newline-delimited JSON log output.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "log output should be valid JSON")
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, message string) map[string]interface{} {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID(t *testing.T) {
	tests := []struct {
		name       string
		incomingID string
		wantKept   bool
	}{
		{name: "generates new id"},
		{name: "propagates existing id", incomingID: "existing-request-id-12345", wantKept: true},
		{name: "propagates id at max length", incomingID: strings.Repeat("a", MaxRequestIDLength), wantKept: true},
		{name: "replaces oversized id", incomingID: strings.Repeat("a", MaxRequestIDLength+1)},
		{name: "replaces id with spaces", incomingID: "abc def"},
		{name: "replaces id with markup", incomingID: "<script>alert(1)</script>"},
		{name: "replaces id with json breakout", incomingID: `x","level":"error`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.incomingID != "" {
				req.Header.Set(RequestIDHeader, tt.incomingID)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := RequestID(logger.Nop())(func(c echo.Context) error {
				return c.String(http.StatusOK, "ok")
			})
			require.NoError(t, handler(c))

			reqID := rec.Header().Get(RequestIDHeader)
			if tt.wantKept {
				assert.Equal(t, tt.incomingID, reqID)
			} else {
				assert.NotEqual(t, tt.incomingID, reqID)
				_, err := uuid.Parse(reqID)
				assert.NoError(t, err, "should be a generated UUID")
			}
			assert.Equal(t, reqID, GetRequestID(c))
		})
	}
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{id: "abc-123", want: true},
		{id: "trace.id_01", want: true},
		{id: ""},
		{id: "a b"},
		{id: "line\nbreak"},
		{id: "ünicode"},
		{id: strings.Repeat("x", MaxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidRequestID(tt.id))
		})
	}
}

func TestRequestID_AttachesLoggerToContext(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "ctx-req-id")
	c := e.NewContext(req, httptest.NewRecorder())

	handler := RequestID(newTestLogger(&logBuf))(func(c echo.Context) error {
		logger.FromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, "ctx-req-id", entry["request_id"])
	assert.Equal(t, "test", entry["service"])
}

func TestRequestID_GarbageHeaderNeverReachesLogs(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	e.Use(RequestID(newTestLogger(&logBuf)), RequestLogger(logger.Nop()))
	e.GET("/", func(c echo.Context) error {
		logger.FromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})

	garbage := strings.Repeat("<evil>", 100)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, garbage)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.NotContains(t, logBuf.String(), "<evil>")
	entries := logEntries(t, &logBuf)
	inside := findEntry(entries, "inside handler")
	require.NotNil(t, inside)
	assert.Equal(t, rec.Header().Get(RequestIDHeader), inside["request_id"])
	access := findEntry(entries, "HTTP request")
	require.NotNil(t, access, "access log uses the logger attached by RequestID")
	assert.Equal(t, inside["request_id"], access["request_id"])
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request Logger Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/groups?sort=fare", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(requestIDKey, "test-req-id-123")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, "test-req-id-123", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/v1/flights/groups", entry["path"])
	assert.Equal(t, "sort=fare", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success", status: http.StatusOK, wantLevel: "info"},
		{name: "client error", status: http.StatusBadRequest, wantLevel: "warn"},
		{name: "upstream error", status: http.StatusBadGateway, wantLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entry := findEntry(logEntries(t, &logBuf), "HTTP request")
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, float64(tt.status), entry["status"])
		})
	}
}

func TestRequestLogger_HandlesReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		return echo.ErrNotFound
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	entry := findEntry(logEntries(t, &logBuf), "HTTP request")
	require.NotNil(t, entry)
	assert.Equal(t, float64(404), entry["status"])
}

func TestRequestLogger_AttachesLoggerWithoutRequestIDMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(requestIDKey, "ctx-req-id")

	handler := RequestLogger(newTestLogger(&logBuf))(func(c echo.Context) error {
		logger.FromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "inside handler")
	require.NotNil(t, entry)
	assert.Equal(t, "ctx-req-id", entry["request_id"])
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_Returns500OnPanic(t *testing.T) {
	tests := []struct {
		name      string
		panicWith interface{}
		wantPanic string
	}{
		{name: "string panic", panicWith: "test panic", wantPanic: "test panic"},
		{name: "error panic", panicWith: assert.AnError, wantPanic: assert.AnError.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
				panic(tt.panicWith)
			})

			assert.NotPanics(t, func() {
				require.NoError(t, handler(c))
			})
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "internal_error", body["code"])

			entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
			require.NotNil(t, entry)
			assert.Equal(t, tt.wantPanic, entry["panic"])
			assert.Contains(t, entry, "stack")
		})
	}
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	handler := RecoverWithConfig(newTestLogger(&logBuf), RecoveryConfig{DisablePrintStack: true})(func(c echo.Context) error {
		panic("no stack")
	})
	require.NoError(t, handler(c))

	entry := findEntry(logEntries(t, &logBuf), "Panic recovered")
	require.NotNil(t, entry)
	assert.NotContains(t, entry, "stack")
}

// =====================================================
// Setup Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf), DefaultConfig())

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})
	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logEntries(t, &logBuf)
	require.NotNil(t, findEntry(entries, "Panic recovered"))
	require.NotNil(t, findEntry(entries, "HTTP request"))
}

func TestSetup_BodyLimit(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	Setup(e, newTestLogger(&logBuf), Config{BodyLimit: "1K"})

	e.POST("/upload", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	body := strings.NewReader(strings.Repeat("x", 2048))
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestChain_ReturnsMiddlewareSlice(t *testing.T) {
	log := logger.Nop()

	assert.Len(t, Chain(log, DefaultConfig()), 4)
	assert.Len(t, Chain(log, Config{}), 3, "empty body limit adds no middleware")
	assert.Len(t, Chain(log, Config{BodyLimit: "1M", RequestTimeout: time.Second}), 5)
}

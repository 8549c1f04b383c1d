package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs HTTP requests on completion
// with method, path, status, duration, sizes and client info. Entries go
// through the request-scoped logger attached by RequestID, so they carry
// the same request_id as the pipeline's own log lines.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			// Request-scoped logger (set by RequestID middleware)
			reqLog := requestLogger(c, log)

			// Process request through handler chain
			if err := next(c); err != nil {
				// Let Echo's error handler write the response before logging the status
				c.Error(err)
			}

			// Calculate duration after request completes
			duration := time.Since(start)

			// Get request details
			req := c.Request()
			res := c.Response()

			// Determine log level based on status code
			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			// Log the request with all relevant fields
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_in", req.ContentLength).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			// Return nil since we already handled the error via c.Error()
			return nil
		}
	}
}

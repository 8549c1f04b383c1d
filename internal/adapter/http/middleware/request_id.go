// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

const (
	// RequestIDHeader is the HTTP header name for request ID.
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the context key for storing request ID.
	requestIDKey = "request_id"
	// loggerKey is the context key for the request-scoped logger.
	loggerKey = "request_logger"

	// MaxRequestIDLength bounds an accepted incoming request ID.
	MaxRequestIDLength = 64
)

// requestIDPattern is the set of incoming IDs trusted into log lines.
var requestIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// RequestID returns middleware that generates or propagates request IDs.
// An incoming X-Request-ID is kept only when it is at most
// MaxRequestIDLength characters of letters, digits, '.', '_' or '-';
// anything else is replaced with a new UUID. The ID is echoed in the
// response header, and a logger tagged with it is attached to the request
// context for the handlers and the normalization pipeline.
func RequestID(log *logger.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = logger.Nop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Trust the caller's ID only when it is safe to log verbatim
			reqID := c.Request().Header.Get(RequestIDHeader)
			if !ValidRequestID(reqID) {
				reqID = uuid.New().String()
			}

			// Set in context for use by handlers and other middleware
			c.Set(requestIDKey, reqID)

			// Set in response header for client correlation
			c.Response().Header().Set(RequestIDHeader, reqID)

			attachLogger(c, log.WithRequestID(reqID))

			return next(c)
		}
	}
}

// ValidRequestID reports whether id may be propagated as a request ID.
func ValidRequestID(id string) bool {
	return len(id) > 0 && len(id) <= MaxRequestIDLength && requestIDPattern.MatchString(id)
}

// GetRequestID retrieves the request ID from the echo context.
// Returns an empty string if no request ID is set.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// requestLogger returns the logger attached by RequestID. Without one it
// derives and attaches a logger from base.
func requestLogger(c echo.Context, base *logger.Logger) *logger.Logger {
	if l, ok := c.Get(loggerKey).(*logger.Logger); ok && l != nil {
		return l
	}
	l := base.WithRequestID(GetRequestID(c))
	attachLogger(c, l)
	return l
}

func attachLogger(c echo.Context, l *logger.Logger) {
	c.Set(loggerKey, l)
	req := c.Request()
	c.SetRequest(req.WithContext(logger.NewContext(req.Context(), l)))
}

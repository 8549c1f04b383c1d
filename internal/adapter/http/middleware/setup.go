package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

// Config tunes the middleware chain.
type Config struct {
	// BodyLimit caps request bodies, e.g. "4M"; empty disables the limit
	BodyLimit string

	// RequestTimeout bounds the request context; zero disables it
	RequestTimeout time.Duration

	Recovery RecoveryConfig
}

// DefaultConfig returns the default middleware configuration.
func DefaultConfig() Config {
	return Config{
		BodyLimit: "4M",
		Recovery:  DefaultRecoveryConfig(),
	}
}

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log entry carries it
//  2. RequestLogger, which also puts the request logger in the context
//  3. Recover, wrapping the handlers
//  4. BodyLimit, rejecting oversized payloads with 413
//  5. ContextTimeout, bounding the request context
//
// This function should be called before registering routes.
func Setup(e *echo.Echo, log *logger.Logger, cfg Config) {
	e.Use(Chain(log, cfg)...)
}

// Chain returns all middleware as a slice for use with route groups.
func Chain(log *logger.Logger, cfg Config) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{
		RequestID(log),
		RequestLogger(log),
		RecoverWithConfig(log, cfg.Recovery),
	}
	if cfg.BodyLimit != "" {
		chain = append(chain, echomw.BodyLimit(cfg.BodyLimit))
	}
	if cfg.RequestTimeout > 0 {
		chain = append(chain, echomw.ContextTimeout(cfg.RequestTimeout))
	}
	return chain
}

package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-normalization-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
)

// RegisterRoutes registers all routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, h *FlightHandler) {
	// Health check endpoint
	e.GET("/health", h.Health)

	v1 := e.Group("/api/v1")

	flights := v1.Group("/flights")
	flights.POST("/normalize", h.NormalizeFlights)
	flights.POST("/groups", h.GroupFlights)
	flights.GET("/search", h.SearchFlights)

	blackouts := v1.Group("/blackouts")
	blackouts.GET("", h.BlackoutRange)
	blackouts.GET("/:date", h.BlackoutDay)
}

// RegisterRoutesWithMiddleware installs the middleware chain and then the routes.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *FlightHandler, log *logger.Logger, cfg middleware.Config) {
	middleware.Setup(e, log, cfg)
	RegisterRoutes(e, h)
}

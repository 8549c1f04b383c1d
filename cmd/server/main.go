// Package main is the entry point for the flight normalization service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/flight-search/flight-normalization-service/internal/config"

	// Application layers
	flighthttp "github.com/flight-search/flight-normalization-service/internal/adapter/http"
	"github.com/flight-search/flight-normalization-service/internal/adapter/http/middleware"
	"github.com/flight-search/flight-normalization-service/internal/adapter/provider/scraper"
	"github.com/flight-search/flight-normalization-service/internal/airport"
	"github.com/flight-search/flight-normalization-service/internal/calendar"
	"github.com/flight-search/flight-normalization-service/internal/domain"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/logger"
	"github.com/flight-search/flight-normalization-service/internal/infrastructure/retry"
	"github.com/flight-search/flight-normalization-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	connectTimeout  = 5 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := setupLogger(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("mock_source", cfg.UsesMockSource()).
		Msg("Configuration loaded")

	app, err := buildApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.IsDevelopment()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	flighthttp.RegisterRoutesWithMiddleware(e, app.handler, log, middleware.Config{
		BodyLimit:      cfg.Server.BodyLimit,
		RequestTimeout: cfg.Timeouts.Request,
		Recovery:       middleware.RecoveryConfig{DisablePrintStack: !cfg.PrintPanicStack()},
	})

	if app.refresher != nil {
		app.refresher.Start()
	}

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, app, log)
}

// app holds the wired components that need shutting down.
type app struct {
	handler   *flighthttp.FlightHandler
	refresher *airport.Refresher
	redis     *redis.Client
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.LogFormat(),
		ServiceName: cfg.Logging.ServiceName,
	})
	logger.SetGlobal(l)
	return l
}

// buildApp wires the calendar, airport directory, flight source and
// pipeline into the HTTP handler.
func buildApp(cfg *config.Config, log *logger.Logger) (*app, error) {
	cal, err := setupCalendar(cfg, log)
	if err != nil {
		return nil, err
	}

	directory, err := airport.NewDirectory(cfg.Airports.CSVPath, log)
	if err != nil {
		return nil, fmt.Errorf("load airport directory: %w", err)
	}

	a := &app{}
	var lookup domain.AirportLookup = directory
	steps := []airport.RefreshFunc{directory.Refresh}

	if cfg.Redis.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		client, err := airport.Connect(ctx, cfg.Redis.URL)
		cancel()
		if err != nil {
			// The directory alone still serves every lookup
			log.Warn().Err(err).Msg("Redis unavailable, airport cache disabled")
		} else {
			cache := airport.NewRedisCache(client, directory, cfg.Redis.TTL, log)
			lookup = cache
			steps = append(steps, cache.Invalidate)
			a.redis = client
		}
	}

	if cfg.Airports.RefreshSchedule != "" {
		a.refresher, err = airport.NewRefresher(cfg.Airports.RefreshSchedule, log, steps...)
		if err != nil {
			return nil, err
		}
	}

	uc := usecase.NewNormalizeUseCase(usecase.Dependencies{
		Ingest:   scraper.Ingest,
		Source:   setupSource(cfg, log),
		Airports: lookup,
		Calendar: cal,
	}, &usecase.Config{
		SourceTimeout:     cfg.Timeouts.Source,
		LookupConcurrency: cfg.Airports.LookupConcurrency,
	})

	a.handler = flighthttp.NewFlightHandler(uc, cal)
	return a, nil
}

func setupCalendar(cfg *config.Config, log *logger.Logger) (*calendar.Calendar, error) {
	if cfg.Calendar.BlackoutFile == "" {
		return calendar.Default(), nil
	}

	cal, err := calendar.LoadFile(cfg.Calendar.BlackoutFile)
	if err != nil {
		return nil, fmt.Errorf("load blackout calendar: %w", err)
	}
	log.Info().
		Str("file", cfg.Calendar.BlackoutFile).
		Int("periods", len(cal.Periods())).
		Msg("Blackout calendar loaded")
	return cal, nil
}

func setupSource(cfg *config.Config, log *logger.Logger) domain.FlightSource {
	if cfg.UsesMockSource() {
		log.Info().Str("path", cfg.Scraper.MockPath).Msg("Using mock flight source")
		return scraper.NewFileSource(cfg.Scraper.MockPath)
	}

	return scraper.NewClient(scraper.ClientConfig{
		BaseURL:           cfg.Scraper.BaseURL,
		APIKey:            cfg.Scraper.APIKey,
		Timeout:           cfg.Timeouts.Source,
		RequestsPerSecond: cfg.Scraper.RequestsPerSecond,
		Burst:             cfg.Scraper.Burst,
		Retry:             retry.ScraperConfig.WithMaxAttempts(cfg.Scraper.MaxAttempts),
	}, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, a *app, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if a.refresher != nil {
		a.refresher.Stop()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis client")
		}
	}

	log.Info().Msg("Server stopped")
}

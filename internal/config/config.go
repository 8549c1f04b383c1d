// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Logging  LoggingConfig
	App      AppConfig
	Scraper  ScraperConfig
	Redis    RedisConfig
	Airports AirportsConfig
	Calendar CalendarConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`

	// BodyLimit caps raw payload uploads, in echo's size notation (e.g. 4M)
	BodyLimit string `env:"SERVER_BODY_LIMIT" envDefault:"4M"`
}

// TimeoutConfig holds timeout settings for pipeline requests.
type TimeoutConfig struct {
	// Request bounds a whole API request
	Request time.Duration `env:"TIMEOUT_REQUEST" envDefault:"20s"`

	// Source bounds a flight source fetch, retries included
	Source time.Duration `env:"TIMEOUT_SOURCE" envDefault:"15s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is json or console; empty picks console in development and json elsewhere
	Format      string `env:"LOG_FORMAT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"flight-normalizer"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// ScraperConfig holds flight scraping service settings. Without a BaseURL
// the service reads the payload at MockPath instead.
type ScraperConfig struct {
	BaseURL           string  `env:"SCRAPER_BASE_URL"`
	APIKey            string  `env:"SCRAPER_API_KEY"`
	MockPath          string  `env:"SCRAPER_MOCK_PATH" envDefault:"docs/response-mock/scraper_flights.json"`
	RequestsPerSecond float64 `env:"SCRAPER_RPS" envDefault:"2"`
	Burst             int     `env:"SCRAPER_BURST" envDefault:"4"`
	MaxAttempts       int     `env:"SCRAPER_MAX_ATTEMPTS" envDefault:"3"`
}

// RedisConfig holds the airport cache settings. An empty URL disables the cache.
type RedisConfig struct {
	URL string        `env:"REDIS_URL"`
	TTL time.Duration `env:"REDIS_AIRPORT_TTL" envDefault:"24h"`
}

// AirportsConfig holds airport directory settings.
type AirportsConfig struct {
	// CSVPath overrides the built-in airport table
	CSVPath string `env:"AIRPORTS_CSV_PATH"`

	// RefreshSchedule is a cron spec for reloading the table; empty disables it
	RefreshSchedule string `env:"AIRPORTS_REFRESH_SCHEDULE" envDefault:"@every 6h"`

	LookupConcurrency int `env:"AIRPORTS_LOOKUP_CONCURRENCY" envDefault:"8"`
}

// CalendarConfig holds blackout calendar settings.
type CalendarConfig struct {
	// BlackoutFile overrides the built-in blackout table with a YAML file
	BlackoutFile string `env:"BLACKOUT_FILE"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Timeouts.Request <= 0 {
		return fmt.Errorf("TIMEOUT_REQUEST must be positive")
	}
	if cfg.Timeouts.Source <= 0 {
		return fmt.Errorf("TIMEOUT_SOURCE must be positive")
	}
	if cfg.Timeouts.Source >= cfg.Timeouts.Request {
		return fmt.Errorf("TIMEOUT_SOURCE (%s) should be less than TIMEOUT_REQUEST (%s)",
			cfg.Timeouts.Source, cfg.Timeouts.Request)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}
	validFormats := map[string]bool{"": true, "json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	if err := validateScraper(cfg.Scraper); err != nil {
		return err
	}

	if cfg.Redis.URL != "" {
		if !strings.HasPrefix(cfg.Redis.URL, "redis://") && !strings.HasPrefix(cfg.Redis.URL, "rediss://") {
			return fmt.Errorf("REDIS_URL must use the redis:// or rediss:// scheme")
		}
		if cfg.Redis.TTL <= 0 {
			return fmt.Errorf("REDIS_AIRPORT_TTL must be positive")
		}
	}

	if cfg.Airports.LookupConcurrency < 1 {
		return fmt.Errorf("AIRPORTS_LOOKUP_CONCURRENCY must be at least 1, got %d", cfg.Airports.LookupConcurrency)
	}

	return nil
}

func validateScraper(s ScraperConfig) error {
	if s.BaseURL != "" {
		u, err := url.Parse(s.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("SCRAPER_BASE_URL must be an absolute http(s) URL, got %q", s.BaseURL)
		}
	} else if s.MockPath == "" {
		return fmt.Errorf("one of SCRAPER_BASE_URL or SCRAPER_MOCK_PATH is required")
	}

	if s.RequestsPerSecond < 0 {
		return fmt.Errorf("SCRAPER_RPS must not be negative")
	}
	if s.Burst < 1 {
		return fmt.Errorf("SCRAPER_BURST must be at least 1, got %d", s.Burst)
	}
	if s.MaxAttempts < 1 {
		return fmt.Errorf("SCRAPER_MAX_ATTEMPTS must be at least 1, got %d", s.MaxAttempts)
	}
	return nil
}

// UsesMockSource reports whether payloads are read from disk instead of the scraper.
func (c *Config) UsesMockSource() bool {
	return c.Scraper.BaseURL == ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LogFormat returns the configured log format, defaulting to human-readable
// console output in development and JSON everywhere else.
func (c *Config) LogFormat() string {
	if c.Logging.Format != "" {
		return c.Logging.Format
	}
	if c.IsDevelopment() {
		return "console"
	}
	return "json"
}

// PrintPanicStack reports whether recovered panics log their stack trace.
// Stacks are kept out of production logs.
func (c *Config) PrintPanicStack() bool {
	return !c.IsProduction()
}

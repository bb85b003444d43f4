// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Kindred KindredConfig
	Routing RoutingConfig
	Search  SearchConfig
	Resorts ResortsConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10m"`

	// AllowedOrigins lists origins permitted by CORS. Empty allows all.
	AllowedOrigins []string `env:"SERVER_ALLOWED_ORIGINS" envSeparator:","`
}

// KindredConfig holds settings for the upstream rental platform.
type KindredConfig struct {
	URL           string        `env:"KINDRED_URL" envDefault:"https://app.livekindred.com/api/graphql"`
	ClientName    string        `env:"KINDRED_CLIENT_NAME" envDefault:"Web"`
	ClientVersion string        `env:"KINDRED_CLIENT_VERSION" envDefault:"1.929.3"`
	Timeout       time.Duration `env:"KINDRED_TIMEOUT" envDefault:"30s"`
}

// RoutingConfig holds settings for the driving-time provider.
type RoutingConfig struct {
	// APIKey is the OpenRouteService key. Empty disables driving-time
	// enrichment; searches still work, driving times come back unknown.
	APIKey  string        `env:"OPEN_ROUTE_SERVICE_KEY"`
	URL     string        `env:"OPEN_ROUTE_SERVICE_URL" envDefault:"https://api.openrouteservice.org/v2/directions/driving-car"`
	Timeout time.Duration `env:"OPEN_ROUTE_SERVICE_TIMEOUT" envDefault:"15s"`
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	PageSize     int           `env:"SEARCH_PAGE_SIZE" envDefault:"50"`
	PageInterval time.Duration `env:"SEARCH_PAGE_INTERVAL" envDefault:"400ms"`
}

// ResortsConfig holds resort catalog settings.
type ResortsConfig struct {
	// CSVPath points at the resort catalog file.
	CSVPath string `env:"RESORTS_CSV_PATH" envDefault:"data/resort_locations.csv"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
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

	if cfg.Kindred.URL == "" {
		return fmt.Errorf("KINDRED_URL must not be empty")
	}
	if cfg.Kindred.Timeout <= 0 {
		return fmt.Errorf("KINDRED_TIMEOUT must be positive")
	}

	if cfg.Search.PageSize < 1 {
		return fmt.Errorf("SEARCH_PAGE_SIZE must be at least 1, got %d", cfg.Search.PageSize)
	}
	if cfg.Search.PageInterval < 0 {
		return fmt.Errorf("SEARCH_PAGE_INTERVAL must not be negative")
	}

	if cfg.Resorts.CSVPath == "" {
		return fmt.Errorf("RESORTS_CSV_PATH must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

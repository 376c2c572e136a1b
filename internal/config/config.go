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
	Server   ServerConfig
	Timeouts TimeoutConfig
	Planner  PlannerConfig
	Gateways GatewayConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds the contractual timeout bounds for external lookups
// and for the planning operation as a whole.
type TimeoutConfig struct {
	// GlobalPlan bounds one complete planning request end to end.
	GlobalPlan time.Duration `env:"TIMEOUT_GLOBAL_PLAN" envDefault:"5m"`

	// FlightSearch bounds a single flight lookup attempt.
	FlightSearch time.Duration `env:"TIMEOUT_FLIGHT_SEARCH" envDefault:"10s"`

	// GroundTransit bounds a single ground-transport estimate.
	GroundTransit time.Duration `env:"TIMEOUT_GROUND_TRANSIT" envDefault:"5s"`

	// AirportLookup bounds a single airport resolution.
	AirportLookup time.Duration `env:"TIMEOUT_AIRPORT_LOOKUP" envDefault:"5s"`
}

// PlannerConfig holds knobs for the combinatorial search.
type PlannerConfig struct {
	// MaxWorkers bounds the number of airport triples assembled concurrently.
	MaxWorkers int `env:"PLANNER_MAX_WORKERS" envDefault:"4"`

	// GatewayRPS is the per-gateway request rate allowed toward external APIs.
	GatewayRPS float64 `env:"PLANNER_GATEWAY_RPS" envDefault:"10"`

	// GatewayBurst is the per-gateway burst size.
	GatewayBurst int `env:"PLANNER_GATEWAY_BURST" envDefault:"20"`
}

// GatewayConfig holds external service endpoints and credentials.
type GatewayConfig struct {
	// SkyScannerBaseURL is the flight-search API root.
	SkyScannerBaseURL string `env:"SKYSCANNER_BASE_URL" envDefault:"https://sky-scanner3.p.rapidapi.com"`

	// SkyScannerAPIKey authenticates against the flight-search API.
	SkyScannerAPIKey string `env:"SKYSCANNER_API_KEY"`

	// SkyScannerHost is the API host header value.
	SkyScannerHost string `env:"SKYSCANNER_HOST" envDefault:"sky-scanner3.p.rapidapi.com"`

	// CityInfoBaseURL is the city-knowledge API root.
	CityInfoBaseURL string `env:"CITYINFO_BASE_URL" envDefault:"https://api.openai.com/v1"`

	// CityInfoAPIKey authenticates against the city-knowledge API.
	CityInfoAPIKey string `env:"CITYINFO_API_KEY"`

	// CityInfoModel is the model the city-knowledge API should answer with.
	CityInfoModel string `env:"CITYINFO_MODEL" envDefault:"gpt-4-0613"`

	// WanderuBaseURL is the bus-search API root.
	WanderuBaseURL string `env:"WANDERU_BASE_URL" envDefault:"https://www.wanderu.com"`
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

	if cfg.Timeouts.GlobalPlan <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_PLAN must be positive")
	}
	if cfg.Timeouts.FlightSearch <= 0 {
		return fmt.Errorf("TIMEOUT_FLIGHT_SEARCH must be positive")
	}
	if cfg.Timeouts.GroundTransit <= 0 {
		return fmt.Errorf("TIMEOUT_GROUND_TRANSIT must be positive")
	}
	if cfg.Timeouts.AirportLookup <= 0 {
		return fmt.Errorf("TIMEOUT_AIRPORT_LOOKUP must be positive")
	}

	// Lookup timeouts must fit inside the global planning bound.
	if cfg.Timeouts.FlightSearch >= cfg.Timeouts.GlobalPlan {
		return fmt.Errorf("TIMEOUT_FLIGHT_SEARCH (%s) should be less than TIMEOUT_GLOBAL_PLAN (%s)",
			cfg.Timeouts.FlightSearch, cfg.Timeouts.GlobalPlan)
	}

	if cfg.Planner.MaxWorkers < 1 {
		return fmt.Errorf("PLANNER_MAX_WORKERS must be at least 1, got %d", cfg.Planner.MaxWorkers)
	}
	if cfg.Planner.GatewayRPS <= 0 {
		return fmt.Errorf("PLANNER_GATEWAY_RPS must be positive")
	}
	if cfg.Planner.GatewayBurst < 1 {
		return fmt.Errorf("PLANNER_GATEWAY_BURST must be at least 1")
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

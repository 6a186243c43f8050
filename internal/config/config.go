package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-auction/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// The nested structs are tagged with envPrefix so their fields are parsed
// with the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the ledger backend. Environment variables prefixed with
	// STORE_ will populate this struct.
	Store configs.Store `envPrefix:"STORE_"`

	// Auth configures bearer token verification (AUTH_ prefix).
	Auth configs.Auth `envPrefix:"AUTH_"`

	// Auction holds the lifecycle constants and the logical clock
	// (AUCTION_ prefix).
	Auction configs.Auction `envPrefix:"AUCTION_"`
}

// Load reads configuration from environment variables into a Config. A .env
// file in the working directory is loaded first when present; variables that
// are already set in the environment win. If parsing fails, an error is
// returned.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

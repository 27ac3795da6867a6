package config

import (
	"github.com/caarlos0/env/v11"

	"fundvault/internal/config/configs"
)

// Config aggregates all configuration sections for the service. Fields
// are populated from environment variables using the caarlos0/env
// library; nested structs are tagged with envPrefix so their fields are
// parsed under the given prefix. See the individual types in the configs
// package for defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Campaign holds fundraising policy knobs (CAMPAIGN_ prefix).
	Campaign configs.Campaign `envPrefix:"CAMPAIGN_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

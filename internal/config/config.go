// Package config holds environment-driven settings for the command line
// tool. Library consumers configure the SDK with functional options instead.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is populated from TMDB_* environment variables.
type Config struct {
	// APIToken authenticates every request. Required for all commands.
	APIToken string `envconfig:"API_TOKEN"`

	// ServiceRoot overrides the API root, e.g. to point at a caching proxy.
	// Empty selects the public TMDb v3 endpoint.
	ServiceRoot string `envconfig:"SERVICE_ROOT"`

	// HTTPTimeout bounds each HTTP request end to end.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`

	// Debug enables verbose logging including HTTP dumps.
	Debug bool `envconfig:"DEBUG" default:"false"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("TMDB", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config from env: %w", err)
	}
	return cfg, nil
}

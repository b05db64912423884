// Package config provides runtime configuration for the service.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the catalog service.
// DatabaseURL may legitimately be empty: the service then runs in
// degraded mode with the store handle absent.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppAddr         string        `envconfig:"APP_ADDR" default:":8000"`
	Port            string        `envconfig:"PORT" default:""`
	ReadTimeout     time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"APP_SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:""`

	DatabaseURL    string        `envconfig:"DATABASE_URL" default:""`
	DatabaseName   string        `envconfig:"DATABASE_NAME" default:"shopease"`
	ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"5s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Addr returns the listen address. PORT, when set, wins over APP_ADDR
// for compatibility with platforms that inject it.
func (c *Config) Addr() string {
	if c.Port != "" {
		return ":" + c.Port
	}
	return c.AppAddr
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

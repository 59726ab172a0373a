// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/alexmorgan/portfolio/internal/reveal"
	"github.com/caarlos0/env/v11"
)

// Config holds server settings. A .env file in the working directory is
// loaded first by the binaries via godotenv autoload.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`

	ContactDelay    time.Duration `env:"CONTACT_DELAY" envDefault:"1s"`
	RevealThreshold float64       `env:"REVEAL_THRESHOLD" envDefault:"0.3"`

	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	OTelEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"artist-portfolio"`
}

// Load parses Config from the environment and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if err := reveal.CheckThreshold(c.RevealThreshold); err != nil {
		return fmt.Errorf("REVEAL_THRESHOLD %v: %w", c.RevealThreshold, err)
	}
	if c.ContactDelay < 0 {
		return fmt.Errorf("CONTACT_DELAY must not be negative")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/CameronXie/neptune-tea-api/internal/repository/database"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port            int             `env:"TEASHOP_PORT" envDefault:"8080"`
	AllowedOrigin   string          `env:"TEASHOP_ALLOWED_ORIGIN" envDefault:"https://neptunetea-shop.netlify.app"`
	ReadTimeout     time.Duration   `env:"TEASHOP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration   `env:"TEASHOP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration   `env:"TEASHOP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration   `env:"TEASHOP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Database        database.Config `envPrefix:"TEASHOP_DB_"`
}

// Load reads an optional .env file from the working directory, then parses the environment.
// Variables already set in the environment win over the file.
func Load(files ...string) (*Config, error) {
	_ = godotenv.Load(files...)

	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	if cfg.AllowedOrigin == "" {
		return nil, fmt.Errorf("TEASHOP_ALLOWED_ORIGIN must not be empty")
	}

	return cfg, nil
}

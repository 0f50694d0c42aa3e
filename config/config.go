package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-driven setting the server recognizes.
type Config struct {
	Port              string        `env:"PORT" envDefault:"5000"`
	DBUser            string        `env:"DB_USER"`
	DBPass            string        `env:"DB_PASS"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"car-doctor"`
	AccessTokenSecret string        `env:"ACCESS_TOKEN_SECRET"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env config: %w", err)
	}
	return cfg, nil
}

// DSN builds the postgres connection string from the credential pieces,
// mirroring how the deployment wires DB_USER/DB_PASS separately.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
}

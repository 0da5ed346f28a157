package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all settings the process needs. It is loaded once at startup
// and treated as immutable afterwards; the JWT secret and bcrypt cost are
// handed to the auth components at construction time.
type Config struct {
	ServerPort string `env:"SERVER_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-required:"true"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-required:"true"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-required:"true"`

	// JWTSecret must never be logged.
	JWTSecret          string `env:"JWT_SECRET_KEY" env-required:"true"`
	JWTExpirationHours int64  `env:"JWT_EXPIRATION_HOURS" env-default:"24"`

	BcryptCost int `env:"BCRYPT_COST" env-default:"10"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

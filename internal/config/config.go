// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"fintrack/internal/session"
	"fintrack/pkg/db" // Import db package for its Config struct
)

// Session backends.
const (
	SessionBackendPostgres = "postgres"
	SessionBackendRedis    = "redis"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string        `env:"SERVER_PORT" env-default:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" env-default:"migrations"` // Empty skips migrations on start
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`

	DB        db.Config
	Session   SessionConfig
	Redis     session.RedisConfig
	RateLimit RateLimitConfig
}

// SessionConfig selects where login sessions are kept.
type SessionConfig struct {
	Backend string        `env:"SESSION_BACKEND" env-default:"postgres"`
	TTL     time.Duration `env:"SESSION_TTL" env-default:"24h"`
}

// RateLimitConfig configures the global request limiter. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"50"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"100"`
}

// LoadConfig loads configuration from environment variables.
// Variables from a .env file in the working directory are loaded first,
// without overriding ones already set.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg AppConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	switch c.Session.Backend {
	case SessionBackendPostgres, SessionBackendRedis:
	default:
		return fmt.Errorf("invalid SESSION_BACKEND %q: want %q or %q",
			c.Session.Backend, SessionBackendPostgres, SessionBackendRedis)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid SESSION_TTL %s: must be positive", c.Session.TTL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid REQUEST_TIMEOUT %s: must be positive", c.RequestTimeout)
	}
	return nil
}

// Description returns the documented environment variables, for --help style output.
func Description() (string, error) {
	var cfg AppConfig
	return cleanenv.GetDescription(&cfg, nil)
}

package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// DevFallbackSecret is the signing secret substituted when JWT_SECRET is not
// set outside production. It is deliberately worthless; production startup
// fails hard instead of falling back to it.
const DevFallbackSecret = "insecure-dev-secret-do-not-deploy"

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required in production")

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	RootEmail string `env:"ROOT_EMAIL, default=admin@cumplia.com"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Postgres PostgresConfig
	Redis    RedisConfig
	Login    LoginConfig
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL, default=postgres://localhost:5432/compliance"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS, default=10"`
	Window      time.Duration `env:"LOGIN_WINDOW,       default=5m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SigningSecret resolves the token signing secret. In production a missing
// JWT_SECRET is a hard startup failure; elsewhere the development fallback is
// substituted and fellBack reports it so the caller can log loudly.
func (c *Config) SigningSecret() (secret string, fellBack bool, err error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, false, nil
	}
	if c.IsProduction() {
		return "", false, ErrMissingJWTSecret
	}
	return DevFallbackSecret, true, nil
}

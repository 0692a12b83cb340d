package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Store StoreConfig
	Auth  AuthConfig
}

type StoreConfig struct {
	// DataDir holds one JSON document per table.
	DataDir string `env:"DATA_DIR, default=./data"`
}

type AuthConfig struct {
	TokenTTL        time.Duration `env:"TOKEN_TTL,        default=5m"`
	StartingBalance int64         `env:"STARTING_BALANCE, default=100000"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

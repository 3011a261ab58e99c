// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/onenight-api/internal/errors"
)

// Config holds the server settings
type Config struct {
	GRPCPort int        `env:"ONENIGHT_GRPC_PORT" envDefault:"50051"`
	LogLevel slog.Level `env:"ONENIGHT_LOG_LEVEL" envDefault:"INFO"`

	// RedisAddr enables the round archive when set
	RedisAddr     string        `env:"ONENIGHT_REDIS_ADDR"`
	RedisPassword string        `env:"ONENIGHT_REDIS_PASSWORD"`
	RedisDB       int           `env:"ONENIGHT_REDIS_DB" envDefault:"0"`
	RedisTLS      bool          `env:"ONENIGHT_REDIS_TLS" envDefault:"false"`
	RoundTTL      time.Duration `env:"ONENIGHT_ROUND_TTL" envDefault:"24h"`

	// PresetsPath points at a JSON preset table. Empty uses the built-in one.
	PresetsPath string `env:"ONENIGHT_PRESETS_PATH"`
	MaxTables   int    `env:"ONENIGHT_MAX_TABLES" envDefault:"1000"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("ONENIGHT_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateMin("ONENIGHT_MAX_TABLES", c.MaxTables, 1, vb)
	errors.ValidateMin("ONENIGHT_REDIS_DB", c.RedisDB, 0, vb)
	if c.RoundTTL <= 0 {
		vb.Field("ONENIGHT_ROUND_TTL", "must be positive")
	}

	return vb.Build()
}

// ArchiveEnabled reports whether finished rounds go to redis
func (c *Config) ArchiveEnabled() bool {
	return c.RedisAddr != ""
}

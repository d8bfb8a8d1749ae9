// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/doodle-api/internal/errors"
)

// Environment variable names
const (
	EnvGRPCPort      = "DOODLE_GRPC_PORT"
	EnvRedisAddr     = "DOODLE_REDIS_ADDR"
	EnvSaveKey       = "DOODLE_SAVE_KEY"
	EnvLegacySaveKey = "DOODLE_LEGACY_SAVE_KEY"
	EnvCatalogPath   = "DOODLE_CATALOG_PATH"
	EnvTickInterval  = "DOODLE_TICK_INTERVAL"
	EnvSeed          = "DOODLE_SEED"
	EnvLogLevel      = "DOODLE_LOG_LEVEL"
)

// Defaults
const (
	DefaultGRPCPort      = 50051
	DefaultSaveKey       = "doodleGachaSave_v1"
	DefaultLegacySaveKey = "doodleGachaSave"
	DefaultTickInterval  = time.Second
)

// Config holds every setting the server reads at startup
type Config struct {
	GRPCPort int
	// RedisAddr selects the Redis save store. Empty keeps saves in memory.
	RedisAddr     string
	SaveKey       string
	LegacySaveKey string
	// CatalogPath is an optional YAML file overriding the built-in catalog
	CatalogPath  string
	TickInterval time.Duration
	// Seed makes summons reproducible when set
	Seed     *uint64
	LogLevel slog.Level
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		GRPCPort:      DefaultGRPCPort,
		SaveKey:       DefaultSaveKey,
		LegacySaveKey: DefaultLegacySaveKey,
		TickInterval:  DefaultTickInterval,
		LogLevel:      slog.LevelInfo,
	}
}

// Load reads a .env file if one exists, then the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to read .env file", "error", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a config from an environment lookup function
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	vb := errors.NewValidationBuilder()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get(EnvGRPCPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			vb.Fieldf(EnvGRPCPort, "invalid port %q", v)
		} else {
			cfg.GRPCPort = port
		}
	}
	if v, ok := get(EnvRedisAddr); ok {
		cfg.RedisAddr = v
	}
	if v, ok := get(EnvSaveKey); ok {
		cfg.SaveKey = v
	}
	if v, ok := get(EnvLegacySaveKey); ok {
		cfg.LegacySaveKey = v
	}
	if v, ok := get(EnvCatalogPath); ok {
		cfg.CatalogPath = v
	}
	if v, ok := get(EnvTickInterval); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			vb.Fieldf(EnvTickInterval, "invalid duration %q", v)
		} else {
			cfg.TickInterval = d
		}
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			vb.Fieldf(EnvSeed, "invalid seed %q", v)
		} else {
			cfg.Seed = &seed
		}
	}
	if v, ok := get(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			vb.Fieldf(EnvLogLevel, "invalid log level %q", v)
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges after flags and environment are applied
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort < 1 || c.GRPCPort > 65535 {
		vb.Field("GRPCPort", "must be between 1 and 65535")
	}
	if c.SaveKey == "" {
		vb.RequiredField("SaveKey")
	}
	if c.TickInterval <= 0 {
		vb.Field("TickInterval", "must be positive")
	}

	return vb.Build()
}

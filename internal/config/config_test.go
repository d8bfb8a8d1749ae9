package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/doodle-api/internal/config"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "doodleGachaSave_v1", cfg.SaveKey)
	assert.Equal(t, "doodleGachaSave", cfg.LegacySaveKey)
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.Empty(t, cfg.RedisAddr)
	assert.Nil(t, cfg.Seed)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(map[string]string{
		config.EnvGRPCPort:     "6000",
		config.EnvRedisAddr:    "localhost:6379",
		config.EnvSaveKey:      "custom",
		config.EnvCatalogPath:  "catalog.yaml",
		config.EnvTickInterval: "250ms",
		config.EnvSeed:         "42",
		config.EnvLogLevel:     "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "custom", cfg.SaveKey)
	assert.Equal(t, "catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestBlankValuesKeepDefaults(t *testing.T) {
	cfg, err := config.FromLookup(lookupFrom(map[string]string{
		config.EnvSaveKey: "   ",
	}))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSaveKey, cfg.SaveKey)
}

func TestFromLookupRejectsBadValues(t *testing.T) {
	_, err := config.FromLookup(lookupFrom(map[string]string{
		config.EnvGRPCPort:     "port",
		config.EnvTickInterval: "soon",
		config.EnvSeed:         "-1",
		config.EnvLogLevel:     "loud",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvGRPCPort)
	assert.Contains(t, err.Error(), config.EnvTickInterval)
	assert.Contains(t, err.Error(), config.EnvSeed)
	assert.Contains(t, err.Error(), config.EnvLogLevel)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.GRPCPort = 70000
	cfg.TickInterval = 0
	cfg.SaveKey = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GRPCPort")
	assert.Contains(t, err.Error(), "TickInterval")
	assert.Contains(t, err.Error(), "SaveKey")

	_, err = config.FromLookup(lookupFrom(map[string]string{config.EnvTickInterval: "-1s"}))
	assert.Error(t, err)
}

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krissstine/petcarewithollama/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "embedded", cfg.Catalog.Source)

	assert.Equal(t, 15.0, cfg.Query.ChatRadiusKm)
	assert.Equal(t, 5, cfg.Query.ChatLimit)
	assert.Equal(t, 50.0, cfg.Query.MapRadiusKm)
	assert.Equal(t, 30, cfg.Query.MapLimit)
	assert.Equal(t, 50, cfg.Query.SearchLimit)

	lat, lng := cfg.Assistant.DefaultLocation()
	assert.Equal(t, 14.5995, lat)
	assert.Equal(t, 120.9842, lng)

	assert.Equal(t, "espeak", cfg.Speech.Provider)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("QUERY_CHAT_RADIUS_KM", "25.5")
	t.Setenv("SPEECH_PROVIDER", "mock")
	t.Setenv("OTEL_ENABLED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Catalog.Source)
	assert.Equal(t, 25.5, cfg.Query.ChatRadiusKm)
	assert.Equal(t, "mock", cfg.Speech.Provider)
	assert.True(t, cfg.OTEL.Enabled)
}

func TestLoad_MalformedValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("QUERY_CHAT_LIMIT", "5.5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Query.ChatLimit)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host: "db", Port: 5433, User: "app", Password: "secret",
		Database: "petcare", SSLMode: "disable",
	}

	assert.Equal(t,
		"host=db port=5433 user=app password=secret dbname=petcare sslmode=disable",
		cfg.DatabaseDSN(),
	)
}

func TestRedisAddr(t *testing.T) {
	cfg := config.RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.RedisAddr())
}

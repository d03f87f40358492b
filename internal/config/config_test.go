package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.SeedOnStart)
	assert.False(t, cfg.StrictDeliveryTransitions)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, 5*time.Minute, cfg.DBMaxConnIdleTime)
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLifetime)
}

func TestLoad_PostgresDoesNotSeedByDefault(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.False(t, cfg.SeedOnStart)

	t.Setenv("SEED_ON_START", "true")
	cfg, err = load(viper.New())
	require.NoError(t, err)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("STORE_BACKEND", "Postgres")
	t.Setenv("STRICT_DELIVERY_TRANSITIONS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("SESSION_TTL_HOURS", "2")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, BackendPostgres, cfg.StoreBackend)
	assert.True(t, cfg.StrictDeliveryTransitions)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, int32(4), cfg.DBMaxConns)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR: \":7070\"\nSEED_ON_START: false\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_UnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "badger")

	_, err := load(viper.New())
	require.Error(t, err)
}

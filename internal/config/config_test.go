package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/config"
	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, config.StoreRedis, cfg.HighlightStore)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MEMENTO_PORT", "6000")
	t.Setenv("MEMENTO_HIGHLIGHT_STORE", "badger")
	t.Setenv("MEMENTO_SESSION_TTL", "2m")
	t.Setenv("MEMENTO_LOG_LEVEL", "debug")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, config.StoreBadger, cfg.HighlightStore)
	assert.Equal(t, 2*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memento.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 7000
catalog_path: /srv/catalog.yaml
redis_cluster_addrs:
  - redis-1:6379
  - redis-2:6379
`), 0o600))

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "/srv/catalog.yaml", cfg.CatalogPath)
	assert.Equal(t, []string{"redis-1:6379", "redis-2:6379"}, cfg.RedisClusterAddrs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBindFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("port", 50051, "")
	cmd.Flags().String("catalog", "catalog.yaml", "")
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "8080", "--catalog", "other.yaml"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, cmd))

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "other.yaml", cfg.CatalogPath)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "bad port", mutate: func(c *config.Config) { c.Port = 0 }},
		{name: "unknown store", mutate: func(c *config.Config) { c.HighlightStore = "etcd" }},
		{name: "redis without address", mutate: func(c *config.Config) { c.RedisAddr = "" }},
		{name: "no catalog", mutate: func(c *config.Config) { c.CatalogPath = "" }},
		{name: "bad log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }},
		{name: "zero ttl", mutate: func(c *config.Config) { c.SessionTTL = 0 }},
		{name: "negative redis pool", mutate: func(c *config.Config) { c.RedisPoolSize = -1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := config.Load(config.New(), "")
			require.NoError(t, err)

			tc.mutate(cfg)
			assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
		})
	}
}

func TestLoad_RedisConnectionSettings(t *testing.T) {
	t.Setenv("MEMENTO_REDIS_POOL_SIZE", "16")
	t.Setenv("MEMENTO_REDIS_TLS", "true")

	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.RedisPoolSize)
	assert.True(t, cfg.RedisTLS)
}

func TestBindFlags_RedisConnectionSettings(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int("redis-pool-size", 0, "")
	cmd.Flags().Bool("redis-tls", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--redis-pool-size", "3", "--redis-tls"}))

	v := config.New()
	require.NoError(t, config.BindFlags(v, cmd))

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.RedisPoolSize)
	assert.True(t, cfg.RedisTLS)
}

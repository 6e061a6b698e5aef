// Package config loads process configuration from flags, environment and an
// optional YAML file
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

// EnvPrefix is prepended to every environment variable, e.g. MEMENTO_PORT
const EnvPrefix = "MEMENTO"

// Highlight store backends
const (
	StoreRedis  = "redis"
	StoreBadger = "badger"
)

// Config is the process configuration
type Config struct {
	Port              int           `mapstructure:"port"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	RedisClusterAddrs []string      `mapstructure:"redis_cluster_addrs"`
	RedisPoolSize     int           `mapstructure:"redis_pool_size"`
	RedisTLS          bool          `mapstructure:"redis_tls"`
	HighlightStore    string        `mapstructure:"highlight_store"`
	BadgerDir         string        `mapstructure:"badger_dir"`
	CatalogPath       string        `mapstructure:"catalog_path"`
	Locale            string        `mapstructure:"locale"`
	LogLevel          string        `mapstructure:"log_level"`
	SessionTTL        time.Duration `mapstructure:"session_ttl"`
	SweepInterval     time.Duration `mapstructure:"sweep_interval"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"port":                "port",
	"redis-addr":          "redis_addr",
	"redis-cluster-addrs": "redis_cluster_addrs",
	"redis-pool-size":     "redis_pool_size",
	"redis-tls":           "redis_tls",
	"highlight-store":     "highlight_store",
	"badger-dir":          "badger_dir",
	"catalog":             "catalog_path",
	"locale":              "locale",
	"log-level":           "log_level",
	"session-ttl":         "session_ttl",
	"sweep-interval":      "sweep_interval",
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", 50051)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_pool_size", 0)
	v.SetDefault("redis_tls", false)
	v.SetDefault("highlight_store", StoreRedis)
	v.SetDefault("catalog_path", "catalog.yaml")
	v.SetDefault("locale", "en")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_ttl", 15*time.Minute)
	v.SetDefault("sweep_interval", time.Minute)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known flag the command defines
func BindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", flag)
		}
	}
	return nil
}

// Load reads the optional config file and decodes the result
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Port <= 0 || c.Port > 65535 {
		vb.Fieldf("port", "must be between 1 and 65535, got %d", c.Port)
	}
	errors.ValidateEnum("highlight_store", c.HighlightStore, []string{StoreRedis, StoreBadger}, vb)
	if c.HighlightStore == StoreRedis && c.RedisAddr == "" && len(c.RedisClusterAddrs) == 0 {
		vb.Field("redis_addr", "required when highlight_store is redis")
	}
	if c.RedisPoolSize < 0 {
		vb.Fieldf("redis_pool_size", "must not be negative, got %d", c.RedisPoolSize)
	}
	errors.ValidateRequired("catalog_path", c.CatalogPath, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	if c.SessionTTL <= 0 {
		vb.Field("session_ttl", "must be positive")
	}
	if c.SweepInterval <= 0 {
		vb.Field("sweep_interval", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto a slog level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Package redis wraps the go-redis client so repositories depend on a small
// local interface instead of the concrete client.
package redis

import (
	"crypto/tls"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

// Options carries the connection settings the server exposes as config.
// A zero PoolSize keeps the go-redis default.
type Options struct {
	PoolSize int
	UseTLS   bool
}

func (o *Options) tlsConfig() *tls.Config {
	if o == nil || !o.UseTLS {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

func (o *Options) poolSize() int {
	if o == nil {
		return 0
	}
	return o.PoolSize
}

// NewClient connects to a single Redis instance holding game setup and
// saved highlights
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts.poolSize() < 0 {
		return nil, errors.InvalidArgumentf("redis pool size must not be negative, got %d", opts.PoolSize)
	}

	return redis.NewClient(&redis.Options{
		Addr:      endpoint,
		PoolSize:  opts.poolSize(),
		TLSConfig: opts.tlsConfig(),
	}), nil
}

// NewClusterClient connects to a Redis cluster
func NewClusterClient(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("at least one redis cluster endpoint is required")
	}
	if opts.poolSize() < 0 {
		return nil, errors.InvalidArgumentf("redis pool size must not be negative, got %d", opts.PoolSize)
	}

	return redis.NewClusterClient(&redis.ClusterOptions{
		Addrs:     endpoints,
		PoolSize:  opts.poolSize(),
		TLSConfig: opts.tlsConfig(),
	}), nil
}

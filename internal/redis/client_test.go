package redis_test

import (
	"context"
	"crypto/tls"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/redis"
)

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClient_RejectsNegativePoolSize(t *testing.T) {
	_, err := redis.NewClient("localhost:6379", &redis.Options{PoolSize: -1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClient_AppliesOptions(t *testing.T) {
	client, err := redis.NewClient("localhost:6379", &redis.Options{PoolSize: 7, UseTLS: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	single, ok := client.(*goredis.Client)
	require.True(t, ok)
	assert.Equal(t, 7, single.Options().PoolSize)
	require.NotNil(t, single.Options().TLSConfig)
	assert.False(t, single.Options().TLSConfig.InsecureSkipVerify)
	assert.Equal(t, uint16(tls.VersionTLS12), single.Options().TLSConfig.MinVersion)
}

func TestNewClient_PlainConnectionPings(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	single, ok := client.(*goredis.Client)
	require.True(t, ok)
	assert.Nil(t, single.Options().TLSConfig)
	require.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewClusterClient_RequiresEndpoints(t *testing.T) {
	_, err := redis.NewClusterClient(nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClusterClient_AppliesOptions(t *testing.T) {
	client, err := redis.NewClusterClient([]string{"redis-1:6379", "redis-2:6379"}, &redis.Options{PoolSize: 4, UseTLS: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cluster, ok := client.(*goredis.ClusterClient)
	require.True(t, ok)
	assert.Equal(t, 4, cluster.Options().PoolSize)
	require.NotNil(t, cluster.Options().TLSConfig)
	assert.Equal(t, []string{"redis-1:6379", "redis-2:6379"}, cluster.Options().Addrs)
}

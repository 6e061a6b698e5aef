package highlights

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-memento-editor/internal/redis"
)

// RedisConfig contains configuration for the Redis highlight repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed highlight repository.
// Keys are "memento-highlights:{player_id}".
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, r.buildKey(input.PlayerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{ItemIDs: []string{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get highlights for player %s", input.PlayerID)
	}

	ids, err := decode(result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode highlights for player %s", input.PlayerID)
	}

	return &LoadOutput{ItemIDs: ids}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	data, err := encode(input.ItemIDs)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, r.buildKey(input.PlayerID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save highlights for player %s", input.PlayerID)
	}

	return &SaveOutput{Data: data}, nil
}

func (r *redisRepository) buildKey(playerID string) string {
	return StorageKey + ":" + playerID
}

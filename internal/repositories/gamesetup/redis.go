package gamesetup

import (
	"context"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-memento-editor/internal/redis"
)

const (
	// Key pattern: game_setup:player:{player_id} -> hash of parameter -> value
	setupKeyPrefix = "game_setup:player:"

	errPlayerIDEmpty = "player ID cannot be empty"
	errKeyEmpty      = "parameter key cannot be empty"
)

// RedisConfig contains configuration for the Redis game setup repository
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

// NewRedis creates a Redis-backed game setup repository
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

func (r *redisRepository) SetParameter(ctx context.Context, input SetParameterInput) (*SetParameterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.HSet(ctx, setupKeyPrefix+input.PlayerID, input.Key, input.Value).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set parameter %s for player %s", input.Key, input.PlayerID)
	}

	return &SetParameterOutput{}, nil
}

func (r *redisRepository) GetParameters(ctx context.Context, input GetParametersInput) (*GetParametersOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	values, err := r.client.HGetAll(ctx, setupKeyPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get parameters for player %s", input.PlayerID)
	}

	if values == nil {
		values = map[string]string{}
	}

	return &GetParametersOutput{Values: values}, nil
}

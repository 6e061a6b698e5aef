package gamesetup

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
)

// InMemoryRepository keeps game setup parameters in process memory
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]map[string]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]map[string]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// SetParameter stores one parameter value for a player
func (r *InMemoryRepository) SetParameter(_ context.Context, input SetParameterInput) (*SetParameterOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	params, ok := r.store[input.PlayerID]
	if !ok {
		params = make(map[string]string)
		r.store[input.PlayerID] = params
	}
	params[input.Key] = input.Value

	return &SetParameterOutput{}, nil
}

// GetParameters returns a copy of every parameter set for a player
func (r *InMemoryRepository) GetParameters(_ context.Context, input GetParametersInput) (*GetParametersOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make(map[string]string, len(r.store[input.PlayerID]))
	for k, v := range r.store[input.PlayerID] {
		values[k] = v
	}

	return &GetParametersOutput{Values: values}, nil
}

// Package gamesetup stores per-player game setup parameters, the committed
// side of memento slot assignments
package gamesetup

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesetupmock github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup Repository

import (
	"context"
)

// Repository defines the interface for game setup parameter persistence
type Repository interface {
	// SetParameter writes a single player parameter
	// Returns errors.InvalidArgument for empty player IDs or keys
	// Returns errors.Internal for storage failures
	SetParameter(ctx context.Context, input SetParameterInput) (*SetParameterOutput, error)

	// GetParameters returns every parameter stored for a player.
	// A player with no parameters returns an empty map
	GetParameters(ctx context.Context, input GetParametersInput) (*GetParametersOutput, error)
}

// SetParameterInput defines the input for setting a parameter
type SetParameterInput struct {
	PlayerID string
	Key      string
	Value    string
}

// SetParameterOutput defines the output for setting a parameter
type SetParameterOutput struct {
}

// GetParametersInput defines the input for reading parameters
type GetParametersInput struct {
	PlayerID string
}

// GetParametersOutput defines the output for reading parameters
type GetParametersOutput struct {
	Values map[string]string
}

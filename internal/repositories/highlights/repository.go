// Package highlights provides persistence for the set of mementos a player has
// pinned in the editor
package highlights

//go:generate mockgen -destination=mock/mock_repository.go -package=highlightsmock github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights Repository

import (
	"context"
)

// StorageKey is the fixed identifier the highlight blob is stored under
const StorageKey = "memento-highlights"

// Repository persists a player's highlighted memento ids.
// The stored form is a JSON array of id strings, overwritten wholesale.
type Repository interface {
	// Load returns the stored ids.
	// Returns an empty list when nothing has been stored yet
	// Returns errors.DataLoss when the stored blob is not a JSON string array
	// Returns errors.Internal for storage failures
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the stored ids
	// Returns errors.InvalidArgument for an empty player ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadInput defines the input for loading highlights
type LoadInput struct {
	PlayerID string
}

// LoadOutput defines the output for loading highlights
type LoadOutput struct {
	ItemIDs []string
}

// SaveInput defines the input for saving highlights.
// ItemIDs are stored in the given order.
type SaveInput struct {
	PlayerID string
	ItemIDs  []string
}

// SaveOutput defines the output for saving highlights
type SaveOutput struct {
	// Data is the exact blob that was written
	Data []byte
}

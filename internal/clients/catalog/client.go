// Package catalog is the data provider for memento and slot descriptors
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/rpg-memento-editor/internal/clients/catalog Client

import (
	"context"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// Client defines the interface for catalog lookups
type Client interface {
	// ListItems returns the full memento catalog in source order
	ListItems(ctx context.Context) ([]*memento.Item, error)

	// ListSlots returns the slot descriptors in declaration order.
	// AssignedItemID carries the catalog default, callers overlay the
	// player's committed value.
	ListSlots(ctx context.Context) ([]*memento.Slot, error)
}

// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// ItemBuilder provides a fluent interface for building test items
type ItemBuilder struct {
	item *memento.Item
}

// NewItemBuilder creates an unlocked item whose name matches its id
func NewItemBuilder(id string) *ItemBuilder {
	return &ItemBuilder{
		item: &memento.Item{
			ID:          id,
			DisplayName: id,
			Visibility:  memento.VisibilityUnlocked,
		},
	}
}

// WithName sets the display name
func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.item.DisplayName = name
	return b
}

// WithDescription sets the functional description
func (b *ItemBuilder) WithDescription(desc string) *ItemBuilder {
	b.item.Description = desc
	return b
}

// WithFlavor sets the flavor text
func (b *ItemBuilder) WithFlavor(flavor string) *ItemBuilder {
	b.item.FlavorText = flavor
	return b
}

// WithUnlockHint sets the unlock hint
func (b *ItemBuilder) WithUnlockHint(hint string) *ItemBuilder {
	b.item.UnlockHint = hint
	return b
}

// Locked marks the item as locked
func (b *ItemBuilder) Locked() *ItemBuilder {
	b.item.Visibility = memento.VisibilityLocked
	return b
}

// Hidden marks the item as hidden
func (b *ItemBuilder) Hidden() *ItemBuilder {
	b.item.Visibility = memento.VisibilityHidden
	return b
}

// Build returns the built item
func (b *ItemBuilder) Build() *memento.Item {
	return b.item
}

// SlotBuilder provides a fluent interface for building test slots
type SlotBuilder struct {
	slot *memento.Slot
}

// NewSlotBuilder creates an empty, unlocked slot keyed by its id
func NewSlotBuilder(id string) *SlotBuilder {
	return &SlotBuilder{
		slot: &memento.Slot{
			ID:             id,
			ParameterKey:   "param_" + id,
			AssignedItemID: memento.NoneItemID,
		},
	}
}

// WithEligible sets the eligible item ids
func (b *SlotBuilder) WithEligible(ids ...string) *SlotBuilder {
	b.slot.EligibleItemIDs = ids
	return b
}

// WithAssigned sets the reported current value
func (b *SlotBuilder) WithAssigned(itemID string) *SlotBuilder {
	b.slot.AssignedItemID = itemID
	return b
}

// Locked marks the slot as locked
func (b *SlotBuilder) Locked() *SlotBuilder {
	b.slot.IsLocked = true
	return b
}

// Build returns the built slot
func (b *SlotBuilder) Build() *memento.Slot {
	return b.slot
}

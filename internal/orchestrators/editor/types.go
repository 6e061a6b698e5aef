package editor

import (
	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// Direction moves the active slot through declaration order
type Direction int

// Slot cycling directions
const (
	Prev Direction = -1
	Next Direction = 1
)

// ItemView is the per-item projection a rendering layer consumes
type ItemView struct {
	Item memento.Item

	// Selected is true when the item is assigned to any slot in the
	// working copy
	Selected bool

	// Available is true when the active slot would accept the item
	Available bool

	// Pinned is true when the player highlighted the item
	Pinned bool
}

// SlotView is the projection of a single slot
type SlotView struct {
	ID             string
	ParameterKey   string
	IsLocked       bool
	IsActive       bool
	AssignedItemID string
}

// View is the full state projection of an editor
type View struct {
	Slots        []SlotView
	ActiveSlotID string
	Filters      memento.FilterState

	// Items are the visible items in catalog order
	Items []ItemView

	// Pinned are the visible items that are highlighted, in catalog order
	Pinned []ItemView
}

// Tooltip carries the strings a tooltip is assembled from
type Tooltip struct {
	Title       string
	Description string
	FlavorText  string
	UnlockHint  string
	Pinned      bool
}

// SlotCommit is the outcome of committing one slot
type SlotCommit struct {
	SlotID       string
	ParameterKey string
	ItemID       string
	Err          error
}

// ConfirmResult lists the per-slot outcome of Confirm
type ConfirmResult struct {
	Commits []SlotCommit
}

// Failed returns the commits that did not reach the game setup
func (r *ConfirmResult) Failed() []SlotCommit {
	var failed []SlotCommit
	for _, c := range r.Commits {
		if c.Err != nil {
			failed = append(failed, c)
		}
	}
	return failed
}

package session

import (
	"time"

	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
)

// OpenInput starts an editing session for a player
type OpenInput struct {
	PlayerID string

	// LeaderName is shown in the editor header
	LeaderName string
}

// OpenOutput returns the new session
type OpenOutput struct {
	Session *Snapshot
}

// UpdateInput applies player interactions to a session. Set fields are
// applied in declaration order; unset fields are skipped.
type UpdateInput struct {
	SessionID string

	SelectSlotID    *string
	SelectSlotIndex *int
	Cycle           editor.Direction
	ToggleItemID    string

	SearchText    *string
	OnlyUnlocked  *bool
	OnlyFavorites *bool

	ToggleHighlightID string
}

// UpdateOutput returns the session after the update
type UpdateOutput struct {
	Session *Snapshot
}

// GetInput identifies a session
type GetInput struct {
	SessionID string
}

// GetOutput returns the session state
type GetOutput struct {
	Session *Snapshot
}

// TooltipInput asks for an item's tooltip within a session
type TooltipInput struct {
	SessionID string
	ItemID    string
}

// TooltipOutput returns the tooltip strings
type TooltipOutput struct {
	Tooltip *editor.Tooltip
}

// ConfirmInput commits and closes a session
type ConfirmInput struct {
	SessionID string
}

// ConfirmOutput lists the per-slot commit outcome
type ConfirmOutput struct {
	Result *editor.ConfirmResult
}

// CancelInput discards and closes a session
type CancelInput struct {
	SessionID string
}

// CancelOutput is empty
type CancelOutput struct{}

// Snapshot is a point-in-time copy of a session
type Snapshot struct {
	SessionID  string
	PlayerID   string
	LeaderName string
	View       *editor.View

	// Suggestion is a near-miss item name when the search hides everything
	Suggestion string

	ExpiresAt time.Time
}

// Package memento holds the catalog types shared by the editor, the catalog
// client and the repositories.
package memento

import "strings"

// NoneItemID is the assignment value for an empty slot
const NoneItemID = "NONE"

// Visibility is how an item is presented to the player.
// Ordering of the constants is the catalog sort priority.
type Visibility int

// Visibility values
const (
	VisibilityUnlocked Visibility = iota
	VisibilityLocked
	VisibilityHidden
)

// String returns the string representation of the visibility
func (v Visibility) String() string {
	switch v {
	case VisibilityUnlocked:
		return "UNLOCKED"
	case VisibilityLocked:
		return "LOCKED"
	case VisibilityHidden:
		return "HIDDEN"
	default:
		return "UNKNOWN"
	}
}

// IsValid checks if the visibility is one of the known values
func (v Visibility) IsValid() bool {
	switch v {
	case VisibilityUnlocked, VisibilityLocked, VisibilityHidden:
		return true
	default:
		return false
	}
}

// ParseVisibility converts a catalog string into a Visibility.
// Unknown values return false.
func ParseVisibility(s string) (Visibility, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UNLOCKED", "":
		return VisibilityUnlocked, true
	case "LOCKED":
		return VisibilityLocked, true
	case "HIDDEN":
		return VisibilityHidden, true
	default:
		return VisibilityUnlocked, false
	}
}

// Item is a single cosmetic catalog entry. Read-only once loaded.
type Item struct {
	ID          string
	DisplayName string
	Description string
	FlavorText  string
	UnlockHint  string
	IconRef     string
	Visibility  Visibility
}

// IsUnlocked reports whether the player owns the item
func (i *Item) IsUnlocked() bool {
	return i.Visibility == VisibilityUnlocked
}

// SearchText returns the lower-cased text a search query is matched against
func (i *Item) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		i.DisplayName,
		i.Description,
		i.FlavorText,
		i.UnlockHint,
	}, " "))
}

// Slot is an assignment target for mementos
type Slot struct {
	ID string

	// ParameterKey is the game-setup parameter this slot is committed to
	ParameterKey string

	IsLocked bool

	// AssignedItemID is the value the data source reports for the slot.
	// NoneItemID when empty.
	AssignedItemID string

	EligibleItemIDs []string
}

// Accepts reports whether the slot lists the item as eligible
func (s *Slot) Accepts(itemID string) bool {
	if itemID == "" || itemID == NoneItemID {
		return false
	}
	for _, id := range s.EligibleItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// FilterState is the transient search and filter input
type FilterState struct {
	SearchText    string
	OnlyUnlocked  bool
	OnlyFavorites bool
}

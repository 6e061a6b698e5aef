package editor

import (
	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// VisibleItems returns the items passing the current filters, in catalog order
func (e *Editor) VisibleItems() []memento.Item {
	out := make([]memento.Item, len(e.visible))
	for i, item := range e.visible {
		out[i] = *item
	}
	return out
}

// PinnedItems returns the visible items that are highlighted
func (e *Editor) PinnedItems() []memento.Item {
	var out []memento.Item
	for _, item := range e.visible {
		if e.highlighted[item.ID] {
			out = append(out, *item)
		}
	}
	return out
}

// IsAvailable reports whether the active slot would accept the item.
// False when no slot is active.
func (e *Editor) IsAvailable(itemID string) bool {
	slot := e.activeSlot()
	if slot == nil {
		return false
	}
	return e.accepts(slot, itemID)
}

// IsHighlighted reports whether the player pinned the item
func (e *Editor) IsHighlighted(itemID string) bool {
	return e.highlighted[itemID]
}

// HighlightedIDs returns the highlight set in catalog order
func (e *Editor) HighlightedIDs() []string {
	ids := make([]string, 0, len(e.highlighted))
	for _, item := range e.items {
		if e.highlighted[item.ID] {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// ActiveSlotID returns the active slot, or "" when none is active
func (e *Editor) ActiveSlotID() string {
	if slot := e.activeSlot(); slot != nil {
		return slot.ID
	}
	return ""
}

// Assignment returns the working assignment of a slot
func (e *Editor) Assignment(slotID string) (string, bool) {
	itemID, ok := e.scratch[slotID]
	return itemID, ok
}

// Filters returns the current filter state
func (e *Editor) Filters() memento.FilterState {
	return e.filters
}

// PlayerID returns the player the editor was built for
func (e *Editor) PlayerID() string {
	return e.playerID
}

// Tooltip returns the tooltip strings for an item
func (e *Editor) Tooltip(itemID string) (*Tooltip, bool) {
	item, ok := e.itemsByID[itemID]
	if !ok {
		return nil, false
	}
	return &Tooltip{
		Title:       item.DisplayName,
		Description: item.Description,
		FlavorText:  item.FlavorText,
		UnlockHint:  item.UnlockHint,
		Pinned:      e.highlighted[itemID],
	}, true
}

// View projects the whole editor state
func (e *Editor) View() *View {
	assigned := make(map[string]bool, len(e.scratch))
	for _, itemID := range e.scratch {
		if itemID != memento.NoneItemID {
			assigned[itemID] = true
		}
	}

	view := &View{
		Slots:        make([]SlotView, 0, len(e.slots)),
		ActiveSlotID: e.ActiveSlotID(),
		Filters:      e.filters,
		Items:        make([]ItemView, 0, len(e.visible)),
	}

	for i, slot := range e.slots {
		view.Slots = append(view.Slots, SlotView{
			ID:             slot.ID,
			ParameterKey:   slot.ParameterKey,
			IsLocked:       slot.IsLocked,
			IsActive:       i == e.active,
			AssignedItemID: e.scratch[slot.ID],
		})
	}

	for _, item := range e.visible {
		iv := ItemView{
			Item:      *item,
			Selected:  assigned[item.ID],
			Available: e.IsAvailable(item.ID),
			Pinned:    e.highlighted[item.ID],
		}
		view.Items = append(view.Items, iv)
		if iv.Pinned {
			view.Pinned = append(view.Pinned, iv)
		}
	}

	return view
}

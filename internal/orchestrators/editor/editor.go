// Package editor implements the memento selection and filter controller.
//
// An Editor owns a sorted copy of the catalog, the slot descriptors, a scratch
// copy of the slot assignments, the player's highlight set and the current
// filters. Every mutation recomputes the visible list, so the projection
// methods (VisibleItems, PinnedItems, IsAvailable, View) are cheap reads.
//
// An Editor is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package editor

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
)

const noActiveSlot = -1

// Config holds the catalog data and collaborators of an editor
type Config struct {
	PlayerID string
	Items    []*memento.Item
	Slots    []*memento.Slot

	HighlightRepo highlights.Repository
	GameSetupRepo gamesetup.Repository

	// Locale drives name ordering. Defaults to English.
	Locale language.Tag
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}

	errors.ValidateRequired("PlayerID", c.PlayerID, vb)
	if c.HighlightRepo == nil {
		vb.RequiredField("HighlightRepo")
	}
	if c.GameSetupRepo == nil {
		vb.RequiredField("GameSetupRepo")
	}

	seen := make(map[string]bool, len(c.Items))
	for _, item := range c.Items {
		if item == nil || item.ID == "" {
			vb.Field("Items", "contains an item without an id")
			continue
		}
		if seen[item.ID] {
			vb.Fieldf("Items", "duplicate id %s", item.ID)
		}
		seen[item.ID] = true
	}

	seenSlots := make(map[string]bool, len(c.Slots))
	for _, slot := range c.Slots {
		if slot == nil || slot.ID == "" {
			vb.Field("Slots", "contains a slot without an id")
			continue
		}
		if seenSlots[slot.ID] {
			vb.Fieldf("Slots", "duplicate id %s", slot.ID)
		}
		seenSlots[slot.ID] = true
	}

	return vb.Build()
}

// Editor is the selection and filter controller for one player
type Editor struct {
	playerID      string
	highlightRepo highlights.Repository
	gameSetupRepo gamesetup.Repository

	items     []*memento.Item
	itemsByID map[string]*memento.Item
	slots     []*memento.Slot
	slotIndex map[string]int

	// committed mirrors what the game setup holds; scratch is the working copy
	committed map[string]string
	scratch   map[string]string

	active      int
	filters     memento.FilterState
	highlighted map[string]bool

	visible []*memento.Item
}

// New builds an editor. Highlights are loaded once here; a failed or
// malformed load is logged and treated as an empty set.
func New(ctx context.Context, cfg *Config) (*Editor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}

	e := &Editor{
		playerID:      cfg.PlayerID,
		highlightRepo: cfg.HighlightRepo,
		gameSetupRepo: cfg.GameSetupRepo,
		items:         make([]*memento.Item, 0, len(cfg.Items)),
		itemsByID:     make(map[string]*memento.Item, len(cfg.Items)),
		slots:         make([]*memento.Slot, 0, len(cfg.Slots)),
		slotIndex:     make(map[string]int, len(cfg.Slots)),
		committed:     make(map[string]string, len(cfg.Slots)),
		scratch:       make(map[string]string, len(cfg.Slots)),
		active:        noActiveSlot,
		highlighted:   make(map[string]bool),
	}

	for _, item := range cfg.Items {
		cp := *item
		e.items = append(e.items, &cp)
		e.itemsByID[cp.ID] = &cp
	}
	sortItems(e.items, locale)

	for i, slot := range cfg.Slots {
		cp := *slot
		cp.EligibleItemIDs = append([]string(nil), slot.EligibleItemIDs...)
		e.slots = append(e.slots, &cp)
		e.slotIndex[cp.ID] = i

		assigned := cp.AssignedItemID
		if assigned == "" {
			assigned = memento.NoneItemID
		}
		if assigned != memento.NoneItemID && !e.accepts(&cp, assigned) {
			slog.Warn("Discarding invalid slot assignment",
				"player_id", e.playerID,
				"slot_id", cp.ID,
				"item_id", assigned,
			)
			assigned = memento.NoneItemID
		}
		e.committed[cp.ID] = assigned
		e.scratch[cp.ID] = assigned
	}

	e.loadHighlights(ctx)
	e.recompute()

	return e, nil
}

func (e *Editor) loadHighlights(ctx context.Context) {
	out, err := e.highlightRepo.Load(ctx, highlights.LoadInput{PlayerID: e.playerID})
	if err != nil {
		slog.Error("Failed to load highlighted mementos",
			"player_id", e.playerID,
			"error", err,
		)
		return
	}

	stale := 0
	for _, id := range out.ItemIDs {
		if _, ok := e.itemsByID[id]; !ok {
			stale++
			continue
		}
		e.highlighted[id] = true
	}

	if stale > 0 {
		slog.Debug("Ignoring highlights for unknown mementos",
			"player_id", e.playerID,
			"stale", stale,
		)
	}
}

// accepts reports whether the slot would take the item
func (e *Editor) accepts(slot *memento.Slot, itemID string) bool {
	item, ok := e.itemsByID[itemID]
	if !ok || !item.IsUnlocked() {
		return false
	}
	return slot.Accepts(itemID)
}

func (e *Editor) activeSlot() *memento.Slot {
	if e.active == noActiveSlot {
		return nil
	}
	return e.slots[e.active]
}

// SelectSlot makes the slot active. Unknown, locked or already active slots
// are ignored.
func (e *Editor) SelectSlot(slotID string) {
	idx, ok := e.slotIndex[slotID]
	if !ok {
		return
	}
	e.selectIndex(idx)
}

// SelectSlotIndex makes the slot at the given declaration position active
func (e *Editor) SelectSlotIndex(idx int) {
	if idx < 0 || idx >= len(e.slots) {
		return
	}
	e.selectIndex(idx)
}

// Focus activates the first unlocked slot when no slot is active
func (e *Editor) Focus() {
	if e.active != noActiveSlot {
		return
	}
	for i, slot := range e.slots {
		if !slot.IsLocked {
			e.selectIndex(i)
			return
		}
	}
}

func (e *Editor) selectIndex(idx int) {
	if e.slots[idx].IsLocked || idx == e.active {
		return
	}
	e.active = idx
	e.recompute()
}

// CycleSlot moves the active slot one position. Moves past either end, and
// moves with no active slot, are ignored.
func (e *Editor) CycleSlot(dir Direction) {
	if e.active == noActiveSlot {
		return
	}
	target := e.active + int(dir)
	if target < 0 || target >= len(e.slots) {
		return
	}
	e.selectIndex(target)
}

// ToggleItem assigns the item to the active slot, or clears the slot when
// the item is already assigned there. Items the slot does not accept are
// ignored. An accepted item that sits in another slot moves to the active one,
// unless that slot is locked, in which case the toggle is ignored.
func (e *Editor) ToggleItem(itemID string) {
	slot := e.activeSlot()
	if slot == nil {
		return
	}

	if e.scratch[slot.ID] == itemID {
		e.scratch[slot.ID] = memento.NoneItemID
		e.recompute()
		return
	}

	if !e.accepts(slot, itemID) {
		return
	}

	var holders []*memento.Slot
	for _, other := range e.slots {
		if other.ID == slot.ID || e.scratch[other.ID] != itemID {
			continue
		}
		// a locked slot keeps its item, so the item cannot move
		if other.IsLocked {
			return
		}
		holders = append(holders, other)
	}
	for _, other := range holders {
		e.scratch[other.ID] = memento.NoneItemID
	}
	e.scratch[slot.ID] = itemID
	e.recompute()
}

// SetSearchText stores the lower-cased query. Whitespace is kept as typed.
func (e *Editor) SetSearchText(text string) {
	e.filters.SearchText = strings.ToLower(text)
	e.recompute()
}

// SetOnlyUnlocked toggles the unlocked-only filter
func (e *Editor) SetOnlyUnlocked(only bool) {
	e.filters.OnlyUnlocked = only
	e.recompute()
}

// SetOnlyFavorites toggles the highlighted-only filter
func (e *Editor) SetOnlyFavorites(only bool) {
	e.filters.OnlyFavorites = only
	e.recompute()
}

// ToggleHighlight flips the item's highlight and saves the whole set.
// Save failures are logged; the in-memory set keeps the new state.
func (e *Editor) ToggleHighlight(ctx context.Context, itemID string) {
	if _, ok := e.itemsByID[itemID]; !ok {
		return
	}

	if e.highlighted[itemID] {
		delete(e.highlighted, itemID)
	} else {
		e.highlighted[itemID] = true
	}

	_, err := e.highlightRepo.Save(ctx, highlights.SaveInput{
		PlayerID: e.playerID,
		ItemIDs:  e.HighlightedIDs(),
	})
	if err != nil {
		slog.Error("Failed to save highlighted mementos",
			"player_id", e.playerID,
			"item_id", itemID,
			"error", err,
		)
	}

	e.recompute()
}

// Confirm pushes every slot's working assignment to the game setup.
// Each slot is written independently; a failure is logged and recorded in
// the result without stopping the remaining slots.
func (e *Editor) Confirm(ctx context.Context) *ConfirmResult {
	result := &ConfirmResult{Commits: make([]SlotCommit, 0, len(e.slots))}

	for _, slot := range e.slots {
		itemID := e.scratch[slot.ID]
		_, err := e.gameSetupRepo.SetParameter(ctx, gamesetup.SetParameterInput{
			PlayerID: e.playerID,
			Key:      slot.ParameterKey,
			Value:    itemID,
		})
		if err != nil {
			slog.Error("Failed to commit memento slot",
				"player_id", e.playerID,
				"slot_id", slot.ID,
				"parameter", slot.ParameterKey,
				"item_id", itemID,
				"error", err,
			)
		} else {
			e.committed[slot.ID] = itemID
		}

		result.Commits = append(result.Commits, SlotCommit{
			SlotID:       slot.ID,
			ParameterKey: slot.ParameterKey,
			ItemID:       itemID,
			Err:          err,
		})
	}

	slog.Info("Memento selections confirmed",
		"player_id", e.playerID,
		"slots", len(result.Commits),
		"failed", len(result.Failed()),
	)

	return result
}

// Cancel discards the working assignments
func (e *Editor) Cancel() {
	for id, itemID := range e.committed {
		e.scratch[id] = itemID
	}
	e.recompute()
}

// recompute refreshes the cached visible list
func (e *Editor) recompute() {
	visible := make([]*memento.Item, 0, len(e.items))
	for _, item := range e.items {
		if e.passes(item) {
			visible = append(visible, item)
		}
	}
	e.visible = visible
}

func (e *Editor) passes(item *memento.Item) bool {
	if item.Visibility == memento.VisibilityHidden {
		return false
	}
	if e.filters.SearchText != "" && !strings.Contains(item.SearchText(), e.filters.SearchText) {
		return false
	}
	if e.filters.OnlyUnlocked && !item.IsUnlocked() {
		return false
	}
	if e.filters.OnlyFavorites && !e.highlighted[item.ID] {
		return false
	}
	return true
}

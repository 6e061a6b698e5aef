package v1alpha1

import (
	"math"
	"strings"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-memento-editor/internal/services/session"
)

// stringField reads an optional string field. A present field of another
// kind is an InvalidArgument error.
func stringField(req *structpb.Struct, name string) (string, bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", false, nil
	}
	sv, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", false, errors.InvalidArgumentf("%s must be a string", name)
	}
	return sv.StringValue, true, nil
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	value, ok, err := stringField(req, name)
	if err != nil {
		return "", err
	}
	if !ok || value == "" {
		return "", errors.InvalidArgumentf("%s is required", name)
	}
	return value, nil
}

func boolField(req *structpb.Struct, name string) (*bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	bv, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return nil, errors.InvalidArgumentf("%s must be a bool", name)
	}
	return &bv.BoolValue, nil
}

func intField(req *structpb.Struct, name string) (*int, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, nil
	}
	nv, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || nv.NumberValue != math.Trunc(nv.NumberValue) {
		return nil, errors.InvalidArgumentf("%s must be an integer", name)
	}
	if nv.NumberValue >= float64(math.MaxInt) || nv.NumberValue < float64(math.MinInt) {
		return nil, errors.InvalidArgumentf("%s is out of range", name)
	}
	n := int(nv.NumberValue)
	return &n, nil
}

func parseDirection(value string) (editor.Direction, error) {
	switch strings.ToLower(value) {
	case "":
		return 0, nil
	case "next":
		return editor.Next, nil
	case "prev", "previous":
		return editor.Prev, nil
	default:
		return 0, errors.InvalidArgumentf("cycle must be next or prev, got %q", value)
	}
}

// updateInputFromRequest maps an UpdateSession request onto session input
func updateInputFromRequest(req *structpb.Struct) (*session.UpdateInput, error) {
	sessionID, err := requiredString(req, "session_id")
	if err != nil {
		return nil, err
	}
	input := &session.UpdateInput{SessionID: sessionID}

	if v, ok, err := stringField(req, "select_slot_id"); err != nil {
		return nil, err
	} else if ok {
		input.SelectSlotID = &v
	}
	if input.SelectSlotIndex, err = intField(req, "select_slot_index"); err != nil {
		return nil, err
	}

	cycle, _, err := stringField(req, "cycle")
	if err != nil {
		return nil, err
	}
	if input.Cycle, err = parseDirection(cycle); err != nil {
		return nil, err
	}

	if input.ToggleItemID, _, err = stringField(req, "toggle_item_id"); err != nil {
		return nil, err
	}
	if v, ok, err := stringField(req, "search_text"); err != nil {
		return nil, err
	} else if ok {
		input.SearchText = &v
	}
	if input.OnlyUnlocked, err = boolField(req, "only_unlocked"); err != nil {
		return nil, err
	}
	if input.OnlyFavorites, err = boolField(req, "only_favorites"); err != nil {
		return nil, err
	}
	if input.ToggleHighlightID, _, err = stringField(req, "toggle_highlight_id"); err != nil {
		return nil, err
	}

	return input, nil
}

func itemToMap(iv editor.ItemView) map[string]any {
	return map[string]any{
		"id":          iv.Item.ID,
		"name":        iv.Item.DisplayName,
		"description": iv.Item.Description,
		"flavor_text": iv.Item.FlavorText,
		"unlock_hint": iv.Item.UnlockHint,
		"icon":        iv.Item.IconRef,
		"visibility":  iv.Item.Visibility.String(),
		"selected":    iv.Selected,
		"available":   iv.Available,
		"pinned":      iv.Pinned,
	}
}

func snapshotToStruct(snap *session.Snapshot) (*structpb.Struct, error) {
	view := snap.View

	slots := make([]any, 0, len(view.Slots))
	for _, slot := range view.Slots {
		slots = append(slots, map[string]any{
			"id":               slot.ID,
			"parameter_key":    slot.ParameterKey,
			"locked":           slot.IsLocked,
			"active":           slot.IsActive,
			"assigned_item_id": slot.AssignedItemID,
		})
	}

	items := make([]any, 0, len(view.Items))
	for _, iv := range view.Items {
		items = append(items, itemToMap(iv))
	}

	pinned := make([]any, 0, len(view.Pinned))
	for _, iv := range view.Pinned {
		pinned = append(pinned, iv.Item.ID)
	}

	out, err := structpb.NewStruct(map[string]any{
		"session_id":     snap.SessionID,
		"player_id":      snap.PlayerID,
		"leader_name":    snap.LeaderName,
		"active_slot_id": view.ActiveSlotID,
		"suggestion":     snap.Suggestion,
		"expires_at":     snap.ExpiresAt.UTC().Format(time.RFC3339),
		"filters": map[string]any{
			"search_text":    view.Filters.SearchText,
			"only_unlocked":  view.Filters.OnlyUnlocked,
			"only_favorites": view.Filters.OnlyFavorites,
		},
		"slots":  slots,
		"items":  items,
		"pinned": pinned,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session")
	}
	return out, nil
}

func tooltipToStruct(tip *editor.Tooltip) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(map[string]any{
		"title":       tip.Title,
		"description": tip.Description,
		"flavor_text": tip.FlavorText,
		"unlock_hint": tip.UnlockHint,
		"pinned":      tip.Pinned,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode tooltip")
	}
	return out, nil
}

func confirmToStruct(result *editor.ConfirmResult) (*structpb.Struct, error) {
	commits := make([]any, 0, len(result.Commits))
	for _, c := range result.Commits {
		commit := map[string]any{
			"slot_id":       c.SlotID,
			"parameter_key": c.ParameterKey,
			"item_id":       c.ItemID,
		}
		if c.Err != nil {
			commit["error"] = errors.GetMessage(c.Err)
		}
		commits = append(commits, commit)
	}

	out, err := structpb.NewStruct(map[string]any{
		"commits": commits,
		"failed":  len(result.Failed()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode confirm result")
	}
	return out, nil
}

package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-memento-editor/internal/handlers/mementos/v1alpha1"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Apply slot, item, filter and highlight changes to a session",
	Long: `Only the flags you pass are sent. For example:

  memento-editor client update --session-id sess_x --slot major --toggle-item falcon
  memento-editor client update --session-id sess_x --search drag --only-unlocked=false`,
	RunE: runUpdate,
}

func init() {
	f := updateCmd.Flags()
	f.String("slot", "", "Select a slot by id")
	f.Int("slot-index", 0, "Select a slot by position")
	f.String("cycle", "", "Move the active slot: next or prev")
	f.String("toggle-item", "", "Toggle a memento in the active slot")
	f.String("search", "", "Set the search text")
	f.Bool("only-unlocked", false, "Only show unlocked mementos")
	f.Bool("only-favorites", false, "Only show highlighted mementos")
	f.String("toggle-highlight", "", "Toggle a memento's highlight")
}

// updateFields maps changed flags onto request fields
var updateFields = map[string]string{
	"slot":             "select_slot_id",
	"slot-index":       "select_slot_index",
	"cycle":            "cycle",
	"toggle-item":      "toggle_item_id",
	"search":           "search_text",
	"only-unlocked":    "only_unlocked",
	"only-favorites":   "only_favorites",
	"toggle-highlight": "toggle_highlight_id",
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	req := map[string]any{"session_id": sessionID}
	f := cmd.Flags()

	for flag, field := range updateFields {
		if !f.Changed(flag) {
			continue
		}
		var (
			value any
			err   error
		)
		switch flag {
		case "slot-index":
			value, err = f.GetInt(flag)
		case "only-unlocked", "only-favorites":
			value, err = f.GetBool(flag)
		default:
			value, err = f.GetString(flag)
		}
		if err != nil {
			return err
		}
		req[field] = value
	}

	return call(cmd, v1alpha1.MethodUpdateSession, req)
}

package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-memento-editor/internal/handlers/mementos/v1alpha1"
)

var (
	playerID   string
	leaderName string
	sessionID  string
	itemID     string
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open an editor session for a player",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodOpenSession, map[string]any{
			"player_id":   playerID,
			"leader_name": leaderName,
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodGetSession, map[string]any{"session_id": sessionID})
	},
}

var tooltipCmd = &cobra.Command{
	Use:   "tooltip",
	Short: "Show the tooltip of one memento",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodGetTooltip, map[string]any{
			"session_id": sessionID,
			"item_id":    itemID,
		})
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Commit a session's selections and close it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodConfirm, map[string]any{"session_id": sessionID})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard a session's selections and close it",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodCancel, map[string]any{"session_id": sessionID})
	},
}

func init() {
	openCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID (required)")
	openCmd.Flags().StringVar(&leaderName, "leader", "", "Leader name shown in the header")
	_ = openCmd.MarkFlagRequired("player-id") // nolint:errcheck // safe to ignore in init

	for _, c := range []*cobra.Command{getCmd, tooltipCmd, confirmCmd, cancelCmd, updateCmd} {
		c.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
		_ = c.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
	}

	tooltipCmd.Flags().StringVar(&itemID, "item-id", "", "Memento ID (required)")
	_ = tooltipCmd.MarkFlagRequired("item-id") // nolint:errcheck // safe to ignore in init
}

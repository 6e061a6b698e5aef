package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-memento-editor/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
)

var (
	browseCatalog       string
	browseBadgerDir     string
	browsePlayer        string
	browseLocale        string
	browseSearch        string
	browseOnlyUnlocked  bool
	browseOnlyFavorites bool
	browseHighlights    []string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "List a catalog the way the editor shows it",
	Long: `Load a catalog file and print the visible mementos for the given filters.
Highlights are kept in a local badger store so they survive between runs.`,
	RunE: runBrowse,
}

func init() {
	f := browseCmd.Flags()
	f.StringVar(&browseCatalog, "catalog", "catalog.yaml", "Catalog YAML file")
	f.StringVar(&browseBadgerDir, "badger-dir", "", "Badger directory for highlights, empty for in-memory")
	f.StringVar(&browsePlayer, "player", "local", "Player whose highlights are used")
	f.StringVar(&browseLocale, "locale", "en", "Locale used to order memento names")
	f.StringVar(&browseSearch, "search", "", "Search text")
	f.BoolVar(&browseOnlyUnlocked, "only-unlocked", false, "Only show unlocked mementos")
	f.BoolVar(&browseOnlyFavorites, "only-favorites", false, "Only show highlighted mementos")
	f.StringSliceVar(&browseHighlights, "highlight", nil, "Memento ids whose highlight is toggled before listing")
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	catalogClient, err := catalog.NewFileClient(&catalog.FileConfig{Path: browseCatalog})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	items, err := catalogClient.ListItems(ctx)
	if err != nil {
		return err
	}
	slots, err := catalogClient.ListSlots(ctx)
	if err != nil {
		return err
	}

	store, err := highlights.NewBadger(&highlights.BadgerConfig{Dir: browseBadgerDir})
	if err != nil {
		return fmt.Errorf("failed to open highlight store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	locale, err := language.Parse(browseLocale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", browseLocale, err)
	}

	ed, err := editor.New(ctx, &editor.Config{
		PlayerID:      browsePlayer,
		Items:         items,
		Slots:         slots,
		HighlightRepo: store,
		GameSetupRepo: gamesetup.NewInMemory(),
		Locale:        locale,
	})
	if err != nil {
		return err
	}

	for _, id := range browseHighlights {
		ed.ToggleHighlight(ctx, id)
	}
	ed.SetSearchText(browseSearch)
	ed.SetOnlyUnlocked(browseOnlyUnlocked)
	ed.SetOnlyFavorites(browseOnlyFavorites)

	view := ed.View()
	out := cmd.OutOrStdout()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PIN\tID\tNAME\tVISIBILITY")
	for _, iv := range view.Items {
		pin := ""
		if iv.Pinned {
			pin = "*"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pin, iv.Item.ID, iv.Item.DisplayName, iv.Item.Visibility)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(view.Items) == 0 {
		if name, ok := ed.Suggest(); ok {
			_, _ = fmt.Fprintf(out, "No mementos match. Did you mean %q?\n", name)
		} else {
			_, _ = fmt.Fprintln(out, "No mementos match.")
		}
	}

	if len(view.Slots) > 0 {
		_, _ = fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "SLOT\tPARAMETER\tASSIGNED\tLOCKED")
		for _, slot := range view.Slots {
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", slot.ID, slot.ParameterKey, slot.AssignedItemID, slot.IsLocked)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if browseBadgerDir == "" && len(browseHighlights) > 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "note: highlights were not persisted, pass --badger-dir to keep them")
	}
	return nil
}

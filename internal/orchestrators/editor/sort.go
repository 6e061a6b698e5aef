package editor

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// sortItems orders items by visibility priority, then by display name using
// a case-insensitive collator for the given locale. Empty names sort first.
func sortItems(items []*memento.Item, locale language.Tag) {
	collator := collate.New(locale, collate.IgnoreCase)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Visibility != b.Visibility {
			return a.Visibility < b.Visibility
		}
		if a.DisplayName == "" || b.DisplayName == "" {
			return a.DisplayName == "" && b.DisplayName != ""
		}
		return collator.CompareString(a.DisplayName, b.DisplayName) < 0
	})
}

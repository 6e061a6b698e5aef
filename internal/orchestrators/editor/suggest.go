package editor

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
)

// Suggest returns the display name of the closest non-hidden item when the
// current search matches nothing. Names and their individual words are
// compared by edit distance against the search text.
func (e *Editor) Suggest() (string, bool) {
	query := e.filters.SearchText
	if query == "" || len(e.visible) > 0 {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, item := range e.items {
		if item.Visibility == memento.VisibilityHidden || item.DisplayName == "" {
			continue
		}

		name := strings.ToLower(item.DisplayName)
		candidates := append([]string{name}, strings.Fields(name)...)
		for _, cand := range candidates {
			dist := levenshtein.ComputeDistance(query, cand)
			if dist > distanceLimit(len(cand)) {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best = item.DisplayName
				bestDist = dist
			}
		}
	}

	return best, bestDist >= 0
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

package testutils

import (
	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
	"github.com/KirkDiggler/rpg-memento-editor/internal/testutils/builders"
)

// TestPlayerID is the default player for fixtures
const TestPlayerID = "player_test_1"

// CreateTestCatalog returns a small catalog covering every visibility and
// a locked slot
func CreateTestCatalog() ([]*memento.Item, []*memento.Slot) {
	items := []*memento.Item{
		builders.NewItemBuilder("falcon").WithName("Falcon").
			WithDescription("+1 Sight for scouts").Build(),
		builders.NewItemBuilder("dragon_egg").WithName("Dragon Egg").
			WithFlavor("Still warm").Locked().Build(),
		builders.NewItemBuilder("ancient_map").WithName("ancient Map").
			WithUnlockHint("Explore 10 wonders").Build(),
		builders.NewItemBuilder("secret_relic").WithName("Secret Relic").Hidden().Build(),
	}

	slots := []*memento.Slot{
		builders.NewSlotBuilder("major").
			WithEligible("falcon", "dragon_egg", "ancient_map").Build(),
		builders.NewSlotBuilder("minor_1").
			WithEligible("falcon", "ancient_map").WithAssigned("falcon").Build(),
		builders.NewSlotBuilder("minor_2").
			WithEligible("falcon").Locked().Build(),
	}

	return items, slots
}

package editor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	gamesetupmock "github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup/mock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
	highlightsmock "github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights/mock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/testutils"
	"github.com/KirkDiggler/rpg-memento-editor/internal/testutils/builders"
	"github.com/KirkDiggler/rpg-memento-editor/internal/testutils/mocks"
)

type EditorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockHighlight *highlightsmock.MockRepository
	mockSetup     *gamesetupmock.MockRepository
	ctx           context.Context
	items         []*memento.Item
	slots         []*memento.Slot
}

func TestEditorSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

func (s *EditorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockHighlight = highlightsmock.NewMockRepository(s.ctrl)
	s.mockSetup = gamesetupmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.items, s.slots = testutils.CreateTestCatalog()
}

func (s *EditorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *EditorTestSuite) newEditor(stored ...string) *editor.Editor {
	mocks.ExpectHighlightLoad(s.ctx, s.mockHighlight, testutils.TestPlayerID, stored)

	e, err := editor.New(s.ctx, &editor.Config{
		PlayerID:      testutils.TestPlayerID,
		Items:         s.items,
		Slots:         s.slots,
		HighlightRepo: s.mockHighlight,
		GameSetupRepo: s.mockSetup,
	})
	s.Require().NoError(err)
	return e
}

func itemIDs(items []memento.Item) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

func (s *EditorTestSuite) TestNew() {
	s.Run("initial state", func() {
		e := s.newEditor()

		s.Equal("", e.ActiveSlotID())
		s.Equal(memento.FilterState{}, e.Filters())
		s.Empty(e.HighlightedIDs())

		assigned, ok := e.Assignment("minor_1")
		s.True(ok)
		s.Equal("falcon", assigned)

		assigned, _ = e.Assignment("major")
		s.Equal(memento.NoneItemID, assigned)
	})

	s.Run("stale highlights are dropped", func() {
		e := s.newEditor("falcon", "retired_item")

		s.Equal([]string{"falcon"}, e.HighlightedIDs())
		s.False(e.IsHighlighted("retired_item"))
	})

	s.Run("load failure starts empty", func() {
		s.mockHighlight.EXPECT().
			Load(s.ctx, gomock.Any()).
			Return(nil, errors.DataLoss("stored highlights are malformed"))

		e, err := editor.New(s.ctx, &editor.Config{
			PlayerID:      testutils.TestPlayerID,
			Items:         s.items,
			Slots:         s.slots,
			HighlightRepo: s.mockHighlight,
			GameSetupRepo: s.mockSetup,
		})
		s.Require().NoError(err)
		s.Empty(e.HighlightedIDs())
		s.Len(e.VisibleItems(), 3)
	})

	s.Run("invalid reported assignment is cleared", func() {
		s.slots[0].AssignedItemID = "dragon_egg"
		e := s.newEditor()

		assigned, _ := e.Assignment("major")
		s.Equal(memento.NoneItemID, assigned)
	})
}

func (s *EditorTestSuite) TestNew_InvalidConfig() {
	testCases := []struct {
		name string
		cfg  *editor.Config
	}{
		{name: "nil config", cfg: nil},
		{
			name: "missing player",
			cfg: &editor.Config{
				HighlightRepo: s.mockHighlight,
				GameSetupRepo: s.mockSetup,
			},
		},
		{
			name: "missing repositories",
			cfg:  &editor.Config{PlayerID: testutils.TestPlayerID},
		},
		{
			name: "duplicate item ids",
			cfg: &editor.Config{
				PlayerID:      testutils.TestPlayerID,
				HighlightRepo: s.mockHighlight,
				GameSetupRepo: s.mockSetup,
				Items: []*memento.Item{
					builders.NewItemBuilder("a").Build(),
					builders.NewItemBuilder("a").Build(),
				},
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e, err := editor.New(s.ctx, tc.cfg)
			s.Nil(e)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *EditorTestSuite) TestSortOrder() {
	s.items = append(s.items,
		builders.NewItemBuilder("unnamed").WithName("").Build(),
		builders.NewItemBuilder("zither").WithName("Zither").Locked().Build(),
		builders.NewItemBuilder("banner").WithName("banner").Build(),
	)
	e := s.newEditor()

	s.Equal([]string{"unnamed", "ancient_map", "banner", "falcon", "dragon_egg", "zither"}, itemIDs(e.VisibleItems()))
}

func (s *EditorTestSuite) TestSelectSlot() {
	e := s.newEditor()

	s.Run("selects an unlocked slot", func() {
		e.SelectSlot("major")
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("locked slot is ignored", func() {
		e.SelectSlot("minor_2")
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("unknown slot is ignored", func() {
		e.SelectSlot("nope")
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("reselecting is a no-op", func() {
		e.SelectSlot("major")
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("switching deactivates the previous slot", func() {
		e.SelectSlot("minor_1")

		view := e.View()
		s.False(view.Slots[0].IsActive)
		s.True(view.Slots[1].IsActive)
	})
}

func (s *EditorTestSuite) TestCycleSlot() {
	e := s.newEditor()

	s.Run("no active slot is a no-op", func() {
		e.CycleSlot(editor.Next)
		s.Equal("", e.ActiveSlotID())
	})

	s.Run("moves forward and back", func() {
		e.Focus()
		s.Equal("major", e.ActiveSlotID())

		e.CycleSlot(editor.Next)
		s.Equal("minor_1", e.ActiveSlotID())

		e.CycleSlot(editor.Prev)
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("does not wrap at the start", func() {
		e.CycleSlot(editor.Prev)
		s.Equal("major", e.ActiveSlotID())
	})

	s.Run("locked neighbour blocks the move", func() {
		e.SelectSlot("minor_1")
		e.CycleSlot(editor.Next)
		s.Equal("minor_1", e.ActiveSlotID())
	})
}

func (s *EditorTestSuite) TestCycleSlot_LastIndex() {
	s.slots[2].IsLocked = false
	e := s.newEditor()

	e.SelectSlotIndex(2)
	s.Equal("minor_2", e.ActiveSlotID())

	e.CycleSlot(editor.Next)
	s.Equal("minor_2", e.ActiveSlotID())
}

func (s *EditorTestSuite) TestToggleItem() {
	s.Run("no active slot is a no-op", func() {
		e := s.newEditor()
		e.ToggleItem("ancient_map")

		assigned, _ := e.Assignment("major")
		s.Equal(memento.NoneItemID, assigned)
	})

	s.Run("assigns, replaces and clears", func() {
		e := s.newEditor()
		e.SelectSlot("major")

		e.ToggleItem("ancient_map")
		assigned, _ := e.Assignment("major")
		s.Equal("ancient_map", assigned)

		e.ToggleItem("falcon")
		assigned, _ = e.Assignment("major")
		s.Equal("falcon", assigned)

		e.ToggleItem("falcon")
		assigned, _ = e.Assignment("major")
		s.Equal(memento.NoneItemID, assigned)
	})

	s.Run("locked item is rejected", func() {
		e := s.newEditor()
		e.SelectSlot("major")
		e.ToggleItem("ancient_map")

		e.ToggleItem("dragon_egg")
		assigned, _ := e.Assignment("major")
		s.Equal("ancient_map", assigned)
	})

	s.Run("ineligible item is rejected", func() {
		e := s.newEditor()
		e.SelectSlot("minor_1")

		e.ToggleItem("secret_relic")
		assigned, _ := e.Assignment("minor_1")
		s.Equal("falcon", assigned)
	})

	s.Run("item moves from another slot", func() {
		e := s.newEditor()
		e.SelectSlot("major")

		e.ToggleItem("falcon")

		assigned, _ := e.Assignment("major")
		s.Equal("falcon", assigned)
		assigned, _ = e.Assignment("minor_1")
		s.Equal(memento.NoneItemID, assigned)
	})

	s.Run("item held by a locked slot does not move", func() {
		s.slots = []*memento.Slot{
			builders.NewSlotBuilder("locked").WithEligible("falcon").WithAssigned("falcon").Locked().Build(),
			builders.NewSlotBuilder("open").WithEligible("falcon", "ancient_map").Build(),
		}
		defer func() { s.items, s.slots = testutils.CreateTestCatalog() }()

		e := s.newEditor()
		e.SelectSlot("open")

		e.ToggleItem("falcon")

		assigned, _ := e.Assignment("locked")
		s.Equal("falcon", assigned)
		assigned, _ = e.Assignment("open")
		s.Equal(memento.NoneItemID, assigned)

		e.ToggleItem("ancient_map")
		assigned, _ = e.Assignment("open")
		s.Equal("ancient_map", assigned)
	})

	s.Run("locked slot keeps its value through confirm", func() {
		s.slots = []*memento.Slot{
			builders.NewSlotBuilder("locked").WithEligible("falcon").WithAssigned("falcon").Locked().Build(),
			builders.NewSlotBuilder("open").WithEligible("falcon").Build(),
		}
		defer func() { s.items, s.slots = testutils.CreateTestCatalog() }()

		e := s.newEditor()
		e.SelectSlot("open")
		e.ToggleItem("falcon")

		mocks.ExpectSlotCommits(s.ctx, s.mockSetup, testutils.TestPlayerID, [][2]string{
			{"param_locked", "falcon"},
			{"param_open", memento.NoneItemID},
		})
		s.Empty(e.Confirm(s.ctx).Failed())
	})

	s.Run("selection rings follow assignments", func() {
		e := s.newEditor()
		e.SelectSlot("major")
		e.ToggleItem("ancient_map")

		selected := map[string]bool{}
		for _, iv := range e.View().Items {
			selected[iv.Item.ID] = iv.Selected
		}
		s.True(selected["ancient_map"])
		s.True(selected["falcon"])
		s.False(selected["dragon_egg"])
	})
}

func (s *EditorTestSuite) TestToggleItem_SlotWithoutEligibleItems() {
	s.slots = []*memento.Slot{builders.NewSlotBuilder("empty").Build()}
	e := s.newEditor()
	e.Focus()

	for _, item := range s.items {
		e.ToggleItem(item.ID)
		assigned, _ := e.Assignment("empty")
		s.Equal(memento.NoneItemID, assigned)
	}
}

func (s *EditorTestSuite) TestHatScenario() {
	s.items = []*memento.Item{
		builders.NewItemBuilder("A").Build(),
		builders.NewItemBuilder("B").Locked().Build(),
	}
	s.slots = []*memento.Slot{
		builders.NewSlotBuilder("hat").WithEligible("A", "B").Build(),
	}
	e := s.newEditor()

	e.SelectSlot("hat")
	e.ToggleItem("B")
	assigned, _ := e.Assignment("hat")
	s.Equal(memento.NoneItemID, assigned)

	e.ToggleItem("A")
	assigned, _ = e.Assignment("hat")
	s.Equal("A", assigned)

	s.True(e.IsAvailable("A"))
	s.False(e.IsAvailable("B"))
}

func (s *EditorTestSuite) TestIsAvailable() {
	e := s.newEditor()

	s.False(e.IsAvailable("falcon"), "no active slot")

	e.SelectSlot("minor_1")
	s.True(e.IsAvailable("falcon"))
	s.False(e.IsAvailable("dragon_egg"), "not eligible")
	s.False(e.IsAvailable("unknown"))

	e.SelectSlot("major")
	s.False(e.IsAvailable("dragon_egg"), "locked")
}

func (s *EditorTestSuite) TestFilters() {
	s.Run("search matches any text field", func() {
		e := s.newEditor()

		e.SetSearchText("DRAG")
		s.Equal([]string{"dragon_egg"}, itemIDs(e.VisibleItems()))

		e.SetSearchText("wonders")
		s.Equal([]string{"ancient_map"}, itemIDs(e.VisibleItems()))

		e.SetSearchText("still warm")
		s.Equal([]string{"dragon_egg"}, itemIDs(e.VisibleItems()))

		e.SetSearchText("relic")
		s.Empty(e.VisibleItems(), "hidden items never show")
	})

	s.Run("whitespace is not trimmed", func() {
		e := s.newEditor()

		e.SetSearchText(" ")
		s.Equal(" ", e.Filters().SearchText)
		s.Equal([]string{"ancient_map", "falcon", "dragon_egg"}, itemIDs(e.VisibleItems()))

		e.SetSearchText("wonders ")
		s.Empty(e.VisibleItems())
	})

	s.Run("only unlocked", func() {
		e := s.newEditor()

		e.SetOnlyUnlocked(true)
		s.Equal([]string{"ancient_map", "falcon"}, itemIDs(e.VisibleItems()))

		e.SetOnlyUnlocked(false)
		s.Len(e.VisibleItems(), 3)
	})

	s.Run("only favorites", func() {
		e := s.newEditor("dragon_egg")

		e.SetOnlyFavorites(true)
		s.Equal([]string{"dragon_egg"}, itemIDs(e.VisibleItems()))

		e.SetOnlyUnlocked(true)
		s.Empty(e.VisibleItems())
	})

	s.Run("visible items are stable between calls", func() {
		e := s.newEditor()
		e.SetSearchText("a")

		s.Equal(e.VisibleItems(), e.VisibleItems())
	})
}

func (s *EditorTestSuite) TestDragonEggScenario() {
	s.items = []*memento.Item{
		builders.NewItemBuilder("egg").WithName("Dragon Egg").Build(),
		builders.NewItemBuilder("falcon").WithName("Falcon").Build(),
	}
	e := s.newEditor()

	e.SetSearchText("drag")
	visible := e.VisibleItems()
	s.Require().Len(visible, 1)
	s.Equal("Dragon Egg", visible[0].DisplayName)
}

func (s *EditorTestSuite) TestPinnedItems() {
	e := s.newEditor("falcon", "ancient_map", "secret_relic")

	s.Equal([]string{"ancient_map", "falcon"}, itemIDs(e.PinnedItems()))

	e.SetSearchText("falcon")
	s.Equal([]string{"falcon"}, itemIDs(e.PinnedItems()))

	view := e.View()
	s.Require().Len(view.Pinned, 1)
	s.True(view.Pinned[0].Pinned)
}

func (s *EditorTestSuite) TestToggleHighlight() {
	s.Run("saves the whole set in catalog order", func() {
		e := s.newEditor("falcon")

		s.mockHighlight.EXPECT().
			Save(s.ctx, highlights.SaveInput{
				PlayerID: testutils.TestPlayerID,
				ItemIDs:  []string{"falcon", "dragon_egg"},
			}).
			Return(&highlights.SaveOutput{}, nil)

		e.ToggleHighlight(s.ctx, "dragon_egg")
		s.True(e.IsHighlighted("dragon_egg"))
	})

	s.Run("double toggle restores the saved set", func() {
		e := s.newEditor("falcon")

		var saved [][]string
		s.mockHighlight.EXPECT().
			Save(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input highlights.SaveInput) (*highlights.SaveOutput, error) {
				saved = append(saved, input.ItemIDs)
				return &highlights.SaveOutput{}, nil
			}).
			Times(2)

		e.ToggleHighlight(s.ctx, "ancient_map")
		e.ToggleHighlight(s.ctx, "ancient_map")

		s.Equal([]string{"ancient_map", "falcon"}, saved[0])
		s.Equal([]string{"falcon"}, saved[1])
		s.Equal([]string{"falcon"}, e.HighlightedIDs())
	})

	s.Run("save failure keeps the in-memory state", func() {
		e := s.newEditor()

		s.mockHighlight.EXPECT().
			Save(s.ctx, gomock.Any()).
			Return(nil, errors.Internal("redis down"))

		e.ToggleHighlight(s.ctx, "falcon")
		s.True(e.IsHighlighted("falcon"))
	})

	s.Run("unknown item is ignored", func() {
		e := s.newEditor()

		e.ToggleHighlight(s.ctx, "retired_item")
		s.Empty(e.HighlightedIDs())
	})

	s.Run("favorites filter updates immediately", func() {
		e := s.newEditor()
		e.SetOnlyFavorites(true)
		s.Empty(e.VisibleItems())

		s.mockHighlight.EXPECT().Save(s.ctx, gomock.Any()).Return(&highlights.SaveOutput{}, nil)
		e.ToggleHighlight(s.ctx, "falcon")

		s.Equal([]string{"falcon"}, itemIDs(e.VisibleItems()))
	})
}

func (s *EditorTestSuite) TestConfirm() {
	s.Run("commits every slot", func() {
		e := s.newEditor()
		e.SelectSlot("major")
		e.ToggleItem("ancient_map")

		mocks.ExpectSlotCommits(s.ctx, s.mockSetup, testutils.TestPlayerID, [][2]string{
			{"param_major", "ancient_map"},
			{"param_minor_1", "falcon"},
			{"param_minor_2", memento.NoneItemID},
		})

		result := e.Confirm(s.ctx)
		s.Len(result.Commits, 3)
		s.Empty(result.Failed())
	})

	s.Run("one failure does not block the rest", func() {
		e := s.newEditor()

		gomock.InOrder(
			s.mockSetup.EXPECT().
				SetParameter(s.ctx, gomock.Any()).
				Return(nil, errors.Internal("redis down")),
			s.mockSetup.EXPECT().
				SetParameter(s.ctx, gomock.Any()).
				Return(&gamesetup.SetParameterOutput{}, nil).
				Times(2),
		)

		result := e.Confirm(s.ctx)
		s.Len(result.Commits, 3)
		failed := result.Failed()
		s.Require().Len(failed, 1)
		s.Equal("major", failed[0].SlotID)
	})
}

func (s *EditorTestSuite) TestCancel() {
	e := s.newEditor()
	e.SelectSlot("major")
	e.ToggleItem("falcon")

	e.Cancel()

	assigned, _ := e.Assignment("major")
	s.Equal(memento.NoneItemID, assigned)
	assigned, _ = e.Assignment("minor_1")
	s.Equal("falcon", assigned)
}

func (s *EditorTestSuite) TestCancel_AfterConfirm() {
	e := s.newEditor()
	e.SelectSlot("major")
	e.ToggleItem("ancient_map")

	s.mockSetup.EXPECT().
		SetParameter(s.ctx, gomock.Any()).
		Return(&gamesetup.SetParameterOutput{}, nil).
		Times(3)
	e.Confirm(s.ctx)

	e.ToggleItem("ancient_map")
	e.Cancel()

	assigned, _ := e.Assignment("major")
	s.Equal("ancient_map", assigned)
}

func (s *EditorTestSuite) TestTooltip() {
	e := s.newEditor("dragon_egg")

	tip, ok := e.Tooltip("dragon_egg")
	s.Require().True(ok)
	s.Equal("Dragon Egg", tip.Title)
	s.Equal("Still warm", tip.FlavorText)
	s.True(tip.Pinned)

	_, ok = e.Tooltip("nope")
	s.False(ok)
}

func (s *EditorTestSuite) TestSuggest() {
	e := s.newEditor()

	_, ok := e.Suggest()
	s.False(ok, "empty search")

	e.SetSearchText("falcn")
	name, ok := e.Suggest()
	s.True(ok)
	s.Equal("Falcon", name)

	e.SetSearchText("ancent map")
	name, ok = e.Suggest()
	s.True(ok)
	s.Equal("ancient Map", name)

	e.SetSearchText("falcon")
	_, ok = e.Suggest()
	s.False(ok, "search already matches")

	e.SetSearchText("zzzzzzzz")
	_, ok = e.Suggest()
	s.False(ok)
}

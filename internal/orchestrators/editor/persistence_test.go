package editor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
	"github.com/KirkDiggler/rpg-memento-editor/internal/testutils"
)

func newRedisEditor(t *testing.T, repo highlights.Repository) *editor.Editor {
	t.Helper()

	items, slots := testutils.CreateTestCatalog()
	e, err := editor.New(context.Background(), &editor.Config{
		PlayerID:      testutils.TestPlayerID,
		Items:         items,
		Slots:         slots,
		HighlightRepo: repo,
		GameSetupRepo: gamesetup.NewInMemory(),
	})
	require.NoError(t, err)
	return e
}

func TestHighlightsSurviveANewEditor(t *testing.T) {
	ctx := context.Background()
	client, _ := testutils.CreateTestRedisClient(t)
	repo, err := highlights.NewRedis(&highlights.RedisConfig{Client: client})
	require.NoError(t, err)

	first := newRedisEditor(t, repo)
	first.ToggleHighlight(ctx, "ancient_map")

	second := newRedisEditor(t, repo)
	assert.True(t, second.IsHighlighted("ancient_map"))
	assert.Equal(t, []string{"ancient_map"}, second.HighlightedIDs())
}

func TestHighlightDoubleToggleIsByteIdentical(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := highlights.NewRedis(&highlights.RedisConfig{Client: client})
	require.NoError(t, err)

	e := newRedisEditor(t, repo)
	e.ToggleHighlight(ctx, "falcon")

	key := highlights.StorageKey + ":" + testutils.TestPlayerID
	before, err := mr.Get(key)
	require.NoError(t, err)

	e.ToggleHighlight(ctx, "dragon_egg")
	e.ToggleHighlight(ctx, "dragon_egg")

	after, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestMalformedHighlightsLoadEmpty(t *testing.T) {
	client, mr := testutils.CreateTestRedisClient(t)
	repo, err := highlights.NewRedis(&highlights.RedisConfig{Client: client})
	require.NoError(t, err)

	require.NoError(t, mr.Set(highlights.StorageKey+":"+testutils.TestPlayerID, "{not json"))

	e := newRedisEditor(t, repo)
	assert.Empty(t, e.HighlightedIDs())
	assert.Len(t, e.VisibleItems(), 3)
}

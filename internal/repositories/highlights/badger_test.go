package highlights_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
)

func TestBadgerRepository(t *testing.T) {
	ctx := context.Background()

	repo, err := highlights.NewBadger(&highlights.BadgerConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	t.Run("missing key loads empty", func(t *testing.T) {
		out, err := repo.Load(ctx, highlights.LoadInput{PlayerID: "player_1"})
		require.NoError(t, err)
		assert.Empty(t, out.ItemIDs)
	})

	t.Run("save then load", func(t *testing.T) {
		_, err := repo.Save(ctx, highlights.SaveInput{PlayerID: "player_1", ItemIDs: []string{"crown", "banner"}})
		require.NoError(t, err)

		out, err := repo.Load(ctx, highlights.LoadInput{PlayerID: "player_1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"crown", "banner"}, out.ItemIDs)
	})

	t.Run("empty player id", func(t *testing.T) {
		_, err := repo.Save(ctx, highlights.SaveInput{ItemIDs: []string{"crown"}})
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestBadgerRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := highlights.NewBadger(&highlights.BadgerConfig{Dir: dir})
	require.NoError(t, err)
	_, err = first.Save(ctx, highlights.SaveInput{PlayerID: "player_1", ItemIDs: []string{"crown"}})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := highlights.NewBadger(&highlights.BadgerConfig{Dir: dir})
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	out, err := second.Load(ctx, highlights.LoadInput{PlayerID: "player_1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"crown"}, out.ItemIDs)
}

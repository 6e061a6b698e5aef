package gamesetup_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/errors"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := gamesetup.NewInMemory()

	out, err := repo.GetParameters(ctx, gamesetup.GetParametersInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Empty(t, out.Values)

	_, err = repo.SetParameter(ctx, gamesetup.SetParameterInput{PlayerID: "p1", Key: "param_major", Value: "falcon"})
	require.NoError(t, err)
	_, err = repo.SetParameter(ctx, gamesetup.SetParameterInput{PlayerID: "p1", Key: "param_major", Value: "NONE"})
	require.NoError(t, err)

	out, err = repo.GetParameters(ctx, gamesetup.GetParametersInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"param_major": "NONE"}, out.Values)

	out.Values["param_major"] = "mutated"
	again, err := repo.GetParameters(ctx, gamesetup.GetParametersInput{PlayerID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "NONE", again.Values["param_major"])

	_, err = repo.SetParameter(ctx, gamesetup.SetParameterInput{PlayerID: "p1"})
	assert.True(t, errors.IsInvalidArgument(err))
	_, err = repo.GetParameters(ctx, gamesetup.GetParametersInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}

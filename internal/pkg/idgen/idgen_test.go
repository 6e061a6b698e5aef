package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-memento-editor/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	t.Run("bare uuid", func(t *testing.T) {
		id := idgen.NewUUID("").Generate()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("prefixed", func(t *testing.T) {
		gen := idgen.NewUUID("sess")
		id := gen.Generate()
		require.True(t, strings.HasPrefix(id, "sess_"))

		_, err := uuid.Parse(strings.TrimPrefix(id, "sess_"))
		require.NoError(t, err)
		assert.NotEqual(t, id, gen.Generate())
	})
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("sess")
	assert.Equal(t, "sess_1", gen.Generate())
	assert.Equal(t, "sess_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

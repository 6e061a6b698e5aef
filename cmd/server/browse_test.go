package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = "../../internal/clients/catalog/testdata/catalog.yaml"

func runRoot(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestBrowse(t *testing.T) {
	dir := t.TempDir()

	t.Run("lists visible mementos and toggles a highlight", func(t *testing.T) {
		out := runRoot(t, "browse", "--catalog", testCatalog, "--badger-dir", dir, "--highlight", "falcon")

		assert.Contains(t, out, "ancient_map")
		assert.Contains(t, out, "dragon_egg")
		assert.NotContains(t, out, "secret_relic")
		assert.Regexp(t, `\*\s+falcon`, out)
		assert.Less(t, strings.Index(out, "ancient_map"), strings.Index(out, "dragon_egg"))
	})

	t.Run("highlights persist between runs", func(t *testing.T) {
		out := runRoot(t, "browse", "--catalog", testCatalog, "--badger-dir", dir, "--only-favorites")

		assert.Contains(t, out, "falcon")
		assert.NotContains(t, out, "ancient_map")
	})

	t.Run("suggests a near miss", func(t *testing.T) {
		out := runRoot(t, "browse", "--catalog", testCatalog, "--badger-dir", dir,
			"--only-favorites=false", "--search", "falcn")

		assert.Contains(t, out, `Did you mean "Falcon"?`)
	})
}

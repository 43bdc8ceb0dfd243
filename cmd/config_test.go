package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	env := newBareEnv(t)

	t.Run("defaults", func(t *testing.T) {
		out := env.run("config")
		env.contains(out, "search.case_sensitive: true")
		env.contains(out, "output.render: true")
		env.equals(env.run("config", "limits.max_corpus_size"), "104857600")
	})

	t.Run("set global", func(t *testing.T) {
		out := env.run("config", "author.name", "Ada")
		env.equals(out, "author.name = Ada (global)")
		env.equals(env.run("config", "author.name"), "Ada")
		assert.FileExists(t, filepath.Join(env.home, ".booksearch", "config.yaml"))
	})

	t.Run("set local", func(t *testing.T) {
		env.run("init")
		out := env.run("config", "output.render", "false", "--local")
		env.equals(out, "output.render = false (local)")
		assert.FileExists(t, filepath.Join(env.dir, ".booksearch", "config.yaml"))
	})

	t.Run("json", func(t *testing.T) {
		var got map[string]string
		require.NoError(t, env.runJSON(&got, "config"))
		assert.Equal(t, "false", got["output.render"])
	})

	t.Run("unknown key", func(t *testing.T) {
		out, err := env.runErr("config", "nope")
		assert.Error(t, err)
		env.contains(out, "nope")
	})

	t.Run("invalid value", func(t *testing.T) {
		out, err := env.runErr("config", "search.case_sensitive", "maybe")
		assert.Error(t, err)
		env.contains(out, "true or false")
	})
}

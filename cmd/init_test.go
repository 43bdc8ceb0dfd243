package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	env := newBareEnv(t)

	out := env.run("init")
	env.contains(out, "Initialised booksearch library")
	assert.FileExists(t, filepath.Join(env.dir, ".booksearch", "booksearch.db"))
	assert.FileExists(t, filepath.Join(env.dir, ".booksearch", ".gitignore"))
	// init does not create config.
	assert.NoFileExists(t, filepath.Join(env.dir, ".booksearch", "config.yaml"))
}

func TestInit_AlreadyInitialised(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("init")
	assert.Error(t, err)
	env.contains(out, "already exists")
}

func TestInit_Force(t *testing.T) {
	env := newTestEnv(t)
	env.run("import", env.fixture())

	env.run("init", "--force")
	env.equals(env.run("ls"), "")
}

func TestInit_NamedDB(t *testing.T) {
	env := newTestEnv(t)

	env.run("init", "--db", "classics")
	assert.FileExists(t, filepath.Join(env.dir, ".booksearch", "booksearch-classics.db"))

	env.run("import", env.fixture(), "--db", "classics")
	env.equals(env.run("ls"), "")
	env.contains(env.run("ls", "--db", "classics"), "9780000528531")

	out := env.run("db")
	env.contains(out, "booksearch.db  (default)")
	env.contains(out, "booksearch-classics.db  classics")
}

func TestInit_Dir(t *testing.T) {
	env := newBareEnv(t)
	other := t.TempDir()

	var got map[string]string
	require.NoError(t, env.runJSON(&got, "init", "--dir", other))
	assert.Equal(t, filepath.Join(other, ".booksearch", "booksearch.db"), got["path"])

	env.run("import", env.fixture(), "--dir", other)
	env.contains(env.run("ls", "--dir", other), "9780000528531")
}

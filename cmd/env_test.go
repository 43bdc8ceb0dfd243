// The cmd/ package holds CLI integration tests that exercise the full stack:
// command parsing -> library service -> store -> SQLite. Each test runs the
// real binary in its own directory with its own HOME, so neither the global
// config nor the audit log leak between tests.

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the booksearch binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "booksearch-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "booksearch"
		if os.PathSeparator == '\\' {
			binaryName = "booksearch.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/.
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newBareEnv creates a temporary directory without a library.
func newBareEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, dir: t.TempDir(), home: t.TempDir(), binary: buildBinary(t)}
}

// newTestEnv creates a temporary directory with an initialised library.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newBareEnv(t)
	env.run("init")
	return env
}

// command prepares booksearch with the env's directory and HOME.
func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"BOOKSEARCH_DB=",
		"BOOKSEARCH_DIR=",
	)
	return cmd
}

// run executes booksearch with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("booksearch %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes booksearch and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// stdout executes booksearch and returns stdout only, so JSON output can be
// decoded without progress or warnings mixed in.
func (e *testEnv) stdout(args ...string) (string, error) {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := e.command(args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), err
}

// runJSON executes booksearch with -o json and decodes stdout into v.
// Returns the command error, which is non-nil for a failing command even
// though its error envelope was decoded.
func (e *testEnv) runJSON(v any, args ...string) error {
	e.t.Helper()
	out, err := e.stdout(append(args, "-o", "json")...)
	require.NoError(e.t, json.Unmarshal([]byte(out), v), "stdout: %s", out)
	return err
}

// write creates a file relative to the env's directory.
func (e *testEnv) write(name, content string) string {
	e.t.Helper()
	p := filepath.Join(e.dir, name)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
	return p
}

// fixture writes the Twenty Thousand Leagues corpus and returns its name.
func (e *testEnv) fixture() string {
	e.t.Helper()
	e.write("leagues.json", booktest.FixtureJSON)
	return "leagues.json"
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}

// secondBookJSON is a second book for multi-book library tests.
const secondBookJSON = `[
  {
    "Title": "The Mysterious Island",
    "ISBN": "9780000000002",
    "Content": [
      {"Page": 4, "Line": 1, "Text": "Are we rising again?"},
      {"Page": 4, "Line": 2, "Text": "No. On the contrary, and quickly."}
    ]
  }
]
`

package cmd

import (
	"strings"
	"testing"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Files(t *testing.T) {
	env := newBareEnv(t)
	f := env.fixture()

	t.Run("matches with text", func(t *testing.T) {
		out := env.run("search", "and", f)
		env.equals(out, `9780000528531:31:9: ness was then profound; and however good the Canadian's
9780000528531:31:10: eyes were, I asked myself how he had managed to see, and`)
	})

	t.Run("locations", func(t *testing.T) {
		out := env.run("search", "and", f, "-l")
		env.equals(out, "9780000528531:31:9\n9780000528531:31:10")
	})

	t.Run("count", func(t *testing.T) {
		out := env.run("search", "and", f, "-c")
		env.equals(out, "2")
	})

	t.Run("no match prints nothing", func(t *testing.T) {
		out := env.run("search", "eggplant", f)
		env.equals(out, "")
	})
}

func TestSearch_Stdin(t *testing.T) {
	env := newBareEnv(t)

	c := env.command("search", "and", "-", "-l")
	c.Stdin = strings.NewReader(booktest.FixtureJSON)
	out, err := c.CombinedOutput()
	require.NoError(t, err, string(out))
	env.equals(string(out), "9780000528531:31:9\n9780000528531:31:10")

	c = env.command("search", "and", "-", "-c", "--format", "yaml")
	c.Stdin = strings.NewReader("- ISBN: '2'\n  Content:\n    - {Page: 1, Line: 1, Text: and}\n")
	out, err = c.CombinedOutput()
	require.NoError(t, err, string(out))
	env.equals(string(out), "1")

	c = env.command("search", "and", "-", "--format", "xml")
	c.Stdin = strings.NewReader(booktest.FixtureJSON)
	_, err = c.CombinedOutput()
	assert.Error(t, err)
}

func TestSearch_JSON(t *testing.T) {
	env := newBareEnv(t)
	f := env.fixture()

	tests := []struct {
		name string
		args []string
		want *book.SearchResponse
	}{
		{"two hits", []string{"search", "and", f}, booktest.Results("and", 9, 10)},
		{"no hits", []string{"search", "eggplant", f}, booktest.NoResults("eggplant")},
		{"case sensitive", []string{"search", "The", f}, booktest.Results("The", 8)},
		{"ignore case", []string{"search", "THE", f, "-i"}, booktest.Results("THE", 8, 9)},
		{"substring", []string{"search", "how", f}, booktest.Results("how", 9, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got book.SearchResponse
			require.NoError(t, env.runJSON(&got, tt.args...))
			assert.Equal(t, tt.want, &got)
		})
	}
}

func TestSearch_EmptyResultsIsArray(t *testing.T) {
	env := newBareEnv(t)
	out, err := env.stdout("search", "eggplant", env.fixture(), "-o", "json")
	require.NoError(t, err)
	env.equals(out, `{"SearchTerm":"eggplant","Results":[]}`)
}

func TestSearch_Errors(t *testing.T) {
	env := newBareEnv(t)
	f := env.fixture()
	env.write("shape.json", `{"Title": "not a list"}`)
	env.write("nocontent.json", `[{"Title": "x", "ISBN": "1"}]`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"empty term", []string{"search", "", f}, "bad search term"},
		{"corpus not a list", []string{"search", "and", "shape.json"}, "bad text object"},
		{"book without content", []string{"search", "and", "nocontent.json"}, "bad text object"},
		{"bad term wins", []string{"search", "", "shape.json"}, "bad search term"},
		{"isbn with files", []string{"search", "and", f, "--isbn", booktest.ISBN}, "library searches"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got map[string]string
			err := env.runJSON(&got, tt.args...)
			assert.Error(t, err)
			assert.Contains(t, got["error"], tt.want)
		})
	}

	t.Run("plain output fails too", func(t *testing.T) {
		out, err := env.runErr("search", "", f)
		assert.Error(t, err)
		env.contains(out, "bad search term")
	})
}

func TestSearch_Directory(t *testing.T) {
	env := newBareEnv(t)
	env.write("books/a.json", booktest.FixtureJSON)
	env.write("books/b.json", secondBookJSON)
	env.write("books/notes.txt", "ignored")

	var got book.SearchResponse
	require.NoError(t, env.runJSON(&got, "search", "and", "books"))
	require.Len(t, got.Results, 3)
	assert.Equal(t, booktest.ISBN, got.Results[0].ISBN)
	assert.Equal(t, "9780000000002", got.Results[2].ISBN)
}

func TestSearch_Library(t *testing.T) {
	env := newTestEnv(t)
	env.run("import", env.fixture())
	env.write("second.json", secondBookJSON)
	env.run("import", "second.json")

	t.Run("whole library", func(t *testing.T) {
		var got book.SearchResponse
		require.NoError(t, env.runJSON(&got, "search", "and"))
		assert.Len(t, got.Results, 3)
	})

	t.Run("limited by isbn", func(t *testing.T) {
		var got book.SearchResponse
		require.NoError(t, env.runJSON(&got, "search", "and", "--isbn", booktest.ISBN))
		assert.Equal(t, booktest.Results("and", 9, 10), &got)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		out, err := env.runErr("search", "and", "--isbn", "missing")
		assert.Error(t, err)
		env.contains(out, "book not found")
	})

	t.Run("configured case insensitivity", func(t *testing.T) {
		env.run("config", "search.case_sensitive", "false")
		t.Cleanup(func() { env.run("config", "search.case_sensitive", "true") })

		var got book.SearchResponse
		require.NoError(t, env.runJSON(&got, "search", "THE", "--isbn", booktest.ISBN))
		assert.Equal(t, booktest.Results("THE", 8, 9), &got)
	})
}

func TestSearch_NoLibrary(t *testing.T) {
	env := newBareEnv(t)

	out, err := env.runErr("search", "and")
	assert.Error(t, err)
	env.contains(out, "not initialised")
}

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

// noLibrary returns handlers without a library and an isolated home.
func noLibrary(t *testing.T) *handlers {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	return &handlers{}
}

// withLibrary returns handlers over a library holding the fixture book.
func withLibrary(t *testing.T) *handlers {
	t.Helper()
	h := noLibrary(t)
	require.NoError(t, library.Init(false, "", ""))
	svc, err := library.New("")
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	_, err = svc.Import(context.Background(), booktest.TwentyLeagues())
	require.NoError(t, err)
	h.svc = svc
	return h
}

func decodeResponse(t *testing.T, res *mcp.CallToolResult) *book.SearchResponse {
	t.Helper()
	require.False(t, res.IsError, text(t, res))
	var resp book.SearchResponse
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &resp))
	return &resp
}

func TestSearch_InlineCorpus(t *testing.T) {
	h := noLibrary(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want *book.SearchResponse
	}{
		{"string corpus", map[string]any{"term": "and", "corpus": booktest.FixtureJSON}, booktest.Results("and", 9, 10)},
		{"eggplant", map[string]any{"term": "eggplant", "corpus": booktest.FixtureJSON}, booktest.NoResults("eggplant")},
		{"case sensitive", map[string]any{"term": "The", "corpus": booktest.FixtureJSON}, booktest.Results("The", 8)},
		{"ignore case", map[string]any{"term": "THE", "corpus": booktest.FixtureJSON, "ignore_case": true}, booktest.Results("THE", 8, 9)},
		{"empty corpus", map[string]any{"term": "the", "corpus": "[]"}, booktest.NoResults("the")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.search(ctx, request(tt.args))
			require.NoError(t, err)
			assert.Equal(t, tt.want, decodeResponse(t, res))
		})
	}
}

func TestSearch_InlineArrayCorpus(t *testing.T) {
	h := noLibrary(t)

	var raw []any
	require.NoError(t, json.Unmarshal([]byte(booktest.FixtureJSON), &raw))

	res, err := h.search(context.Background(), request(map[string]any{"term": "the", "corpus": raw}))
	require.NoError(t, err)
	assert.Equal(t, booktest.Results("the", 9), decodeResponse(t, res))
}

func TestSearch_Errors(t *testing.T) {
	h := noLibrary(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"missing term", map[string]any{"corpus": booktest.FixtureJSON}, "bad search term"},
		{"empty term", map[string]any{"term": "", "corpus": booktest.FixtureJSON}, "bad search term"},
		{"null term", map[string]any{"term": nil, "corpus": booktest.FixtureJSON}, "bad search term"},
		{"empty term and bad corpus", map[string]any{"term": "", "corpus": "null"}, "bad search term"},
		{"null corpus", map[string]any{"term": "the", "corpus": nil}, "bad text object"},
		{"object corpus", map[string]any{"term": "the", "corpus": `{"Content": []}`}, "bad text object"},
		{"book without content", map[string]any{"term": "the", "corpus": `[{"ISBN": "x"}]`}, "bad text object"},
		{"no library", map[string]any{"term": "the"}, ErrNotInitialised},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := h.search(ctx, request(tt.args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, text(t, res), tt.want)
		})
	}
}

func TestSearch_Library(t *testing.T) {
	h := withLibrary(t)
	ctx := context.Background()

	res, err := h.search(ctx, request(map[string]any{"term": "and"}))
	require.NoError(t, err)
	assert.Equal(t, booktest.Results("and", 9, 10), decodeResponse(t, res))

	res, err = h.search(ctx, request(map[string]any{"term": "and", "isbns": []any{"missing"}}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "book not found")
}

func TestLibraryTools_Uninitialised(t *testing.T) {
	h := noLibrary(t)
	ctx := context.Background()

	for name, call := range map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"list":   h.listBooks,
		"read":   h.readBook,
		"import": h.importBooks,
		"remove": h.removeBook,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := call(ctx, request(map[string]any{"isbn": "x", "corpus": "[]"}))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Equal(t, ErrNotInitialised, text(t, res))
		})
	}
}

func TestLibraryTools(t *testing.T) {
	h := withLibrary(t)
	ctx := context.Background()

	res, err := h.listBooks(ctx, request(nil))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), `"isbn": "9780000528531"`)

	res, err = h.readBook(ctx, request(map[string]any{"isbn": booktest.ISBN}))
	require.NoError(t, err)
	var b book.Book
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &b))
	assert.Equal(t, booktest.TwentyLeagues()[0], b)

	res, err = h.importBooks(ctx, request(map[string]any{
		"corpus": `[{"ISBN": "2", "Content": [{"Page": 1, "Line": 1, "Text": "and"}]}]`,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), `"created": 1`)

	res, err = h.importBooks(ctx, request(map[string]any{"corpus": `[{"ISBN": "3"}]`}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "bad text object")

	res, err = h.search(ctx, request(map[string]any{"term": "and"}))
	require.NoError(t, err)
	assert.Len(t, decodeResponse(t, res).Results, 3)

	res, err = h.removeBook(ctx, request(map[string]any{"isbn": "2"}))
	require.NoError(t, err)
	assert.Equal(t, "removed 2", text(t, res))

	res, err = h.removeBook(ctx, request(map[string]any{"isbn": "2"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestInitLibrary(t *testing.T) {
	h := noLibrary(t)
	ctx := context.Background()

	res, err := h.initLibrary(ctx, request(nil))
	require.NoError(t, err)
	assert.Equal(t, "library initialised", text(t, res))
	t.Cleanup(func() { h.svc.Close() })

	res, err = h.listBooks(ctx, request(nil))
	require.NoError(t, err)
	assert.False(t, res.IsError)

	res, err = h.initLibrary(ctx, request(nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestGetGuide(t *testing.T) {
	h := noLibrary(t)

	res, err := h.getGuide(context.Background(), request(map[string]any{"topic": "search"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "# Searching")

	res, err = h.getGuide(context.Background(), request(map[string]any{"topic": "nope"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), "available_topics")
}

func TestConfigTools(t *testing.T) {
	h := withLibrary(t)
	ctx := context.Background()

	res, err := h.configSet(ctx, request(map[string]any{"key": "search.case_sensitive", "value": "false"}))
	require.NoError(t, err)
	require.False(t, res.IsError, text(t, res))
	assert.False(t, h.svc.CaseSensitive())

	res, err = h.configGet(ctx, request(map[string]any{"key": "search.case_sensitive"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, res), `"false"`)

	// The new default applies when ignore_case is omitted.
	res, err = h.search(ctx, request(map[string]any{"term": "THE"}))
	require.NoError(t, err)
	assert.Equal(t, booktest.Results("THE", 8, 9), decodeResponse(t, res))

	res, err = h.configSet(ctx, request(map[string]any{"key": "nope", "value": "x"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestParseBookURI(t *testing.T) {
	isbn, err := parseBookURI("booksearch://books/9780000528531")
	require.NoError(t, err)
	assert.Equal(t, "9780000528531", isbn)

	_, err = parseBookURI("booksearch://books/")
	assert.ErrorIs(t, err, ErrEmptyISBN)

	_, err = parseBookURI("other://x")
	assert.ErrorIs(t, err, ErrInvalidURI)
}

func TestReadBookResource(t *testing.T) {
	h := withLibrary(t)

	var req mcp.ReadResourceRequest
	req.Params.URI = "booksearch://books/" + booktest.ISBN
	contents, err := h.readBookResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, tc.Text, booktest.Title)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, newServer(noLibrary(t)))
}

func TestExtensionHandler(t *testing.T) {
	ctx := context.Background()
	count := func(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		st, err := extCtx.Service().Stats(ctx)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(fmt.Sprint(st.Books)), nil
	}

	t.Run("no library", func(t *testing.T) {
		h := noLibrary(t)
		res, err := h.extensionHandler(count)(ctx, request(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Equal(t, ErrNotInitialised, text(t, res))
	})

	t.Run("with library", func(t *testing.T) {
		h := withLibrary(t)
		res, err := h.extensionHandler(count)(ctx, request(nil))
		require.NoError(t, err)
		assert.Equal(t, "1", text(t, res))
	})
}

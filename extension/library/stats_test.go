package library

import (
	"context"
	"testing"

	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/book/booktest"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsTool(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, library.Init(false, "", ""))
	svc, err := library.New("")
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })

	ctx := context.Background()
	_, err = svc.Import(ctx, booktest.TwentyLeagues())
	require.NoError(t, err)

	tool := statsTool()
	assert.Equal(t, "booksearch_stats", tool.Tool.Name)

	res, err := tool.Handler(ctx, extension.NewContext(svc, nil), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.False(t, res.IsError)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.JSONEq(t, `{"books": 1, "lines": 3}`, tc.Text)
}

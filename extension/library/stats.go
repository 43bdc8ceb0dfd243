// stats.go implements the booksearch_stats MCP tool.

package library

import (
	"context"
	"encoding/json"

	"github.com/jpl-au/booksearch/extension"
	"github.com/mark3labs/mcp-go/mcp"
)

func statsTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool("booksearch_stats",
			mcp.WithDescription("Count the books and lines in the library"),
		),
		Handler: stats,
	}
}

func stats(ctx context.Context, extCtx extension.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	st, err := extCtx.Service().Stats(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.Marshal(st)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// mcp.go defines types for MCP tool registration by extensions.
//
// Not every extension has MCP tools; those that do pair each definition with
// a handler. The server passes the handler both the request context (for
// cancellation) and the extension Context (for library access).

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

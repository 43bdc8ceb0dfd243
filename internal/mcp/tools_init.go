// tools_init.go implements booksearch_init, the one library tool that works
// before a library exists.

package mcp

import (
	"context"
	"log/slog"

	"github.com/jpl-au/booksearch/internal/library"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// initLibrary handles booksearch_init tool calls.
func (h *handlers) initLibrary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx, req unused
	if h.svc != nil {
		return mcp.NewToolResultError("library already initialised"), nil
	}

	err := library.Init(false, h.db, "")

	log.Event("mcp:init", "init").Author("mcp").Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	svc, err := library.New(h.db)
	if err != nil {
		return mcp.NewToolResultError("init succeeded but failed to open library: " + err.Error()), nil
	}
	h.svc = svc

	slog.Info("library initialised", "path", svc.DBPath())
	return mcp.NewToolResultText("library initialised"), nil
}

// serve.go implements the "booksearch serve" command.
//
// Serve blocks handling MCP requests over stdio. It is a storeless command
// and opens the library itself so it can start before "booksearch init".

package core

import (
	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --db to serve a specific library:
  booksearch serve --db classics    # serve booksearch-classics.db`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return mcp.Serve(cmd.DB())
		},
	}
}

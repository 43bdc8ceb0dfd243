// Package core provides the core extension for booksearch.
// It registers commands: init, config, serve, guide, db, version.
package core

import (
	"github.com/jpl-au/booksearch/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Storeless = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the library management commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newInitCmd(),
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newDBCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the MCP server provides its own init, config and
// guide tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoStoreCommands returns commands that manage their own service lifecycle.
// serve: long-running MCP server opens the library itself.
// db: lists database files without opening them.
// version: displays build info.
func (e *Extension) NoStoreCommands() []string {
	return []string{"serve", "db", "version"}
}

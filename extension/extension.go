// Package extension provides the plugin architecture for booksearch.
// Extensions group related commands and MCP tools and register at init
// time, so features are added without touching the root command.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for booksearch extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context once the library is
// open.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Storeless is an optional interface for extensions with commands that
// don't require a library. Commands returned by NoStoreCommands() will
// not trigger library opening in PersistentPreRunE.
//
// Use cases:
// 1. Bootstrap commands (like init) that run before a library exists
// 2. Commands that manage their own service lifecycle (serve)
// 3. Commands that only sometimes need the library (search over files)
type Storeless interface {
	NoStoreCommands() []string
}

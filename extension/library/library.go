// Package library provides the library extension: the commands that move
// books into and out of the library and inspect what it holds.
// Registers commands: import, ls, cat, rm, export.
package library

import (
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the library extension.
type Extension struct {
	svc service.Service
}

var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "library".
func (e *Extension) Name() string { return "library" }

// Init connects to the shared library.
func (e *Extension) Init(ctx extension.Context) error {
	e.svc = ctx.Service()
	return nil
}

// Commands returns the library management commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newImportCmd(),
		e.newLsCmd(),
		e.newCatCmd(),
		e.newRmCmd(),
		e.newExportCmd(),
	}
}

// MCPTools returns the library statistics tool. The other library tools are
// provided by the internal/mcp package.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{statsTool()}
}

// Package search provides the search command: every line containing a term,
// across corpus files or the library.
package search

import (
	"github.com/jpl-au/booksearch/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct{}

var (
	_ extension.Extension = (*Extension)(nil)
	_ extension.Storeless = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Commands returns the search command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newSearchCmd()}
}

// MCPTools returns nil - booksearch_search is in internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoStoreCommands returns search: with corpus files it runs without a
// library, and it opens the library itself otherwise.
func (e *Extension) NoStoreCommands() []string {
	return []string{"search"}
}

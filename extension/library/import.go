// import.go implements the "booksearch import" command.

package library

import (
	"fmt"
	"io"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/importer"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newImportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "import <file|dir>...",
		Short: "Import corpus files into the library",
		Long: `Import books from JSON or YAML corpus files. Directories contribute every
.json, .yaml and .yml file they contain.

A book whose ISBN is already in the library is replaced. Every file is
parsed and validated first, so a malformed file leaves the library untouched.

  booksearch import books.json
  booksearch import scans/ --dry-run    # show what would change`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runImport,
	}
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Show what would change without writing")
	return c
}

func (e *Extension) runImport(c *cobra.Command, args []string) error {
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)

	w := cmd.Out()
	if cmd.JSON() {
		w = io.Discard
	}

	opts := importer.Options{DryRun: dryRun, Colour: cmd.IsTerminal()}
	result, err := importer.Run(c.Context(), w, e.svc, args, opts)

	log.Event("library:import", "import").
		Author(cmd.Author()).
		Results(len(result.ISBNs)).
		Detail("files", result.Files).
		Detail("created", result.Created).
		Detail("replaced", result.Replaced).
		Detail("dry_run", dryRun).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("import: %w", err))
	}
	return cmd.PrintJSON(result)
}

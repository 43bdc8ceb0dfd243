// init.go implements the "booksearch init" command.
//
// Init runs before a library exists and creates the database. It does not
// create config; that is managed separately via "booksearch config".

package core

import (
	"fmt"
	"path/filepath"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/jpl-au/booksearch/internal/repo"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialise a new book library",
		Long: `Creates a .booksearch/booksearch.db library in the current directory.

Use --db to create additional libraries:
  booksearch init --db classics    # creates .booksearch/booksearch-classics.db

Use --dir to create in a different directory:
  booksearch init --dir /path/to/project

Use --force to replace an existing library (its books are deleted).

Note: init does not create config. Use "booksearch config" to set up configuration.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
}

func runInit(_ *cobra.Command, _ []string) error {
	db, dir := cmd.DB(), cmd.Dir()

	err := library.Init(cmd.Force(), db, dir)

	log.Event("core:init", "init").
		Author(cmd.Author()).
		Detail("db", db).
		Detail("dir", dir).
		Detail("force", cmd.Force()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("init: %w", err))
	}

	loc := filepath.Join(dir, repo.Dir, repo.DBFileName(db))
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"path": loc})
	}
	fmt.Fprintf(cmd.Out(), "Initialised booksearch library in %s\n", loc)
	return nil
}

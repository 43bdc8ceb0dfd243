// db.go implements the "booksearch db" command, which lists the libraries
// in the nearest .booksearch directory without opening them.

package core

import (
	"fmt"
	"path/filepath"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/jpl-au/booksearch/internal/repo"
	"github.com/spf13/cobra"
)

func newDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "List libraries",
		Long: `List the library databases in the nearest .booksearch directory.

  booksearch db                # list libraries
  booksearch db --dir /path    # list libraries in another project

Select one with --db <name> or BOOKSEARCH_DB.`,
		Args: cobra.NoArgs,
		RunE: runDB,
	}
}

func runDB(_ *cobra.Command, _ []string) error {
	dir := cmd.Dir()

	// repo expects the .booksearch directory, not the project root.
	libDir := ""
	if dir != "" {
		libDir = filepath.Join(dir, repo.Dir)
	}

	dbs, err := repo.ListDBs(libDir)

	log.Event("core:db", "list").
		Author(cmd.Author()).
		Detail("dir", dir).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("db list: %w", err))
	}

	if cmd.JSON() {
		type entry struct {
			Name string `json:"name"`
			File string `json:"file"`
		}
		entries := make([]entry, 0, len(dbs))
		for _, d := range dbs {
			entries = append(entries, entry{Name: d.Name, File: d.File})
		}
		return cmd.PrintJSON(entries)
	}

	if len(dbs) == 0 {
		fmt.Fprintln(cmd.Out(), "No libraries found")
		return nil
	}
	for _, d := range dbs {
		name := d.Name
		if name == "" {
			name = "(default)"
		}
		fmt.Fprintf(cmd.Out(), "%s  %s\n", d.File, name)
	}
	return nil
}

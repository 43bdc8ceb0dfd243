// ls.go implements the "booksearch ls" command.

package library

import (
	"fmt"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/format"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/jpl-au/booksearch/internal/store"
	"github.com/spf13/cobra"
)

func (e *Extension) newLsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List books in the library",
		Long:  `List stored books in library order.`,
		Args:  cobra.NoArgs,
		RunE:  e.runLs,
	}
	c.Flags().BoolP(extension.FlagLong, "l", false, "Long format with line and page counts")
	c.Flags().Bool(extension.FlagStats, false, "Print library totals only")
	return c
}

func (e *Extension) runLs(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	long, _ := c.Flags().GetBool(extension.FlagLong)
	stats, _ := c.Flags().GetBool(extension.FlagStats)

	if stats {
		st, err := e.svc.Stats(ctx)
		log.Event("library:ls", "stats").Author(cmd.Author()).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(st)
		}
		fmt.Fprintf(cmd.Out(), "%d books, %d lines\n", st.Books, st.Lines)
		return nil
	}

	metas, err := e.svc.List(ctx)

	log.Event("library:ls", "list").
		Author(cmd.Author()).
		Results(len(metas)).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("ls: %w", err))
	}

	if cmd.JSON() {
		out := make([]store.BookMetaJSON, 0, len(metas))
		for i := range metas {
			out = append(out, metas[i].ToJSON())
		}
		return cmd.PrintJSON(out)
	}
	if long {
		return format.BooksLong(cmd.Out(), metas)
	}
	return format.Books(cmd.Out(), metas)
}

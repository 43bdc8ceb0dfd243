// cat.go implements the "booksearch cat" command.

package library

import (
	"fmt"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/internal/format"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <isbn>",
		Short: "Print a book's lines",
		Long: `Print every line of a stored book as "page:line: text".

With -o json the book is printed as a one-book corpus, ready to import.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runCat,
	}
}

func (e *Extension) runCat(c *cobra.Command, args []string) error {
	isbn := args[0]
	b, err := e.svc.Book(c.Context(), isbn)

	log.Event("library:cat", "read").
		Author(cmd.Author()).
		ISBN(isbn).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("cat %q: %w", isbn, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(b.AsCorpus())
	}
	if b.Title != "" {
		fmt.Fprintf(cmd.Out(), "# %s\n", b.Title)
	}
	return format.Lines(cmd.Out(), b)
}

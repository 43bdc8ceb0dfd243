// rm.go implements the "booksearch rm" command. Removal is permanent; the
// book can be imported again from its corpus file.

package library

import (
	"fmt"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <isbn>...",
		Short: "Remove books from the library",
		Args:  cobra.MinimumNArgs(1),
		RunE:  e.runRm,
	}
}

func (e *Extension) runRm(c *cobra.Command, args []string) error {
	ctx := c.Context()
	removed := make([]string, 0, len(args))

	for _, isbn := range args {
		err := e.svc.Remove(ctx, isbn)
		log.Event("library:rm", "delete").
			Author(cmd.Author()).
			ISBN(isbn).
			Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("rm: %w", err))
		}
		removed = append(removed, isbn)
		if !cmd.JSON() {
			fmt.Fprintf(cmd.Out(), "Removed: %s\n", isbn)
		}
	}
	return cmd.PrintJSON(map[string][]string{"removed": removed})
}

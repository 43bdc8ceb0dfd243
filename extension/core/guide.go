// guide.go implements the "booksearch guide" command.
//
// Guides are embedded in the binary. A terminal gets glamour rendering;
// pipes get raw markdown for loading into an LLM's context.

package core

import (
	"fmt"
	"strings"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/guide"
	"github.com/spf13/cobra"
)

func newGuideCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the booksearch usage guide",
		Long: `Outputs the booksearch guide for LLMs and humans.

  booksearch guide           # main guide
  booksearch guide search    # search options and output
  booksearch guide corpus    # corpus file format`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}
			raw, _ := c.Flags().GetBool(extension.FlagRaw)
			cmd.PrintMarkdown(content, raw)
			return nil
		},
	}
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without rendering")
	return c
}

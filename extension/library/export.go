// export.go implements the "booksearch export" command.

package library

import (
	"fmt"
	"io"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/exporter"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newExportCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "export [isbn...]",
		Short: "Write books out as a corpus",
		Long: `Write books from the library as a corpus. With no ISBNs the whole library
is exported.

  booksearch export                        # JSON corpus to stdout
  booksearch export --format yaml          # YAML corpus to stdout
  booksearch export --to books.yaml        # format from the extension
  booksearch export --split scans/         # one <isbn>.json per book

Existing files are only replaced with --force.`,
		RunE: e.runExport,
	}
	c.Flags().String(extension.FlagTo, "", "Write to this corpus file")
	c.Flags().String(extension.FlagSplit, "", "Write one file per book into this directory")
	c.Flags().String(extension.FlagFormat, "json", "Format for stdout and --split: json, yaml")
	c.MarkFlagsMutuallyExclusive(extension.FlagTo, extension.FlagSplit)
	return c
}

func (e *Extension) runExport(c *cobra.Command, args []string) error {
	to, _ := c.Flags().GetString(extension.FlagTo)
	split, _ := c.Flags().GetString(extension.FlagSplit)
	formatName, _ := c.Flags().GetString(extension.FlagFormat)

	f, err := corpus.ParseFormat(formatName)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export: %w", err))
	}

	opts := exporter.Options{Force: cmd.Force(), Format: f}
	dst := to
	if split != "" {
		dst = split
		opts.Split = true
	}

	// A corpus on stdout is the output itself, so there is no JSON envelope.
	w := cmd.Out()
	if cmd.JSON() && dst != "" {
		w = io.Discard
	}

	result, err := exporter.Run(c.Context(), w, e.svc, args, dst, opts)

	log.Event("library:export", "export").
		Author(cmd.Author()).
		Results(result.Exported).
		Detail("to", dst).
		Detail("format", f.String()).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("export: %w", err))
	}
	if dst == "" {
		return nil
	}
	return cmd.PrintJSON(result)
}

// run.go implements the "booksearch search" command.

package search

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jpl-au/booksearch/cmd"
	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/config"
	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/format"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "search <term> [corpus-file...]",
		Short: "Find every line containing a term",
		Long: `Find every line containing term. Each matching line is reported once as
ISBN:page:line, in book order and then line order.

With corpus files (JSON or YAML, or directories of them) only those files are
searched and no library is needed. A single "-" reads one corpus from stdin
in the encoding named by --format. Without files the library is searched.

  booksearch search whale                  # search the library
  booksearch search -i WHALE books.json    # case-insensitive, one file
  booksearch search and --isbn 9780000528531 -c
  cat books.yaml | booksearch search and - --format yaml
  booksearch search and -o json            # {"SearchTerm": ..., "Results": [...]}`,
		Args: cobra.MinimumNArgs(1),
		RunE: e.runSearch,
	}
	c.Flags().BoolP(extension.FlagIgnoreCase, "i", false, "Ignore case distinctions")
	c.Flags().StringSlice(extension.FlagISBN, nil, "Limit a library search to these books")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Print only the number of matching lines")
	c.Flags().BoolP(extension.FlagLocations, "l", false, "Print ISBN:page:line without line text")
	c.Flags().Bool(extension.FlagRaw, false, "Output without markdown rendering")
	c.Flags().String(extension.FlagFormat, "json", "Encoding of a corpus read from stdin (json or yaml)")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, args []string) error {
	term, files := args[0], args[1:]
	isbns, _ := c.Flags().GetStringSlice(extension.FlagISBN)

	caseSensitive, err := caseSensitivity(c)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}

	src := source{files: files, isbns: isbns, stdin: c.InOrStdin()}
	src.format, _ = c.Flags().GetString(extension.FlagFormat)

	resp, searched, err := search(c.Context(), term, src, caseSensitive)

	l := log.Event("search:search", "search").
		Author(cmd.Author()).
		Term(term).
		Detail("files", len(files)).
		Detail("case_sensitive", caseSensitive)
	if resp != nil {
		l.Results(len(resp.Results))
	}
	l.Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("search: %w", err))
	}
	return printResults(c, resp, searched)
}

// caseSensitivity applies -i over the search.case_sensitive default.
func caseSensitivity(c *cobra.Command) (bool, error) {
	if ignore, _ := c.Flags().GetBool(extension.FlagIgnoreCase); ignore {
		return false, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return true, err
	}
	return cfg.CaseSensitive(), nil
}

// source names the corpus a search reads.
type source struct {
	files  []string
	isbns  []string
	stdin  io.Reader
	format string
}

// load returns the corpus named by src: stdin for a lone "-", the given
// files, or the library when there are none.
func (src source) load(ctx context.Context) ([]book.Book, error) {
	if len(src.files) > 0 && len(src.isbns) > 0 {
		return nil, errors.New("--isbn only applies to library searches")
	}
	switch {
	case len(src.files) == 1 && src.files[0] == "-":
		f, err := corpus.ParseFormat(src.format)
		if err != nil {
			return nil, err
		}
		return corpus.Read(src.stdin, f)
	case len(src.files) > 0:
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		return corpus.LoadAll(src.files, cfg.MaxCorpusSize())
	default:
		svc, err := cmd.Library()
		if err != nil {
			return nil, err
		}
		return svc.Corpus(ctx, src.isbns)
	}
}

// search runs term over the corpus named by src. It returns the searched
// corpus alongside the response so matches can be printed with their text.
// The term is checked before anything is read.
func search(ctx context.Context, term string, src source, caseSensitive bool) (*book.SearchResponse, []book.Book, error) {
	if term == "" {
		return nil, nil, book.ErrInvalidSearchTerm
	}
	books, err := src.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	resp, err := book.SearchContext(ctx, term, books, caseSensitive)
	return resp, books, err
}

func printResults(c *cobra.Command, resp *book.SearchResponse, searched []book.Book) error {
	if cmd.JSON() {
		return cmd.PrintJSON(resp)
	}

	count, _ := c.Flags().GetBool(extension.FlagCount)
	locations, _ := c.Flags().GetBool(extension.FlagLocations)
	raw, _ := c.Flags().GetBool(extension.FlagRaw)

	switch {
	case count:
		return format.Count(cmd.Out(), resp)
	case locations:
		return format.Hits(cmd.Out(), resp)
	case cmd.Render(raw):
		cmd.PrintMarkdown(format.Markdown(resp, searched), false)
		return nil
	default:
		return format.Matches(cmd.Out(), resp, searched)
	}
}

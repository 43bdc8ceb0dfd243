// Package importer loads corpus files into the library.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/diff"
	"github.com/jpl-au/booksearch/internal/progress"
	"github.com/jpl-au/booksearch/internal/service"
	"github.com/jpl-au/booksearch/internal/store"
)

// Options configures an import operation.
type Options struct {
	DryRun bool // Report what would change without writing
	Colour bool // Colour dry-run diffs
}

// Result contains the outcome of an import operation.
type Result struct {
	Files     int      `json:"files"`
	Created   int      `json:"created"`
	Replaced  int      `json:"replaced"`
	Unchanged int      `json:"unchanged,omitempty"` // dry run only
	ISBNs     []string `json:"isbns"`
	DryRun    bool     `json:"dry_run,omitempty"`
}

type file struct {
	path  string
	books []book.Book
}

// Run imports every corpus file named by paths (directories contribute their
// corpus files). All files are parsed and validated before anything is
// written, so one malformed file leaves the library untouched.
func Run(ctx context.Context, w io.Writer, svc service.Service, paths []string, opts Options) (Result, error) {
	result := Result{ISBNs: []string{}, DryRun: opts.DryRun}

	names, err := corpus.Expand(paths)
	if err != nil {
		return result, err
	}

	files := make([]file, 0, len(names))
	for _, p := range names {
		books, err := corpus.Load(p, svc.MaxCorpusSize())
		if err != nil {
			return result, err
		}
		files = append(files, file{path: p, books: books})
	}
	result.Files = len(files)

	for _, f := range files {
		if err := validate(f); err != nil {
			return result, err
		}
	}

	if opts.DryRun {
		return result, dryRun(ctx, w, svc, files, opts, &result)
	}

	prog := progress.New("Importing", len(files))
	defer prog.Done()

	for _, f := range files {
		res, err := svc.Import(ctx, f.books)
		if err != nil {
			return result, fmt.Errorf("%s: %w", f.path, err)
		}
		for i, r := range res {
			isbn := f.books[i].ISBN
			result.ISBNs = append(result.ISBNs, isbn)
			if r.Created {
				result.Created++
				fmt.Fprintf(w, "Imported: %s (%s)\n", isbn, f.path)
			} else {
				result.Replaced++
				fmt.Fprintf(w, "Replaced: %s (%s)\n", isbn, f.path)
			}
		}
		prog.Increment()
	}
	return result, nil
}

// validate applies the checks svc.Import makes, so a bad file fails the
// whole run before the first write.
func validate(f file) error {
	if err := book.Validate(f.books); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	for i := range f.books {
		if f.books[i].ISBN == "" {
			return fmt.Errorf("%s: book %d (%q): %w", f.path, i, f.books[i].Title, store.ErrMissingISBN)
		}
	}
	return nil
}

func dryRun(ctx context.Context, w io.Writer, svc service.Service, files []file, opts Options, result *Result) error {
	for _, f := range files {
		for i := range f.books {
			in := &f.books[i]
			result.ISBNs = append(result.ISBNs, in.ISBN)

			stored, err := svc.Book(ctx, in.ISBN)
			if errors.Is(err, store.ErrNotFound) {
				result.Created++
				fmt.Fprintf(w, "Would import: %s (%s, %d lines)\n", in.ISBN, f.path, in.Len())
				continue
			}
			if err != nil {
				return err
			}

			d := diff.Books(stored, in, "library/"+in.ISBN, f.path)
			if !d.Changed() {
				result.Unchanged++
				fmt.Fprintf(w, "Unchanged: %s (%s)\n", in.ISBN, f.path)
				continue
			}
			result.Replaced++
			fmt.Fprintf(w, "Would replace: %s (%s)\n", in.ISBN, f.path)
			fmt.Fprint(w, d.Format(opts.Colour))
		}
	}
	return nil
}

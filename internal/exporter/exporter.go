// Package exporter writes books from the library back out as corpus files.
package exporter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/progress"
	"github.com/jpl-au/booksearch/internal/service"
	"github.com/jpl-au/booksearch/internal/store"
)

// Options configures an export operation.
type Options struct {
	Force  bool          // Overwrite existing files
	Split  bool          // One file per book in the destination directory
	Format corpus.Format // Encoding when writing to a stream or split files
}

// Result contains the outcome of an export operation.
type Result struct {
	Exported int      `json:"exported"`
	Paths    []string `json:"paths"`
}

// Run exports the named books, or the whole library when isbns is empty.
//
// With an empty dst the corpus is written to w. Otherwise dst is a corpus
// file whose extension picks the format, or with Split a directory that
// receives one <isbn>.<format> file per book.
func Run(ctx context.Context, w io.Writer, svc service.Service, isbns []string, dst string, opts Options) (Result, error) {
	result := Result{Paths: []string{}}

	if opts.Split && dst != "" {
		return exportSplit(ctx, w, svc, isbns, dst, opts)
	}

	books, err := svc.Corpus(ctx, isbns)
	if err != nil {
		return result, err
	}

	switch {
	case dst == "":
		if err := corpus.EncodeAs(w, books, opts.Format); err != nil {
			return result, err
		}
		result.Exported = len(books)
		return result, nil

	default:
		f, err := corpus.FormatOf(dst)
		if err != nil {
			return result, err
		}
		var buf bytes.Buffer
		if err := corpus.EncodeAs(&buf, books, f); err != nil {
			return result, err
		}
		dir, name := filepath.Split(dst)
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return result, fmt.Errorf("creating directory: %w", err)
		}
		root, err := os.OpenRoot(dir)
		if err != nil {
			return result, fmt.Errorf("opening destination: %w", err)
		}
		defer root.Close()

		if err := writeFileInRoot(root, name, buf.Bytes(), opts.Force); err != nil {
			return result, err
		}
		result.Exported = len(books)
		result.Paths = append(result.Paths, dst)
		fmt.Fprintf(w, "Exported: %d books -> %s\n", len(books), dst)
		return result, nil
	}
}

// exportSplit writes one file per book, loading books one at a time.
func exportSplit(ctx context.Context, w io.Writer, svc service.Service, isbns []string, dst string, opts Options) (Result, error) {
	result := Result{Paths: []string{}}

	if len(isbns) == 0 {
		metas, err := svc.List(ctx)
		if err != nil {
			return result, err
		}
		for _, m := range metas {
			isbns = append(isbns, m.ISBN)
		}
	}
	if len(isbns) == 0 {
		return result, fmt.Errorf("library is empty")
	}
	// Unknown ISBNs fail before any file is written.
	for _, isbn := range isbns {
		ok, err := svc.Exists(ctx, isbn)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, fmt.Errorf("%w: %s", store.ErrNotFound, isbn)
		}
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return result, fmt.Errorf("creating destination directory: %w", err)
	}
	root, err := os.OpenRoot(dst)
	if err != nil {
		return result, fmt.Errorf("opening destination root: %w", err)
	}
	defer root.Close()

	// Existing files fail before any file is written.
	if !opts.Force {
		for _, isbn := range isbns {
			name := isbn + "." + opts.Format.String()
			if _, err := root.Stat(name); err == nil {
				return result, fmt.Errorf("file exists: %s (use --force to overwrite)", name)
			}
		}
	}

	prog := progress.New("Exporting", len(isbns))
	defer prog.Done()

	for _, isbn := range isbns {
		b, err := svc.Book(ctx, isbn)
		if err != nil {
			return result, fmt.Errorf("loading %s: %w", isbn, err)
		}
		var buf bytes.Buffer
		if err := corpus.EncodeAs(&buf, b.AsCorpus(), opts.Format); err != nil {
			return result, err
		}

		// os.Root rejects ISBNs that would escape dst, such as "../x".
		name := isbn + "." + opts.Format.String()
		if err := writeFileInRoot(root, name, buf.Bytes(), opts.Force); err != nil {
			return result, err
		}

		prog.Increment()
		out := filepath.Join(dst, name)
		result.Paths = append(result.Paths, out)
		result.Exported++
		fmt.Fprintf(w, "Exported: %s -> %s\n", isbn, out)
	}
	return result, nil
}

// writeFileInRoot writes data to a file within root, refusing to replace an
// existing file unless force is set.
func writeFileInRoot(root *os.Root, name string, data []byte, force bool) error {
	if !force {
		if _, err := root.Stat(name); err == nil {
			return fmt.Errorf("file exists: %s (use --force to overwrite)", name)
		}
	}

	f, err := root.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	defer f.Close()

	_, err = f.Write(data)
	return err
}

// Package format renders search results and library listings for the CLI.
//
// Command implementations decide what to show; this package decides how it
// lines up on the terminal.
package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/store"
)

// maxText is the widest line text shown before truncation.
const maxText = 80

// Hits prints one ISBN:page:line row per result.
func Hits(w io.Writer, resp *book.SearchResponse) error {
	for _, r := range resp.Results {
		if _, err := fmt.Fprintf(w, "%s:%d:%d\n", r.ISBN, r.Page, r.Line); err != nil {
			return err
		}
	}
	return nil
}

// Matches prints each result followed by the matching line's text, grep
// style. The text is looked up in corpus, which should be the corpus that
// was searched; results it cannot place are printed without text.
func Matches(w io.Writer, resp *book.SearchResponse, corpus []book.Book) error {
	text := index(corpus)
	for _, r := range resp.Results {
		t, ok := text[key{r.ISBN, r.Page, r.Line}]
		if !ok {
			if _, err := fmt.Fprintf(w, "%s:%d:%d\n", r.ISBN, r.Page, r.Line); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", r.ISBN, r.Page, r.Line, truncate(t)); err != nil {
			return err
		}
	}
	return nil
}

// Count prints the number of results.
func Count(w io.Writer, resp *book.SearchResponse) error {
	_, err := fmt.Fprintln(w, len(resp.Results))
	return err
}

// Markdown returns the results as a markdown document for glamour.
func Markdown(resp *book.SearchResponse, corpus []book.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %q\n\n", resp.SearchTerm)
	if len(resp.Results) == 0 {
		b.WriteString("No matches.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%d matching lines.\n\n", len(resp.Results))
	b.WriteString("| ISBN | Page | Line | Text |\n|---|---:|---:|---|\n")
	text := index(corpus)
	for _, r := range resp.Results {
		t := text[key{r.ISBN, r.Page, r.Line}]
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", r.ISBN, r.Page, r.Line, escapeCell(truncate(t)))
	}
	return b.String()
}

type key struct {
	isbn       string
	page, line int
}

// index maps each line's identifiers to its text. Where identifiers repeat
// within a book the first line wins.
func index(corpus []book.Book) map[key]string {
	m := make(map[key]string)
	for _, b := range corpus {
		for _, c := range b.Content {
			k := key{b.ISBN, c.Page, c.Line}
			if _, ok := m[k]; !ok {
				m[k] = c.Text
			}
		}
	}
	return m
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) > maxText {
		return string(r[:maxText-3]) + "..."
	}
	return s
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Books prints one "ISBN  title" row per book.
func Books(w io.Writer, metas []store.BookMeta) error {
	for _, m := range metas {
		title := m.Title
		if title == "" {
			title = "-"
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", m.ISBN, title); err != nil {
			return err
		}
	}
	return nil
}

// BooksLong prints books with line and page counts.
//
// Fixed-width columns come first; ISBN and TITLE vary in width and go last.
func BooksLong(w io.Writer, metas []store.BookMeta) error {
	if len(metas) == 0 {
		return nil
	}

	maxISBN := 4 // "ISBN"
	for _, m := range metas {
		maxISBN = max(maxISBN, len(m.ISBN))
	}

	fmt.Fprintf(w, "%6s  %5s  %-16s  %-*s  %s\n", "LINES", "PAGES", "UPDATED", maxISBN, "ISBN", "TITLE")
	for _, m := range metas {
		updated := time.Unix(m.UpdatedAt, 0).Format("2006-01-02 15:04")
		title := m.Title
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(w, "%6d  %5d  %s  %-*s  %s\n", m.Lines, m.Pages, updated, maxISBN, m.ISBN, title)
	}
	return nil
}

// Lines prints a book's content as "page:line: text" rows.
func Lines(w io.Writer, b *book.Book) error {
	for _, c := range b.Content {
		if _, err := fmt.Fprintf(w, "%d:%d: %s\n", c.Page, c.Line, c.Text); err != nil {
			return err
		}
	}
	return nil
}

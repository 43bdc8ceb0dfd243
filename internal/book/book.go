// Package book defines the scanned-book data model and the substring search
// that runs over it.
//
// A corpus is an ordered slice of books, each holding the page/line-tagged
// text fragments produced by digitisation. Search walks every line of every
// book and reports where a term occurs. There is no index and no state kept
// between calls: each search is a one-shot linear scan over whatever corpus
// the caller hands in.
package book

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Book is a single scanned book.
type Book struct {
	Title   string        `json:"Title" yaml:"Title"`
	ISBN    string        `json:"ISBN" yaml:"ISBN"`
	Content []ContentLine `json:"Content" yaml:"Content" validate:"required"`
}

// ContentLine is one line of scanned text. Page and Line are identifiers
// copied into results as-is; they are never range checked.
type ContentLine struct {
	Page int    `json:"Page" yaml:"Page"`
	Line int    `json:"Line" yaml:"Line"`
	Text string `json:"Text" yaml:"Text"`
}

// SearchResult locates one matching line.
type SearchResult struct {
	ISBN string `json:"ISBN"`
	Page int    `json:"Page"`
	Line int    `json:"Line"`
}

// SearchResponse is the outcome of a search. Results is never nil so that an
// empty search serialises as [] rather than null.
type SearchResponse struct {
	SearchTerm string         `json:"SearchTerm"`
	Results    []SearchResult `json:"Results"`
}

// NewResponse returns a response for term with no results.
func NewResponse(term string) *SearchResponse {
	return &SearchResponse{SearchTerm: term, Results: []SearchResult{}}
}

// Len returns the number of lines in the book.
func (b *Book) Len() int {
	return len(b.Content)
}

// AsCorpus returns a one-book corpus holding b.
func (b *Book) AsCorpus() []Book {
	return []Book{*b}
}

// validate is safe for concurrent use once constructed.
var validate = validator.New()

// Validate checks that the corpus can be searched: it must be non-nil and
// every book must carry a Content slice. One bad book invalidates the whole
// corpus. An empty, non-nil corpus is valid.
func Validate(corpus []Book) error {
	if corpus == nil {
		return fmt.Errorf("%w: corpus is nil", ErrInvalidCorpus)
	}
	for i := range corpus {
		if err := validate.Struct(&corpus[i]); err != nil {
			return fmt.Errorf("%w: book %d (%q): %v", ErrInvalidCorpus, i, corpus[i].ISBN, err)
		}
	}
	return nil
}

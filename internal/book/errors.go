// errors.go defines the two ways a search request can be rejected.
//
// Both are detected before any line is scanned. Callers tell them apart with
// errors.Is: a bad term usually means "ask the user again", a bad corpus means
// the dataset itself is malformed.

package book

import "errors"

var (
	// ErrInvalidSearchTerm is returned when the search term is empty or absent.
	ErrInvalidSearchTerm = errors.New("bad search term")
	// ErrInvalidCorpus is returned when the corpus is absent or any book in
	// it does not have the Book/Content/Text shape.
	ErrInvalidCorpus = errors.New("bad text object")
)

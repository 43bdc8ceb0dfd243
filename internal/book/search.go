// search.go implements the substring scan.

package book

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Search reports every line in corpus whose text contains term.
//
// Matching is plain substring containment: "how" matches inside "however".
// When caseSensitive is false both the term and each line are lower-cased
// before comparison. A line produces one result no matter how many times the
// term occurs in it. Results follow corpus order, then line order.
//
// An empty term fails with ErrInvalidSearchTerm and a malformed corpus with
// ErrInvalidCorpus; a valid search with no matches returns an empty response
// and a nil error.
func Search(term string, corpus []Book, caseSensitive bool) (*SearchResponse, error) {
	return SearchContext(context.Background(), term, corpus, caseSensitive)
}

// SearchContext is Search with a cancellation check between books. It returns
// ctx.Err() if the context ends before the scan completes.
func SearchContext(ctx context.Context, term string, corpus []Book, caseSensitive bool) (*SearchResponse, error) {
	if term == "" {
		return nil, ErrInvalidSearchTerm
	}
	if err := Validate(corpus); err != nil {
		return nil, err
	}

	fold := func(s string) string { return s }
	if !caseSensitive {
		// Casers carry state and are not safe for concurrent use, so each
		// search gets its own.
		lower := cases.Lower(language.Und)
		fold = lower.String
	}
	needle := fold(term)

	resp := NewResponse(term)
	for i := range corpus {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		b := &corpus[i]
		for _, c := range b.Content {
			if strings.Contains(fold(c.Text), needle) {
				resp.Results = append(resp.Results, SearchResult{
					ISBN: b.ISBN,
					Page: c.Page,
					Line: c.Line,
				})
			}
		}
	}
	return resp, nil
}

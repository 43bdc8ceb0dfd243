// tools_search.go implements booksearch_search.

package mcp

import (
	"context"

	"github.com/jpl-au/booksearch/internal/book"
	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// search handles booksearch_search tool calls. A missing or null term is
// the empty term, and is rejected before the corpus is looked at.
func (h *handlers) search(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := getString(req, "term", "")
	caseSensitive := !getBool(req, "ignore_case", !h.caseSensitive())

	resp, err := h.runSearch(ctx, req, term, caseSensitive)

	l := log.Event("mcp:search", "search").Author("mcp").Term(term)
	if resp != nil {
		l.Results(len(resp.Results))
	}
	l.Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(resp)
}

func (h *handlers) runSearch(ctx context.Context, req mcp.CallToolRequest, term string, caseSensitive bool) (*book.SearchResponse, error) {
	if term == "" {
		return nil, book.ErrInvalidSearchTerm
	}

	if raw, ok := getJSON(req, "corpus"); ok {
		books, err := corpus.Decode(raw, corpus.JSON)
		if err != nil {
			return nil, err
		}
		return book.SearchContext(ctx, term, books, caseSensitive)
	}

	if h.svc == nil {
		return nil, errNotInitialised
	}
	return h.svc.Search(ctx, term, caseSensitive, getStrings(req, "isbns"))
}

func (h *handlers) caseSensitive() bool {
	if h.svc == nil {
		return true
	}
	return h.svc.CaseSensitive()
}

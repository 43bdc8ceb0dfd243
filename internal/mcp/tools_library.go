// tools_library.go implements the tools that read and change the library.

package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/booksearch/internal/corpus"
	"github.com/jpl-au/booksearch/internal/log"
	"github.com/jpl-au/booksearch/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

var errNotInitialised = errors.New(ErrNotInitialised)

// listBooks handles booksearch_list tool calls.
func (h *handlers) listBooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // req unused
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	metas, err := h.svc.List(ctx)

	log.Event("mcp:list", "list").Author("mcp").Results(len(metas)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := make([]store.BookMetaJSON, len(metas))
	for i := range metas {
		result[i] = metas[i].ToJSON()
	}
	return jsonResult(result)
}

// readBook handles booksearch_read tool calls.
func (h *handlers) readBook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	isbn, err := req.RequireString("isbn")
	if err != nil {
		return mcp.NewToolResultError("isbn is required"), nil //nolint:nilerr
	}

	b, err := h.svc.Book(ctx, isbn)

	log.Event("mcp:read", "read").Author("mcp").ISBN(isbn).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(b)
}

type importResult struct {
	Created  int      `json:"created"`
	Replaced int      `json:"replaced"`
	ISBNs    []string `json:"isbns"`
}

// importBooks handles booksearch_import tool calls.
func (h *handlers) importBooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	raw, ok := getJSON(req, "corpus")
	if !ok {
		return mcp.NewToolResultError("corpus is required"), nil
	}

	result := importResult{ISBNs: []string{}}
	books, err := corpus.Decode(raw, corpus.JSON)
	if err == nil {
		var res []store.PutResult
		res, err = h.svc.Import(ctx, books)
		for i, r := range res {
			result.ISBNs = append(result.ISBNs, books[i].ISBN)
			if r.Created {
				result.Created++
			} else {
				result.Replaced++
			}
		}
	}

	log.Event("mcp:import", "import").Author("mcp").Results(len(result.ISBNs)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(result)
}

// removeBook handles booksearch_remove tool calls.
func (h *handlers) removeBook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := h.requireInit(); err != nil {
		return err, nil
	}

	isbn, err := req.RequireString("isbn")
	if err != nil {
		return mcp.NewToolResultError("isbn is required"), nil //nolint:nilerr
	}

	err = h.svc.Remove(ctx, isbn)

	log.Event("mcp:remove", "delete").Author("mcp").ISBN(isbn).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("removed %s", isbn)), nil
}

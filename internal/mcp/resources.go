// resources.go serves stored books as MCP resources at
// booksearch://books/{isbn}.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/booksearch/internal/store"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	// ErrInvalidURI indicates a malformed resource URI.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyISBN indicates a resource URI without an ISBN.
	ErrEmptyISBN = errors.New("empty ISBN")
)

const bookURIPrefix = "booksearch://books/"

func (h *handlers) readBookResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.svc == nil {
		return nil, errNotInitialised
	}

	uri := req.Params.URI
	isbn, err := parseBookURI(uri)
	if err != nil {
		return nil, err
	}

	b, err := h.svc.Book(ctx, isbn)
	if err != nil {
		return nil, err
	}
	data, err := store.MarshalJSON(b.AsCorpus())
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func parseBookURI(uri string) (string, error) {
	isbn, ok := strings.CutPrefix(uri, bookURIPrefix)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	if isbn == "" {
		return "", ErrEmptyISBN
	}
	return isbn, nil
}

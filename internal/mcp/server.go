// Package mcp implements the Model Context Protocol server, exposing the
// book library and search to LLM clients over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/booksearch/extension"
	"github.com/jpl-au/booksearch/internal/config"
	"github.com/jpl-au/booksearch/internal/library"
	"github.com/jpl-au/booksearch/internal/repo"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// ErrNotInitialised is returned by library tools when no library exists.
const ErrNotInitialised = "library not initialised - run booksearch init"

// Serve starts the MCP server over stdio.
//
// The server starts even if no library exists: booksearch_search still works
// on inline corpora, booksearch_init can create the library, and the other
// library tools answer ErrNotInitialised.
func Serve(db string) error {
	// stdout carries JSON-RPC, so diagnostics go to stderr.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	h := &handlers{db: db}

	svc, err := library.New(db)
	if err != nil && !errors.Is(err, repo.ErrNotInitialised) {
		slog.Error("failed to open library", "error", err)
		return err
	}
	if err == nil {
		h.svc = svc
		defer svc.Close()
	} else {
		slog.Info("library not initialised, starting without one")
	}

	s := newServer(h)
	slog.Info("booksearch MCP server ready", "version", Version, "transport", "stdio")

	err = server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// newServer builds the MCP server with every tool and resource registered.
func newServer(h *handlers) *server.MCPServer {
	s := server.NewMCPServer(
		"booksearch",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)
	registerResources(s, h)
	registerTools(s, h)
	registerExtensionTools(s, h, extension.Tools())
	return s
}

// handlers serves MCP requests. svc is nil until a library exists.
type handlers struct {
	db  string
	svc *library.Service
}

// requireInit returns an error result if there is no library.
func (h *handlers) requireInit() *mcp.CallToolResult {
	if h.svc == nil {
		return mcp.NewToolResultError(ErrNotInitialised)
	}
	return nil
}

func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"booksearch://books/{isbn}",
			"Book",
			mcp.WithTemplateDescription("A stored book as a one-book JSON corpus"),
			mcp.WithTemplateMIMEType("application/json"),
		),
		h.readBookResource,
	)
}

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("booksearch_search",
			mcp.WithDescription("Find every line containing a term. Returns {SearchTerm, Results: [{ISBN, Page, Line}]}. Searches the inline corpus if given, otherwise the library."),
			mcp.WithString("term", mcp.Required(), mcp.Description("Text to find (substring match, must not be empty)")),
			mcp.WithString("corpus", mcp.Description(`Inline JSON corpus: [{"Title", "ISBN", "Content": [{"Page", "Line", "Text"}]}]`)),
			mcp.WithArray("isbns", mcp.Description("Limit a library search to these books"), mcp.WithStringItems()),
			mcp.WithBoolean("ignore_case", mcp.Description("Case insensitive search (default from search.case_sensitive)")),
		),
		h.search,
	)

	s.AddTool(
		mcp.NewTool("booksearch_list",
			mcp.WithDescription("List books in the library with line and page counts"),
		),
		h.listBooks,
	)

	s.AddTool(
		mcp.NewTool("booksearch_read",
			mcp.WithDescription("Read one book's lines"),
			mcp.WithString("isbn", mcp.Required(), mcp.Description("Book ISBN")),
		),
		h.readBook,
	)

	s.AddTool(
		mcp.NewTool("booksearch_import",
			mcp.WithDescription("Add books to the library from an inline JSON corpus, replacing books with the same ISBN"),
			mcp.WithString("corpus", mcp.Required(), mcp.Description("JSON corpus")),
		),
		h.importBooks,
	)

	s.AddTool(
		mcp.NewTool("booksearch_remove",
			mcp.WithDescription("Remove a book from the library"),
			mcp.WithString("isbn", mcp.Required(), mcp.Description("Book ISBN")),
		),
		h.removeBook,
	)

	s.AddTool(
		mcp.NewTool("booksearch_guide",
			mcp.WithDescription("Get help for booksearch"),
			mcp.WithString("topic", mcp.Description("Guide topic (search, corpus, import, config, mcp) or empty for the overview")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("booksearch_init",
			mcp.WithDescription("Create a library in the working directory. Call this if other tools report the library is not initialised."),
		),
		h.initLibrary,
	)

	s.AddTool(
		mcp.NewTool("booksearch_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("booksearch_config_set",
			mcp.WithDescription("Set a configuration value"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (author.name, author.email, search.case_sensitive, output.render, limits.max_corpus_size)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)
}

// registerExtensionTools adds tools contributed by extensions.
func registerExtensionTools(s *server.MCPServer, h *handlers, tools []extension.MCPTool) {
	for _, t := range tools {
		s.AddTool(t.Tool, h.extensionHandler(t.Handler))
	}
}

// extensionHandler adapts an extension handler to the server. Extension
// tools share the server's library and need one like the built-in tools.
func (h *handlers) extensionHandler(handler extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if r := h.requireInit(); r != nil {
			return r, nil
		}
		cfg, err := config.Load()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return handler(ctx, extension.NewContext(h.svc, cfg), req)
	}
}

// Package mcp implements the Model Context Protocol server, exposing
// nomenclature validation to LLM clients. An assistant helping a
// researcher tidy an archive can check names and read the naming
// rules through a standardised protocol instead of shelling out.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mikrolab/nomen/guide"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio. Stdio transport keeps it
// compatible with Claude Desktop and other MCP clients.
func Serve() error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := server.NewMCPServer(
		"nomen",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s)
	registerTools(s)

	slog.Info("nomen MCP server ready", "version", Version, "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// registerResources adds URI-based access to the embedded guide pages.
func registerResources(s *server.MCPServer) {
	s.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"nomen://guide/{page}",
			"Guide page",
			mcp.WithTemplateDescription("Read a nomen guide page (guide, nomenclature)"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		readGuidePage,
	)
}

// registerTools exposes the validator as MCP tools.
func registerTools(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("nomen_check",
			mcp.WithDescription("Validate a microscopy image filename against the lab nomenclature. Returns the validation report including the canonical name."),
			mcp.WithString("name", mcp.Required(), mcp.Description("Filename to validate, including extension")),
			mcp.WithBoolean("verbose", mcp.Description("Include the descriptive per-field breakdown")),
		),
		checkName,
	)

	s.AddTool(
		mcp.NewTool("nomen_scan",
			mcp.WithDescription("Find image files under a directory and validate each name. Returns all reports plus a summary."),
			mcp.WithString("dir", mcp.Required(), mcp.Description("Directory to scan")),
			mcp.WithBoolean("verbose", mcp.Description("Include the descriptive per-field breakdown")),
		),
		scanDir,
	)

	s.AddTool(
		mcp.NewTool("nomen_guide",
			mcp.WithDescription("Read the nomen usage guide or the naming convention reference"),
			mcp.WithString("page", mcp.Description("Guide page: empty for the main guide, \"nomenclature\" for the naming rules")),
		),
		getGuide,
	)
}

// readGuidePage handles nomen://guide/{page} resource requests.
func readGuidePage(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	const prefix = "nomen://guide/"
	page := strings.TrimPrefix(req.Params.URI, prefix)
	if page == req.Params.URI {
		return nil, errors.New("invalid URI: " + req.Params.URI)
	}

	content, err := guide.Get(page)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

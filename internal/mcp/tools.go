// tools.go implements the MCP tool handlers.
//
// Parameter extraction is permissive: an LLM omitting an optional
// parameter or sending "true" where a boolean belongs should get a
// sensible default, not a cryptic type error it cannot act on.

package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mikrolab/nomen/guide"
	"github.com/mikrolab/nomen/internal/log"
	"github.com/mikrolab/nomen/internal/nomen"
	"github.com/mikrolab/nomen/internal/scan"
)

// checkName handles nomen_check tool calls.
func checkName(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	rep := nomen.Check(name, nomen.Options{Verbose: getBool(req, "verbose", false)})

	log.Event("mcp:nomen_check", "check").
		Path(name).
		Files(1).
		Counts(boolToCount(rep.Consistent)).
		Write(nil)

	return mcp.NewToolResultText(strings.Join(rep.Lines(), "\n")), nil
}

// scanDir handles nomen_scan tool calls.
func scanDir(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dir, err := req.RequireString("dir")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: dir"), nil
	}
	verbose := getBool(req, "verbose", false)

	files, err := scan.Discover(dir, nil)

	var b strings.Builder
	var consistent, inconsistent int
	if err == nil {
		for _, f := range files {
			rep := nomen.Check(filepath.Base(f), nomen.Options{Verbose: verbose})
			if rep.Consistent {
				consistent++
			} else {
				inconsistent++
			}
			b.WriteString(strings.Join(rep.Lines(), "\n"))
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "checked %d, consistent %d, inconsistent %d\n",
			len(files), consistent, inconsistent)
	}

	log.Event("mcp:nomen_scan", "scan").
		Path(dir).
		Files(len(files)).
		Counts(consistent, inconsistent).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(b.String()), nil
}

// getGuide handles nomen_guide tool calls.
func getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page := getString(req, "page", "")

	content, err := guide.Get(page)

	log.Event("mcp:nomen_guide", "guide").Detail("page", page).Write(err)

	if err != nil {
		pages, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return mcp.NewToolResultError(fmt.Sprintf("guide %q not found. Available: %s",
			page, strings.Join(pages, ", "))), nil
	}
	return mcp.NewToolResultText(content), nil
}

// getString extracts a string parameter, returning def when missing.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map.
// JSON booleans decode as Go bools, so a type assertion suffices.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

func boolToCount(consistent bool) (int, int) {
	if consistent {
		return 1, 0
	}
	return 0, 1
}

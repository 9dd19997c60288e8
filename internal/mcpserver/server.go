// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the OpenAPI filtering engine as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	oasfilter "github.com/sukkola/openapiv3-filter"
)

const serverInstructions = `openapiv3-filter MCP server — reduces an OpenAPI v3 document to the
operations matching a set of selectors plus the transitive closure of the
component definitions they depend on.

Configuration: OASFILTER_MAX_INLINE_SIZE (default: 5MiB) bounds the size of
inline document content accepted by the filter tool; larger documents must
be passed by file path instead.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "openapiv3-filter", Version: oasfilter.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "filter",
		Description: "Filter an OpenAPI v3 document down to the operations matching path patterns, HTTP methods, tags, and/or security scheme names, keeping only the component definitions those operations reach via $ref. Provide exactly one of file or content. Selectors combine with logical OR within a category and AND across categories; omit a category to leave it unconstrained.",
	}, handleFilter)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

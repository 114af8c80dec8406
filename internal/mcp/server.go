// Package mcp provides a Model Context Protocol server for mdformat.
// It exposes the markdown formatter as a tool that any MCP-capable agent can call.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name reported to MCP clients.
const ServerName = "mdformat"

// NewServer creates an MCP server with the mdformat tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// pureAnnotations returns annotations for tools that only compute a result
// from their arguments.
func pureAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:          "Format Markdown",
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all mdformat tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: ToolFormatMarkdown,
		Description: "Format plain text into markdown by adding common markdown syntax. " +
			"Lines ending in ':' or starting with Section/Chapter/Part become headings, " +
			"ALL-CAPS words become bold, \"quoted\" text becomes italic, and lines indented " +
			"by four spaces or a tab are wrapped in code fences. Each heuristic can be disabled.",
		Annotations: pureAnnotations(),
	}, handleFormatMarkdown())
}

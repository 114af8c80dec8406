package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/mdformat/internal/format"
)

// ToolFormatMarkdown is the name of the formatting tool.
const ToolFormatMarkdown = "format_markdown"

// FormatInput is the input for the format_markdown tool.
// Omitted flags default to true.
type FormatInput struct {
	Text       string `json:"text"                  jsonschema:"the plain text to format"`
	Headings   *bool  `json:"headings,omitempty"    jsonschema:"convert lines that look like headings (default true)"`
	Bold       *bool  `json:"bold,omitempty"        jsonschema:"wrap ALL-CAPS words in bold (default true)"`
	Italics    *bool  `json:"italics,omitempty"     jsonschema:"convert quoted phrases to italics (default true)"`
	CodeBlocks *bool  `json:"code_blocks,omitempty" jsonschema:"fence indented text as code blocks (default true)"`
}

// FormatOutput is the output for the format_markdown tool.
type FormatOutput struct {
	Markdown string `json:"markdown" jsonschema:"the formatted markdown text"`
}

// options resolves the input flags against the all-enabled defaults.
func (in FormatInput) options() format.Options {
	opts := format.DefaultOptions()
	if in.Headings != nil {
		opts.Headings = *in.Headings
	}
	if in.Bold != nil {
		opts.Bold = *in.Bold
	}
	if in.Italics != nil {
		opts.Italics = *in.Italics
	}
	if in.CodeBlocks != nil {
		opts.CodeBlocks = *in.CodeBlocks
	}
	return opts
}

// handleFormatMarkdown returns the markdown both as structured output and as
// plain text content, so text-only clients get the bare string.
func handleFormatMarkdown() mcp.ToolHandlerFor[FormatInput, FormatOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input FormatInput) (*mcp.CallToolResult, FormatOutput, error) {
		markdown := format.Format(input.Text, input.options())

		result := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: markdown}},
		}
		return result, FormatOutput{Markdown: markdown}, nil
	}
}

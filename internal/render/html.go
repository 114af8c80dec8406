// Package render converts formatted markdown into a standalone HTML preview.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// ErrConversion indicates goldmark failed to convert the markdown.
var ErrConversion = errors.New("HTML conversion failed")

// documentTemplate wraps goldmark's fragment output in an HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// defaultTitle is used when the caller passes an empty title.
const defaultTitle = "mdformat preview"

// Converter renders markdown to HTML.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a Converter with GFM and syntax highlighting.
// The formatter's fences carry no language, so the highlighter guesses one.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithGuessLanguage(true),
				highlighting.WithFormatOptions(
					chromahtml.TabWidth(4),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Raw HTML in the source is escaped; WithUnsafe is not set.
		),
	)
	return &Converter{md: md}
}

// ToHTML converts markdown to an HTML5 document with the given title.
func (c *Converter) ToHTML(ctx context.Context, title, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if title == "" {
		title = defaultTitle
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConversion, err)
	}
	return fmt.Sprintf(documentTemplate, util.EscapeHTML([]byte(title)), buf.String()), nil
}

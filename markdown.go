package prettyprint

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(gmhtml.WithXHTML(), gmhtml.WithUnsafe()),
)

// RenderMarkdown converts a Markdown document to an HTML fragment.
func RenderMarkdown(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(src, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseMarkdown(data []byte) (*Tree, error) {
	rendered, err := RenderMarkdown(data)
	if err != nil {
		return nil, NewParseError("failed to render markdown", err)
	}
	return parseUTF8HTML(rendered)
}

package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Render converts a note body to HTML. Raw HTML in the note passes through
// unchanged; vaults are trusted local content.
func Render(body []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := renderer.Convert(body, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for display in the terminal.
func RenderMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}

// Package ui renders notes and tags for the terminal.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/okullo/notes/pkg/core"
)

// groupPalette holds the colors cycled through when assigning tag groups.
// Registry colors are CSS values meant for stylesheets and rarely map onto
// terminal colors, so each group gets a stable slot from this palette
// instead (registry order decides the slot).
var groupPalette = []lipgloss.Color{
	lipgloss.Color("#8BC34A"), // Lime Green
	lipgloss.Color("#2196F3"), // Blue
	lipgloss.Color("#FFC107"), // Yellow
	lipgloss.Color("#e57373"), // Orange
	lipgloss.Color("#4db6ac"), // Teal
	lipgloss.Color("#ba68c8"), // Purple
	lipgloss.Color("#ff8a65"), // Orange-Red
}

// ungrouped renders tags whose group never appears in the registry.
var ungrouped = lipgloss.NewStyle().Faint(true)

// TagPainter colors tags by their registry group.
type TagPainter struct {
	styles map[string]lipgloss.Style
}

// NewTagPainter assigns each group the next palette color, in the order
// the groups were declared.
func NewTagPainter(groups []core.Group) *TagPainter {
	styles := make(map[string]lipgloss.Style, len(groups))
	for i, group := range groups {
		color := groupPalette[i%len(groupPalette)]
		styles[group.Name] = lipgloss.NewStyle().Foreground(color)
	}
	return &TagPainter{styles: styles}
}

// Paint returns the tag rendered in its group color.
func (p *TagPainter) Paint(tag core.Tag) string {
	style, ok := p.styles[tag.Group]
	if !ok {
		return ungrouped.Render(tag.String())
	}
	return style.Render(tag.String())
}

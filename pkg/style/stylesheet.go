// Package style renders vault tag data into CSS stylesheets, for blogs and
// for Obsidian snippets.
package style

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/okullo/notes/pkg/core"
)

//go:embed templates/tag.css
var tagTemplate string

var tagCSS = template.Must(template.New("tag.css").Parse(tagTemplate))

type stylesheetData struct {
	Palette   string
	TagColors string
}

// Stylesheet renders the tag stylesheet: one custom property per group,
// then one rule per tag binding it to its group color.
func Stylesheet(groups []core.Group, tags []core.Tag) (string, error) {
	var palette []string
	for _, group := range groups {
		if group.Color == "" {
			continue
		}
		palette = append(palette, fmt.Sprintf("  --tag-group-%s: %s;", group.Name, group.Color))
	}

	var rules []string
	for _, tag := range tags {
		rules = append(rules, tag.CSS())
	}

	var buf strings.Builder
	err := tagCSS.Execute(&buf, stylesheetData{
		Palette:   strings.Join(palette, "\n"),
		TagColors: strings.Join(rules, "\n"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

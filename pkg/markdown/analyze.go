package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/okullo/notes/pkg/core"
)

// Analysis holds everything extracted from a note body in a single parse.
type Analysis struct {
	Tags   []string
	Tables []core.Table
}

var analyzer = goldmark.New(goldmark.WithExtensions(extension.GFM))

// inlineTag matches Obsidian-style hashtags: a '#' at a word boundary
// followed by a name starting with a letter. Nested tags (#area/home) and
// hyphenated tags are included, bare "#123" anchors are not.
var inlineTag = regexp.MustCompile(`(^|[^0-9A-Za-z_#])#([A-Za-z][0-9A-Za-z_/-]*)`)

// Analyze walks the markdown AST of a note body and extracts inline tags
// and pipe tables. Tags inside code spans, code blocks, and tables do not
// count; tags keep their order of first appearance.
func Analyze(body []byte) Analysis {
	var analysis Analysis
	if len(body) == 0 {
		return analysis
	}

	seen := make(map[string]bool)
	root := analyzer.Parser().Parse(text.NewReader(body))
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *east.Table:
			analysis.Tables = append(analysis.Tables, tableOf(node, body))
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan, *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock, *ast.AutoLink:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			for _, match := range inlineTag.FindAllSubmatch(node.Segment.Value(body), -1) {
				name := string(match[2])
				if !seen[name] {
					seen[name] = true
					analysis.Tags = append(analysis.Tags, name)
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return analysis
}

// tableOf flattens a GFM table into one map per body row, keyed by the
// kebab-cased header text. Cells beyond the header width are dropped.
func tableOf(table *east.Table, source []byte) core.Table {
	var headers []string
	rows := core.Table{}
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader:
			for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
				headers = append(headers, headerKey(textOf(cell, source)))
			}
		case *east.TableRow:
			entry := make(map[string]string)
			i := 0
			for cell := row.FirstChild(); cell != nil && i < len(headers); cell = cell.NextSibling() {
				entry[headers[i]] = textOf(cell, source)
				i++
			}
			rows = append(rows, entry)
		}
	}
	return rows
}

// headerKey lowercases a header and joins its words with hyphens, so
// "Last Updated" becomes "last-updated".
func headerKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// textOf returns the concatenated text content of a node's subtree.
func textOf(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := child.(*ast.Text); ok {
				buf.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}

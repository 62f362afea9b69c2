// Package markdown parses and composes vault note files. It wraps the
// front-matter and markdown libraries so the rest of the system only deals
// in domain types.
package markdown

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/adrg/frontmatter"

	"github.com/okullo/notes/pkg/core"
)

var placeholderLine = regexp.MustCompile(`(?m)^([^:\n]+:[ \t]*)(\{\{.*?\}\})[ \t]*$`)

// SplitFrontmatter separates a note file into its front-matter metadata and
// markdown body. Files without a front-matter block yield nil metadata and
// the unchanged content. Malformed YAML is an error.
func SplitFrontmatter(data []byte) (core.Metadata, []byte, error) {
	var meta core.Metadata
	body, err := frontmatter.Parse(bytes.NewReader(sanitizePlaceholders(data)), &meta)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid front-matter: %w", err)
	}
	return meta, body, nil
}

// sanitizePlaceholders quotes bare {{...}} values inside the leading
// front-matter block so they survive YAML parsing. Notes stamped from a
// template but never filled in keep lines like "date: {{date}}".
func sanitizePlaceholders(data []byte) []byte {
	if !bytes.HasPrefix(data, []byte("---")) {
		return data
	}
	end := bytes.Index(data[3:], []byte("\n---"))
	if end < 0 {
		return data
	}
	end += 3
	head := placeholderLine.ReplaceAll(data[:end], []byte(`$1"$2"`))
	return append(head, data[end:]...)
}

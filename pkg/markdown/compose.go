package markdown

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/okullo/notes/pkg/core"
)

// ComposeNote renders a note back into file form: a YAML front-matter block
// between "---" fences, followed by the markdown body. Notes without
// metadata are written as plain markdown.
func ComposeNote(note core.Note) ([]byte, error) {
	var buf bytes.Buffer
	if len(note.Metadata) > 0 {
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(map[string]any(note.Metadata)); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		buf.WriteString("---\n")
	}
	buf.WriteString(note.Content)
	return buf.Bytes(), nil
}

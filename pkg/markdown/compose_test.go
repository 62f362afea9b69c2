package markdown_test

import (
	"strings"
	"testing"

	"github.com/okullo/notes/pkg/core"
	"github.com/okullo/notes/pkg/markdown"
)

func TestComposeNote(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		note := core.Note{
			Name: "post",
			Metadata: core.Metadata{
				"title": "A Post",
				"state": "draft",
				"tags":  []string{"go"},
			},
			Content: "# A Post\n\nBody text.\n",
		}

		data, err := markdown.ComposeNote(note)
		if err != nil {
			t.Fatalf("ComposeNote failed: %v", err)
		}
		if !strings.HasPrefix(string(data), "---\n") {
			t.Errorf("expected front-matter fence, got %q", data)
		}

		meta, body, err := markdown.SplitFrontmatter(data)
		if err != nil {
			t.Fatalf("SplitFrontmatter failed: %v", err)
		}
		if meta["title"] != "A Post" || meta["state"] != "draft" {
			t.Errorf("metadata did not survive round trip: %v", meta)
		}
		if string(body) != note.Content {
			t.Errorf("expected body %q, got %q", note.Content, body)
		}
	})

	t.Run("No Metadata", func(t *testing.T) {
		note := core.Note{Name: "plain", Content: "just text\n"}
		data, err := markdown.ComposeNote(note)
		if err != nil {
			t.Fatalf("ComposeNote failed: %v", err)
		}
		if string(data) != "just text\n" {
			t.Errorf("expected plain content, got %q", data)
		}
	})
}

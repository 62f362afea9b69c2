package markdown_test

import (
	"reflect"
	"testing"

	"github.com/okullo/notes/pkg/markdown"
)

func TestAnalyzeTags(t *testing.T) {
	t.Run("Order and Dedup", func(t *testing.T) {
		body := []byte("Working on #go today, mostly #cli things.\n\nStill #go.\n")
		analysis := markdown.Analyze(body)
		want := []string{"go", "cli"}
		if !reflect.DeepEqual(analysis.Tags, want) {
			t.Errorf("expected %v, got %v", want, analysis.Tags)
		}
	})

	t.Run("Nested and Hyphenated", func(t *testing.T) {
		analysis := markdown.Analyze([]byte("#area/home and #to-do\n"))
		want := []string{"area/home", "to-do"}
		if !reflect.DeepEqual(analysis.Tags, want) {
			t.Errorf("expected %v, got %v", want, analysis.Tags)
		}
	})

	t.Run("Ignores Code", func(t *testing.T) {
		body := []byte("Use `#define` carefully.\n\n```\n#!/bin/sh\necho #comment\n```\n\nReal tag #real here.\n")
		analysis := markdown.Analyze(body)
		want := []string{"real"}
		if !reflect.DeepEqual(analysis.Tags, want) {
			t.Errorf("expected %v, got %v", want, analysis.Tags)
		}
	})

	t.Run("Ignores Mid Word and Numeric", func(t *testing.T) {
		analysis := markdown.Analyze([]byte("see issue#42 and #123 but keep #ok\n"))
		want := []string{"ok"}
		if !reflect.DeepEqual(analysis.Tags, want) {
			t.Errorf("expected %v, got %v", want, analysis.Tags)
		}
	})

	t.Run("Heading Markers Are Not Tags", func(t *testing.T) {
		analysis := markdown.Analyze([]byte("# Title\n\n## Section\n\nplain text\n"))
		if len(analysis.Tags) != 0 {
			t.Errorf("expected no tags, got %v", analysis.Tags)
		}
	})

	t.Run("Empty Body", func(t *testing.T) {
		analysis := markdown.Analyze(nil)
		if len(analysis.Tags) != 0 || len(analysis.Tables) != 0 {
			t.Errorf("expected empty analysis, got %+v", analysis)
		}
	})
}

func TestAnalyzeTables(t *testing.T) {
	body := []byte(`# Tags

| Group | Color |
| ----- | ----- |
| #abc  | red   |

| Tag  |
| ---- |
| #abc |
| #def |
`)
	analysis := markdown.Analyze(body)

	if len(analysis.Tables) != 2 {
		t.Fatalf("expected 2 tables, got %d", len(analysis.Tables))
	}

	t.Run("Kebab Cased Headers", func(t *testing.T) {
		want := map[string]string{"group": "#abc", "color": "red"}
		if !reflect.DeepEqual(analysis.Tables[0][0], want) {
			t.Errorf("expected %v, got %v", want, analysis.Tables[0][0])
		}
	})

	t.Run("Row Order", func(t *testing.T) {
		rows := analysis.Tables[1]
		if len(rows) != 2 || rows[0]["tag"] != "#abc" || rows[1]["tag"] != "#def" {
			t.Errorf("unexpected rows: %v", rows)
		}
	})

	t.Run("Cell Text Is Not a Tag", func(t *testing.T) {
		if len(analysis.Tags) != 0 {
			t.Errorf("expected no inline tags from table cells, got %v", analysis.Tags)
		}
	})

	t.Run("Multi Word Header", func(t *testing.T) {
		table := markdown.Analyze([]byte("| Last Updated |\n| ------------ |\n| yesterday |\n"))
		if len(table.Tables) != 1 {
			t.Fatalf("expected 1 table, got %d", len(table.Tables))
		}
		if got := table.Tables[0][0]["last-updated"]; got != "yesterday" {
			t.Errorf("expected 'yesterday', got %q", got)
		}
	})
}

package core_test

import (
	"reflect"
	"testing"

	"github.com/okullo/notes/pkg/core"
)

func registryTables() []core.Table {
	groups := core.Table{
		{"group": "#abc", "color": "rgb(255, 0, 0)"},
		{"group": "#xyz", "color": "#00ff00"},
	}
	tags := core.Table{
		{"tag": "#abc"},
		{"tag": "#def"},
		{"tag": "#xyz"},
		{"tag": "#zed"},
	}
	return []core.Table{groups, tags}
}

func TestParseRegistry(t *testing.T) {
	reg := core.ParseRegistry(registryTables())

	t.Run("Groups", func(t *testing.T) {
		want := []core.Group{
			{Name: "abc", Color: "rgb(255, 0, 0)"},
			{Name: "xyz", Color: "#00ff00"},
		}
		if got := reg.Groups(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("Group Switching", func(t *testing.T) {
		// A tag row naming a group switches the current group for itself
		// and the rows that follow.
		want := []core.Tag{
			{Name: "abc", Group: "abc"},
			{Name: "def", Group: "abc"},
			{Name: "xyz", Group: "xyz"},
			{Name: "zed", Group: "xyz"},
		}
		if got := reg.Tags(); !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("GroupOf", func(t *testing.T) {
		if g := reg.GroupOf("def"); g != "abc" {
			t.Errorf("expected 'abc', got '%s'", g)
		}
		if g := reg.GroupOf("#def"); g != "abc" {
			t.Errorf("expected 'abc' for hashed lookup, got '%s'", g)
		}
		if g := reg.GroupOf("stranger"); g != core.DefaultGroup {
			t.Errorf("expected default group, got '%s'", g)
		}
	})

	t.Run("Len", func(t *testing.T) {
		if reg.Len() != 4 {
			t.Errorf("expected 4 tags, got %d", reg.Len())
		}
	})
}

func TestParseRegistryPartial(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		reg := core.ParseRegistry(nil)
		if reg.Len() != 0 || len(reg.Groups()) != 0 {
			t.Error("expected empty registry")
		}
		if g := reg.GroupOf("any"); g != core.DefaultGroup {
			t.Errorf("expected default group, got '%s'", g)
		}
	})

	t.Run("Groups Only", func(t *testing.T) {
		reg := core.ParseRegistry([]core.Table{{{"group": "#abc", "color": "red"}}})
		if len(reg.Groups()) != 1 {
			t.Errorf("expected 1 group, got %d", len(reg.Groups()))
		}
		if reg.Len() != 0 {
			t.Errorf("expected 0 tags, got %d", reg.Len())
		}
	})

	t.Run("Tags Before First Group Switch", func(t *testing.T) {
		tables := []core.Table{
			{{"group": "#abc", "color": "red"}},
			{{"tag": "#early"}, {"tag": "#abc"}},
		}
		reg := core.ParseRegistry(tables)
		if g := reg.GroupOf("early"); g != core.DefaultGroup {
			t.Errorf("expected default group before first switch, got '%s'", g)
		}
		if g := reg.GroupOf("abc"); g != "abc" {
			t.Errorf("expected 'abc', got '%s'", g)
		}
	})

	t.Run("Skips Empty Rows", func(t *testing.T) {
		tables := []core.Table{
			{{"group": "", "color": "red"}},
			{{"tag": ""}},
		}
		reg := core.ParseRegistry(tables)
		if reg.Len() != 0 || len(reg.Groups()) != 0 {
			t.Error("expected empty rows to be skipped")
		}
	})
}

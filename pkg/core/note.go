package core

import (
	"path"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Metadata represents the flexible key-value pairs decoded from a note's
// front-matter block.
type Metadata map[string]any

// Note is the central entity of the domain. It represents a single markdown
// file inside a vault, identified by its vault-relative name without the
// ".md" extension (e.g. "meta/Tags"). Names are always forward-slash
// separated, regardless of platform.
type Note struct {
	Name       string   `json:"name"`
	Path       string   `json:"path,omitempty"`
	Metadata   Metadata `json:"metadata,omitempty"`
	Content    string   `json:"content,omitempty"`
	InlineTags []string `json:"inline_tags,omitempty"`
	Tables     []Table  `json:"tables,omitempty"`
}

// Table is a markdown pipe table flattened into one map per body row,
// keyed by the kebab-cased header text.
type Table []map[string]string

// State describes the editorial lifecycle of a note.
type State string

const (
	StateStub   State = "stub"
	StateDraft  State = "draft"
	StateReady  State = "ready"
	StatePublic State = "public"
)

// States lists the recognized states in lifecycle order.
var States = []State{StateStub, StateDraft, StateReady, StatePublic}

var knownStates = map[State]bool{
	StateStub:   true,
	StateDraft:  true,
	StateReady:  true,
	StatePublic: true,
}

// Valid reports whether s is one of the recognized states.
func (s State) Valid() bool {
	return knownStates[s]
}

// Title returns the "title" front-matter field, falling back to the base
// segment of the note name.
func (n Note) Title() string {
	if t, ok := n.Metadata["title"].(string); ok && t != "" {
		return t
	}
	return path.Base(n.Name)
}

// State returns the normalized editorial state. Missing, templated, or
// unknown values degrade to StateStub rather than erroring.
func (n Note) State() State {
	raw, ok := n.Metadata["state"].(string)
	if !ok {
		return StateStub
	}
	state := State(strings.ToLower(strings.TrimSpace(raw)))
	if !knownStates[state] {
		return StateStub
	}
	return state
}

// Date returns the "date" front-matter field. YAML timestamps decode to
// time.Time; plain "YYYY-MM-DD" strings are accepted as a fallback so that
// templated values (e.g. "{{date}}") merely report no date instead of
// breaking the listing.
func (n Note) Date() (time.Time, bool) {
	switch v := n.Metadata["date"].(type) {
	case time.Time:
		return v, true
	case string:
		if t, err := time.Parse("2006-01-02", strings.TrimSpace(v)); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Location returns the "location" front-matter field when present.
func (n Note) Location() (string, bool) {
	loc, ok := n.Metadata["location"].(string)
	if !ok || loc == "" {
		return "", false
	}
	return loc, true
}

// MetaTags returns the tags declared in front-matter. YAML sequences decode
// as []any, so both []any and []string are accepted, as is a bare string.
func (n Note) MetaTags() []string {
	switch v := n.Metadata["tags"].(type) {
	case []any:
		var tags []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				tags = append(tags, s)
			}
		}
		return tags
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	}
	return nil
}

// TagNames returns the sorted union of front-matter and inline tags, each
// stripped of any leading '#'.
func (n Note) TagNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, raw := range append(n.MetaTags(), n.InlineTags...) {
		name := strings.TrimPrefix(raw, "#")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTag reports whether the note carries the given tag. A leading '#' on
// the argument is ignored.
func (n Note) HasTag(name string) bool {
	name = strings.TrimPrefix(name, "#")
	for _, t := range n.TagNames() {
		if t == name {
			return true
		}
	}
	return false
}

// DecodeMetadata decodes a note's front-matter into a typed struct via a
// YAML round-trip. Useful when the caller knows the shape of their vault.
func DecodeMetadata(n Note, out any) error {
	data, err := yaml.Marshal(n.Metadata)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

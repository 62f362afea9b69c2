package core

import (
	"fmt"
	"strings"
)

// DefaultGroup is the group assigned to tags the registry does not place.
const DefaultGroup = "unknown"

// Tag is a short label attached to notes, bucketed into a group that
// drives its stylesheet color.
type Tag struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

// NewTag builds a tag from a raw token, stripping a leading '#'. An empty
// group defaults to DefaultGroup.
func NewTag(raw, group string) Tag {
	if group == "" {
		group = DefaultGroup
	}
	return Tag{Name: strings.TrimPrefix(raw, "#"), Group: group}
}

// String renders the tag the way it appears inside notes.
func (t Tag) String() string {
	return "#" + t.Name
}

// CSS renders the stylesheet rule binding the tag to its group color. The
// selector covers both published tag pages and intra-page anchors.
func (t Tag) CSS() string {
	return fmt.Sprintf(".tag[href$=%q], .tag[href=%q] { --tag-group: var(--tag-group-%s); }",
		"/tags/"+t.Name+"/", "#"+t.Name, t.Group)
}

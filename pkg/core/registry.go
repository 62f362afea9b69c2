package core

import "strings"

// Group is a named tag bucket with a stylesheet color.
type Group struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagRegistry is the parsed form of the tags note. The note's first table
// ("group", "color" columns) declares the groups; the second ("tag" column)
// lists every known tag in order. A row naming a group switches the current
// group for itself and the rows that follow; rows before the first switch
// belong to DefaultGroup.
type TagRegistry struct {
	groups []Group
	tags   []Tag
	byName map[string]string
}

// ParseRegistry builds a registry from the tables of a tags note. Missing
// or short tables yield a partial registry rather than an error.
func ParseRegistry(tables []Table) *TagRegistry {
	reg := &TagRegistry{byName: make(map[string]string)}
	if len(tables) == 0 {
		return reg
	}

	groupNames := make(map[string]bool)
	for _, row := range tables[0] {
		raw := row["group"]
		if raw == "" {
			continue
		}
		g := Group{Name: strings.TrimPrefix(raw, "#"), Color: row["color"]}
		reg.groups = append(reg.groups, g)
		groupNames[g.Name] = true
	}

	if len(tables) < 2 {
		return reg
	}

	group := DefaultGroup
	for _, row := range tables[1] {
		raw := row["tag"]
		if raw == "" {
			continue
		}
		name := strings.TrimPrefix(raw, "#")
		if groupNames[name] {
			group = name
		}
		reg.tags = append(reg.tags, Tag{Name: name, Group: group})
		reg.byName[name] = group
	}
	return reg
}

// Tags returns the registry tags in declaration order.
func (r *TagRegistry) Tags() []Tag {
	return r.tags
}

// Groups returns the declared groups in declaration order.
func (r *TagRegistry) Groups() []Group {
	return r.groups
}

// GroupOf resolves a tag name (leading '#' ignored) to its group,
// defaulting to DefaultGroup for unregistered tags.
func (r *TagRegistry) GroupOf(name string) string {
	if g, ok := r.byName[strings.TrimPrefix(name, "#")]; ok {
		return g
	}
	return DefaultGroup
}

// Len reports how many tags the registry declares.
func (r *TagRegistry) Len() int {
	return len(r.tags)
}

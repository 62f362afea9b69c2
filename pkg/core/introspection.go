package core

import "github.com/aretw0/introspection"

// ServiceState is the introspection snapshot of a Service.
type ServiceState struct {
	TagsNote       string `json:"tags_note"`
	RegistryLoaded bool   `json:"registry_loaded"`
	RegistryTags   int    `json:"registry_tags"`
	RepositoryType string `json:"repository_type,omitempty"`
	Repository     any    `json:"repository,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	registry := s.registry
	s.mu.RUnlock()

	state := ServiceState{
		TagsNote:       s.tagsNote,
		RegistryLoaded: registry != nil,
	}
	if registry != nil {
		state.RegistryTags = registry.Len()
	}
	if component, ok := s.repo.(introspection.Component); ok {
		state.RepositoryType = component.ComponentType()
	}
	if inner, ok := s.repo.(introspection.Introspectable); ok {
		state.Repository = inner.State()
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "notes.service"
}

var (
	_ introspection.Introspectable = (*Service)(nil)
	_ introspection.Component      = (*Service)(nil)
)

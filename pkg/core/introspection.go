package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	UserRepository  string `json:"user_repository"`
	EntryRepository string `json:"entry_repository"`
	Watching        bool   `json:"watching"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	userType, entryType := "unknown", "unknown"
	if comp, ok := s.users.(introspection.Component); ok {
		userType = comp.ComponentType()
	} else if s.users != nil {
		userType = "repository"
	}
	if comp, ok := s.entries.(introspection.Component); ok {
		entryType = comp.ComponentType()
	} else if s.entries != nil {
		entryType = "repository"
	}

	return ServiceState{
		UserRepository:  userType,
		EntryRepository: entryType,
		Watching:        s.watch != nil,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

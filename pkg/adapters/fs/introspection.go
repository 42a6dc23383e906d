package fs

import (
	"github.com/aretw0/introspection"
)

// UserStoreState exposes internal state for observability.
type UserStoreState struct {
	Path string `json:"path"`
}

// State implements introspection.Introspectable.
func (s *UserStore) State() any {
	return UserStoreState{Path: s.path}
}

// ComponentType implements introspection.Component.
func (s *UserStore) ComponentType() string {
	return "fs-users"
}

// EntryStoreState exposes internal state for observability.
type EntryStoreState struct {
	Path string `json:"path"`
}

// State implements introspection.Introspectable.
func (s *EntryStore) State() any {
	return EntryStoreState{Path: s.path}
}

// ComponentType implements introspection.Component.
func (s *EntryStore) ComponentType() string {
	return "fs-entries"
}

var _ introspection.Introspectable = (*UserStore)(nil)
var _ introspection.Component = (*UserStore)(nil)
var _ introspection.Introspectable = (*EntryStore)(nil)
var _ introspection.Component = (*EntryStore)(nil)

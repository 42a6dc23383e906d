package qanda

import (
	"log/slog"

	"github.com/aretw0/qanda/internal/platform"
	"github.com/aretw0/qanda/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Entry is a public alias for the domain entry.
type Entry = core.Entry

// UserRecord is a public alias for the stored user record.
type UserRecord = core.UserRecord

// Collection is a public alias for the subject -> entries mapping.
type Collection = core.Collection

// SubjectEntries is a public alias for the ordered subject view.
type SubjectEntries = core.SubjectEntries

// SearchResult is a public alias for a search hit.
type SearchResult = core.SearchResult

// Service is a public alias for the domain service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring qanda.
type Option = platform.Option

// WithLogger sets the logger for the service and its stores.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithUserRepository allows injecting a custom user store.
func WithUserRepository(repo core.UserRepository) Option {
	return platform.WithUserRepository(repo)
}

// WithEntryRepository allows injecting a custom entry store.
func WithEntryRepository(repo core.EntryRepository) Option {
	return platform.WithEntryRepository(repo)
}

// WithWatching enables or disables the store-file change watcher.
func WithWatching(enabled bool) Option {
	return platform.WithWatching(enabled)
}

// --- Factory ---

// Open initializes the stores inside the data directory and returns the
// wired Service. Both store files are created empty when absent.
func Open(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

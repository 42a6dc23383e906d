package platform

import (
	"log/slog"

	"github.com/aretw0/qanda/pkg/core"
)

// options holds the internal configuration for the qanda service.
type options struct {
	logger   *slog.Logger
	users    core.UserRepository
	entries  core.EntryRepository
	watching bool
}

// Option defines a functional option for configuring qanda.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		watching: true,
	}
}

// WithLogger sets the logger for the service and its stores.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithUserRepository allows injecting a custom user store (e.g. mock).
// If provided, the default YAML file store is skipped.
func WithUserRepository(repo core.UserRepository) Option {
	return func(o *options) {
		o.users = repo
	}
}

// WithEntryRepository allows injecting a custom entry store (e.g. mock).
// If provided, the default JSON file store is skipped.
func WithEntryRepository(repo core.EntryRepository) Option {
	return func(o *options) {
		o.entries = repo
	}
}

// WithWatching enables or disables the store-file change watcher.
// Enabled by default; it only applies when the default file stores are
// in use.
func WithWatching(enabled bool) Option {
	return func(o *options) {
		o.watching = enabled
	}
}

package platform

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aretw0/qanda/pkg/adapters/fs"
	"github.com/aretw0/qanda/pkg/core"
)

// New initializes the stores inside the given data directory and wires
// the domain service. Both store files are seeded empty when absent.
//
//	svc, err := qanda.Open("./data", qanda.WithLogger(slog.Default()))
func New(dir string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	resolved, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	usingDefaults := o.entries == nil && o.users == nil

	users := o.users
	if users == nil {
		users = fs.NewUserStore(resolved, o.logger)
	}
	entries := o.entries
	if entries == nil {
		entries = fs.NewEntryStore(resolved, o.logger)
	}

	ctx := context.Background()
	if err := users.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize user store: %w", err)
	}
	if err := entries.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize entry store: %w", err)
	}

	service := core.NewService(users, entries)

	// The watcher observes the real store files; it has no meaning for
	// injected repositories.
	if o.watching && usingDefaults {
		service.SetWatchSource(fs.NewWatcher(resolved, o.logger))
	}

	return service, nil
}

package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/qanda/pkg/core"
)

// Watcher implements core.Watchable over a data directory. It reports
// changes to the two store files, which covers both this process's own
// atomic rewrites and external edits.
type Watcher struct {
	dir    string
	files  map[string]bool
	logger *slog.Logger
}

// NewWatcher creates a watcher for the store files in dir.
func NewWatcher(dir string, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		dir:    dir,
		files:  map[string]bool{UsersFile: true, EntriesFile: true},
		logger: logger,
	}
}

// Watch starts observing the data directory and returns a channel of
// events. The pattern filters on the store file name (doublestar
// syntax); an empty pattern matches everything. The channel is closed
// when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	events := make(chan core.Event, 16)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				id := filepath.Base(ev.Name)
				if !w.files[id] {
					continue // temp files, unrelated siblings
				}
				if pattern != "" {
					if match, _ := doublestar.Match(pattern, id); !match {
						continue
					}
				}
				eType := mapEventType(ev)
				if eType == "" {
					continue
				}
				w.logger.Debug("store file changed", "file", id, "op", ev.Op.String())

				select {
				case events <- core.Event{Type: eType, ID: id, Timestamp: time.Now().Unix()}:
				case <-ctx.Done():
					return nil
				}

			case wErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				w.logger.Error("fsnotify error", "error", wErr)
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		w.logger.Error("watcher terminated", "error", err)
	}))

	return events, nil
}

// mapEventType translates fsnotify operations to domain event types.
// Atomic rewrites surface as CREATE (rename onto the target).
func mapEventType(ev fsnotify.Event) core.EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return core.EventCreate
	case ev.Has(fsnotify.Write):
		return core.EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

var _ core.Watchable = (*Watcher)(nil)

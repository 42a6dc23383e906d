package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/aretw0/qanda/pkg/core"
)

// EntriesFile is the name of the Q&A store file inside the data directory.
const EntriesFile = "qa_data.json"

// EntryStore implements core.EntryRepository on a single JSON file
// mapping subject name to an ordered array of entries. The whole file is
// rewritten on every mutation.
type EntryStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewEntryStore creates an entry store rooted at the given data directory.
func NewEntryStore(dir string, logger *slog.Logger) *EntryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryStore{path: filepath.Join(dir, EntriesFile), logger: logger}
}

// Initialize creates the data directory and seeds `{}` when the file is
// absent.
func (s *EntryStore) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		s.logger.Debug("seeding empty entry file", "path", s.path)
		return writeFileAtomic(s.path, []byte("{}"), 0o644)
	}
	return nil
}

// All returns the full subject -> entries mapping.
func (s *EntryStore) All(ctx context.Context) (core.Collection, error) {
	return s.load()
}

// Append adds an entry to the subject's list, creating the subject if
// absent.
func (s *EntryStore) Append(ctx context.Context, subject string, e core.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}
	all[subject] = append(all[subject], e)

	if err := s.save(all); err != nil {
		return err
	}
	s.logger.Debug("entry appended", "subject", subject, "id", e.ID)
	return nil
}

// Update rewrites question, answer and timestamp of the entry matching
// id and owner. Position in the list is preserved.
func (s *EntryStore) Update(ctx context.Context, subject, id, owner, question, answer, timestamp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	list, ok := all[subject]
	if !ok {
		return core.ErrEntryNotFound
	}
	for i := range list {
		if list[i].ID == id && list[i].CreatedBy == owner {
			list[i].Question = question
			list[i].Answer = answer
			list[i].Timestamp = timestamp
			return s.save(all)
		}
	}
	return core.ErrEntryNotFound
}

// Remove deletes the entry matching id and owner. The subject key stays
// in the file even when its list becomes empty.
func (s *EntryStore) Remove(ctx context.Context, subject, id, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load()
	if err != nil {
		return err
	}

	list, ok := all[subject]
	if !ok {
		return core.ErrEntryNotFound
	}
	for i := range list {
		if list[i].ID == id && list[i].CreatedBy == owner {
			all[subject] = append(list[:i], list[i+1:]...)
			return s.save(all)
		}
	}
	return core.ErrEntryNotFound
}

func (s *EntryStore) load() (core.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry file: %w", err)
	}

	var all core.Collection
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("invalid json in %s: %w", filepath.Base(s.path), err)
	}
	if all == nil {
		all = make(core.Collection)
	}
	return all, nil
}

func (s *EntryStore) save(all core.Collection) error {
	data, err := json.MarshalIndent(all, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize entries: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write entry file: %w", err)
	}
	return nil
}

var _ core.EntryRepository = (*EntryStore)(nil)

package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/qanda/pkg/core"
)

// UsersFile is the name of the user store file inside the data directory.
const UsersFile = "users.yaml"

// UserStore implements core.UserRepository on a single YAML file mapping
// username to record. Every mutation is a load-modify-save cycle ending
// in an atomic rename; concurrent processes are last-write-wins.
type UserStore struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewUserStore creates a user store rooted at the given data directory.
func NewUserStore(dir string, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{path: filepath.Join(dir, UsersFile), logger: logger}
}

// Initialize creates the data directory and seeds an empty user file
// when absent. An empty file parses as an empty mapping.
func (s *UserStore) Initialize(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if _, err := os.Stat(s.path); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		s.logger.Debug("seeding empty user file", "path", s.path)
		return writeFileAtomic(s.path, []byte("{}\n"), 0o644)
	}
	return nil
}

// Get retrieves a user record by username.
func (s *UserStore) Get(ctx context.Context, username string) (core.UserRecord, error) {
	users, err := s.load()
	if err != nil {
		return core.UserRecord{}, err
	}
	rec, ok := users[username]
	if !ok {
		return core.UserRecord{}, core.ErrUserNotFound
	}
	return rec, nil
}

// Create stores a new user record, rejecting duplicates within the same
// load/save cycle.
func (s *UserStore) Create(ctx context.Context, username string, rec core.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := users[username]; exists {
		return core.ErrUserExists
	}
	users[username] = rec

	if err := s.save(users); err != nil {
		return err
	}
	s.logger.Debug("user registered", "username", username)
	return nil
}

func (s *UserStore) load() (map[string]core.UserRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}

	var users map[string]core.UserRecord
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("invalid yaml in %s: %w", filepath.Base(s.path), err)
	}
	if users == nil {
		users = make(map[string]core.UserRecord)
	}
	return users, nil
}

func (s *UserStore) save(users map[string]core.UserRecord) error {
	data, err := yaml.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}
	return nil
}

var _ core.UserRepository = (*UserStore)(nil)

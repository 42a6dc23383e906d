package core_test

import (
	"context"
	"testing"

	"github.com/aretw0/qanda/pkg/core"
)

// MockUserRepository implements core.UserRepository in memory.
type MockUserRepository struct {
	users map[string]core.UserRecord
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]core.UserRecord)}
}

func (m *MockUserRepository) Get(ctx context.Context, username string) (core.UserRecord, error) {
	rec, ok := m.users[username]
	if !ok {
		return core.UserRecord{}, core.ErrUserNotFound
	}
	return rec, nil
}

func (m *MockUserRepository) Create(ctx context.Context, username string, rec core.UserRecord) error {
	if _, exists := m.users[username]; exists {
		return core.ErrUserExists
	}
	m.users[username] = rec
	return nil
}

func (m *MockUserRepository) Initialize(ctx context.Context) error { return nil }

// MockEntryRepository implements core.EntryRepository in memory with the
// same match semantics as the file store.
type MockEntryRepository struct {
	all core.Collection
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{all: make(core.Collection)}
}

func (m *MockEntryRepository) All(ctx context.Context) (core.Collection, error) {
	return m.all, nil
}

func (m *MockEntryRepository) Append(ctx context.Context, subject string, e core.Entry) error {
	m.all[subject] = append(m.all[subject], e)
	return nil
}

func (m *MockEntryRepository) Update(ctx context.Context, subject, id, owner, question, answer, timestamp string) error {
	list := m.all[subject]
	for i := range list {
		if list[i].ID == id && list[i].CreatedBy == owner {
			list[i].Question = question
			list[i].Answer = answer
			list[i].Timestamp = timestamp
			return nil
		}
	}
	return core.ErrEntryNotFound
}

func (m *MockEntryRepository) Remove(ctx context.Context, subject, id, owner string) error {
	list, ok := m.all[subject]
	if !ok {
		return core.ErrEntryNotFound
	}
	for i := range list {
		if list[i].ID == id && list[i].CreatedBy == owner {
			m.all[subject] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return core.ErrEntryNotFound
}

func (m *MockEntryRepository) Initialize(ctx context.Context) error { return nil }

func newTestService() (*core.Service, *MockUserRepository, *MockEntryRepository) {
	users := NewMockUserRepository()
	entries := NewMockEntryRepository()
	return core.NewService(users, entries), users, entries
}

func TestService_Register(t *testing.T) {
	service, users, _ := newTestService()
	ctx := context.TODO()

	if err := service.Register(ctx, "alice", "secret1", "alice@example.com"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	first := users.users["alice"]
	if first.PasswordHash == "" || len(first.PasswordHash) != 64 {
		t.Errorf("expected 64-char hex hash, got %q", first.PasswordHash)
	}
	if first.CreatedAt == "" {
		t.Error("expected created_at to be set")
	}

	// Second registration with the same username must fail and leave the
	// first record unchanged.
	err := service.Register(ctx, "alice", "another1", "other@example.com")
	if err != core.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if users.users["alice"] != first {
		t.Error("first user's record changed on duplicate registration")
	}

	if err := service.Register(ctx, "bob", "short", ""); err != core.ErrPasswordTooShort {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := service.Register(ctx, "  ", "longenough", ""); err == nil {
		t.Error("expected error for blank username")
	}
}

func TestService_Authenticate(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.TODO()

	if err := service.Register(ctx, "alice", "secret1", ""); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := service.Authenticate(ctx, "alice", "secret1"); err != nil {
		t.Errorf("expected successful login, got %v", err)
	}
	if err := service.Authenticate(ctx, "alice", "wrong-password"); err != core.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if err := service.Authenticate(ctx, "ghost", "secret1"); err != core.ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestService_AddEntry(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.TODO()

	entry, err := service.AddEntry(ctx, "alice", "Go", "What is a closure?", "A function value plus captured variables.")
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected entry to get an ID")
	}
	if entry.CreatedBy != "alice" {
		t.Errorf("expected creator 'alice', got %q", entry.CreatedBy)
	}
	if entry.Timestamp == "" {
		t.Error("expected a non-empty timestamp")
	}

	view, err := service.ListOwned(ctx, "alice")
	if err != nil {
		t.Fatalf("ListOwned failed: %v", err)
	}
	if len(view) != 1 || view[0].Name != "Go" || len(view[0].Entries) != 1 {
		t.Fatalf("expected exactly the added entry, got %+v", view)
	}

	if _, err := service.AddEntry(ctx, "alice", "Go", "", "answer"); err == nil {
		t.Error("expected error for missing question")
	}
	if _, err := service.AddEntry(ctx, "alice", "", "q", "a"); err == nil {
		t.Error("expected error for missing subject")
	}
}

func TestService_Visibility(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.TODO()

	// Same subject name, two owners.
	_, _ = service.AddEntry(ctx, "alice", "Go", "alice q", "alice a")
	_, _ = service.AddEntry(ctx, "bob", "Go", "bob q", "bob a")

	view, err := service.ListOwned(ctx, "alice")
	if err != nil {
		t.Fatalf("ListOwned failed: %v", err)
	}
	if len(view) != 1 || len(view[0].Entries) != 1 {
		t.Fatalf("expected one owned entry, got %+v", view)
	}
	if view[0].Entries[0].CreatedBy != "alice" {
		t.Error("alice sees an entry she did not create")
	}

	results, err := service.Search(ctx, "alice", "bob")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("search leaked another user's entries: %+v", results)
	}
}

func TestService_EditEntry(t *testing.T) {
	service, _, entries := newTestService()
	ctx := context.TODO()

	first, _ := service.AddEntry(ctx, "alice", "Go", "q1", "a1")
	second, _ := service.AddEntry(ctx, "alice", "Go", "q2", "a2")

	if err := service.EditEntry(ctx, "alice", "Go", first.ID, "q1 edited", "a1 edited"); err != nil {
		t.Fatalf("EditEntry failed: %v", err)
	}

	list := entries.all["Go"]
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Error("edit changed entry positions")
	}
	if list[0].Question != "q1 edited" || list[0].Answer != "a1 edited" {
		t.Errorf("edit did not apply: %+v", list[0])
	}

	if err := service.EditEntry(ctx, "alice", "Go", "no-such-id", "q", "a"); err != core.ErrEntryNotFound {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
	if err := service.EditEntry(ctx, "bob", "Go", first.ID, "q", "a"); err != core.ErrEntryNotFound {
		t.Errorf("expected ErrEntryNotFound for foreign entry, got %v", err)
	}
}

func TestService_DeleteEntry(t *testing.T) {
	service, _, entries := newTestService()
	ctx := context.TODO()

	// Two entries with identical text; only IDs differ.
	first, _ := service.AddEntry(ctx, "alice", "Go", "dup", "dup")
	_, _ = service.AddEntry(ctx, "alice", "Go", "dup", "dup")

	if err := service.DeleteEntry(ctx, "alice", "Go", first.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if len(entries.all["Go"]) != 1 {
		t.Errorf("expected exactly one entry removed, %d left", len(entries.all["Go"]))
	}

	// Emptied subjects stay in the collection.
	last := entries.all["Go"][0]
	if err := service.DeleteEntry(ctx, "alice", "Go", last.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if list, ok := entries.all["Go"]; !ok || len(list) != 0 {
		t.Error("expected subject key to survive with an empty list")
	}

	if err := service.DeleteEntry(ctx, "alice", "Go", "no-such-id"); err != core.ErrEntryNotFound {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.Watch(context.TODO(), "*")
	if err != core.ErrWatchUnsupported {
		t.Fatalf("expected ErrWatchUnsupported, got %v", err)
	}
}

package core

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Service handles the business logic for users and entries.
// The acting username is an explicit parameter on every operation;
// the service itself keeps no session state.
type Service struct {
	users   UserRepository
	entries EntryRepository
	watch   Watchable
}

// NewService creates a new Service on top of the given repositories.
func NewService(users UserRepository, entries EntryRepository) *Service {
	return &Service{users: users, entries: entries}
}

// SetWatchSource attaches a change-notification source. Optional;
// without one, Watch returns ErrWatchUnsupported.
func (s *Service) SetWatchSource(w Watchable) {
	s.watch = w
}

// HashPassword returns the hex-encoded SHA-256 digest of a password.
// The user file stores this fixed-length hex string.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new user. It fails with ErrUserExists when the
// username is taken, ErrMissingField on an empty username and
// ErrPasswordTooShort below MinPasswordLen. Email is optional.
func (s *Service) Register(ctx context.Context, username, password, email string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username", ErrMissingField)
	}
	if len(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}

	rec := UserRecord{
		PasswordHash: HashPassword(password),
		Email:        email,
		CreatedAt:    Now(),
	}
	return s.users.Create(ctx, username, rec)
}

// Authenticate verifies a username/password pair. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) error {
	rec, err := s.users.Get(ctx, username)
	if err != nil {
		return ErrInvalidCredentials
	}

	candidate := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(rec.PasswordHash), []byte(candidate)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// AddEntry records a new question/answer pair under a subject for the
// acting user. All three text fields are required.
func (s *Service) AddEntry(ctx context.Context, actor, subject, question, answer string) (Entry, error) {
	switch {
	case strings.TrimSpace(subject) == "":
		return Entry{}, fmt.Errorf("%w: subject", ErrMissingField)
	case strings.TrimSpace(question) == "":
		return Entry{}, fmt.Errorf("%w: question", ErrMissingField)
	case strings.TrimSpace(answer) == "":
		return Entry{}, fmt.Errorf("%w: answer", ErrMissingField)
	}

	e := Entry{
		ID:        newEntryID(),
		Question:  question,
		Answer:    answer,
		Timestamp: Now(),
		CreatedBy: actor,
	}
	if err := s.entries.Append(ctx, subject, e); err != nil {
		return Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}
	return e, nil
}

// ListOwned returns the acting user's entries grouped by subject.
// Subjects with no owned entries are omitted; subject names are sorted,
// entry order within a subject is preserved.
func (s *Service) ListOwned(ctx context.Context, actor string) ([]SubjectEntries, error) {
	all, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	var view []SubjectEntries
	for subject, list := range all {
		var owned []Entry
		for _, e := range list {
			if e.CreatedBy == actor {
				owned = append(owned, e)
			}
		}
		if len(owned) > 0 {
			view = append(view, SubjectEntries{Name: subject, Entries: owned})
		}
	}

	sort.Slice(view, func(i, j int) bool { return view[i].Name < view[j].Name })
	return view, nil
}

// EditEntry updates question and answer of an owned entry in place and
// refreshes its timestamp. The entry keeps its list position.
func (s *Service) EditEntry(ctx context.Context, actor, subject, id, question, answer string) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return fmt.Errorf("%w: question/answer", ErrMissingField)
	}
	return s.entries.Update(ctx, subject, id, actor, question, answer, Now())
}

// DeleteEntry removes exactly one owned entry. Subjects emptied by a
// deletion are kept in the store.
func (s *Service) DeleteEntry(ctx context.Context, actor, subject, id string) error {
	return s.entries.Remove(ctx, subject, id, actor)
}

// Watch observes changes to the backing stores if a source is attached.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	if s.watch == nil {
		return nil, ErrWatchUnsupported
	}
	return s.watch.Watch(ctx, pattern)
}

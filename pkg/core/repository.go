package core

import "context"

// UserRepository defines the contract for storing user records.
// Adhering to this interface allows the core to be independent of the
// underlying storage mechanism (flat file, SQL, in-memory).
type UserRepository interface {
	// Get retrieves a user record by username.
	Get(ctx context.Context, username string) (UserRecord, error)

	// Create stores a new user record. It returns ErrUserExists if the
	// username is already taken.
	Create(ctx context.Context, username string, rec UserRecord) error

	// Initialize ensures the underlying storage is ready (e.g. seed an
	// empty file).
	Initialize(ctx context.Context) error
}

// EntryRepository defines the contract for storing Q&A entries.
type EntryRepository interface {
	// All returns the full subject -> entries mapping.
	All(ctx context.Context) (Collection, error)

	// Append adds an entry to the subject's list, creating the subject
	// if absent.
	Append(ctx context.Context, subject string, e Entry) error

	// Update rewrites question, answer and timestamp of the entry with
	// the given id and owner. The entry keeps its position in the list.
	// Returns ErrEntryNotFound if no such entry exists.
	Update(ctx context.Context, subject, id, owner, question, answer, timestamp string) error

	// Remove deletes the entry with the given id and owner. The subject
	// key is kept even when its list becomes empty.
	// Returns ErrEntryNotFound if no such entry exists.
	Remove(ctx context.Context, subject, id, owner string) error

	// Initialize ensures the underlying storage is ready.
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for sources that can report changes to
// the backing storage (e.g. external edits to the store files).
type Watchable interface {
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

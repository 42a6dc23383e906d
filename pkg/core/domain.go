// Entry is the central entity of the domain.
package core

import (
	"fmt"
	"time"
)

// TimeFormat is the timestamp layout used across the stores and exports.
const TimeFormat = "2006-01-02 15:04:05"

// Entry is a single question/answer pair recorded under a subject.
// The ID is assigned at creation time and is the only handle used for
// mutation; the text fields carry no identity.
type Entry struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
	CreatedBy string `json:"created_by"`
}

// UserRecord holds the stored credentials and profile of a user.
// Records are created on registration and never mutated.
type UserRecord struct {
	PasswordHash string `yaml:"password"`
	Email        string `yaml:"email"`
	CreatedAt    string `yaml:"created_at"`
}

// Collection maps a subject name to its ordered list of entries.
// Entry order within a subject is insertion order and must be preserved
// by every store operation.
type Collection map[string][]Entry

// SubjectEntries is an ordered view over one subject of a Collection.
type SubjectEntries struct {
	Name    string
	Entries []Entry
}

// Now returns the current time formatted with TimeFormat.
func Now() string {
	return time.Now().Format(TimeFormat)
}

// EventType represents the type of change in the data directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to one of the backing store files.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String satisfies the lifecycle event interface.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}

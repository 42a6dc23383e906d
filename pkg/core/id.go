package core

import "github.com/google/uuid"

// newEntryID is a test seam for entry ID generation.
var newEntryID = func() string {
	return uuid.NewString()
}

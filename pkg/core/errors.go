package core

import "errors"

// MinPasswordLen is the minimum accepted password length on registration.
const MinPasswordLen = 6

// Common errors.
var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrMissingField       = errors.New("missing required field")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrNothingToExport    = errors.New("nothing to export")
	ErrWatchUnsupported   = errors.New("watching is not supported")
)

// ABOUTME: Error taxonomy shared by the services.
// ABOUTME: Callers match with errors.Is and present user-facing messages.
package service

import "errors"

var (
	// ErrDuplicateUsername means registration hit the unique username
	// constraint.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong
	// password; the two are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidInput means malformed caller input (empty required
	// field, negative number). The operation was not attempted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the referenced entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrNoCompletedSets means a session finish was attempted with
	// nothing completed; the session stays active.
	ErrNoCompletedSets = errors.New("no completed sets")
)

// Package common defines shared sentinel errors and small helpers used
// across the Pulse client. Callers should use errors.Is to match the
// sentinel values.
package common

import "errors"

var (
	// ErrNotFound is returned when an entity is missing from a store.
	ErrNotFound = errors.New("not found")

	// ErrNoSession indicates an authenticated operation was attempted
	// without an active session.
	ErrNoSession = errors.New("not logged in")

	// ErrValidation marks a submission blocked by field validation.
	ErrValidation = errors.New("validation failed")
)

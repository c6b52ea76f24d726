// Package shared holds sentinel errors used across the client layers.
// Callers match them with errors.Is.
package shared

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the API host could not
	// be reached or the request timed out before a response arrived.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks requests the API rejected for missing or
	// invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotAuthenticated marks operations that require a signed-in
	// session invoked without one. No network call is made in that case.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNotFound is returned when the API reports a missing resource.
	ErrNotFound = errors.New("not found")
)

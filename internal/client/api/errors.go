package api

import (
	"fmt"
	"net/http"

	"github.com/ekalnins/campustrade/internal/shared"
)

// APIError is a request the backend rejected with an error payload.
// Message carries the server's "error" field verbatim so callers can show
// it to the user.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known status codes onto the shared sentinels so callers
// can use errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return shared.ErrUnauthorized
	case http.StatusNotFound:
		return shared.ErrNotFound
	}
	return nil
}
